package memory

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"madison/contexts/ad-delivery/token-service/domain/entities"
	domainerrors "madison/contexts/ad-delivery/token-service/domain/errors"
)

// Store is an in-memory ledger adapter for tests and local development.
type Store struct {
	mu sync.RWMutex

	tokens      map[uint64]entities.AdToken
	nextTokenID uint64
}

func NewStore() *Store {
	return &Store{
		tokens:      make(map[uint64]entities.AdToken),
		nextTokenID: 1,
	}
}

// IssueTokens allocates ids and writes records under one lock hold, so a
// batch is all-or-nothing and ids within it are consecutive.
func (s *Store) IssueTokens(_ context.Context, campaignID uint64, owners []string, issuedAt time.Time) ([]entities.AdToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if uint64(len(owners)) > math.MaxUint64-s.nextTokenID {
		return nil, domainerrors.ErrCounterExhausted
	}

	issued := make([]entities.AdToken, 0, len(owners))
	for _, owner := range owners {
		token := entities.AdToken{
			TokenID:    s.nextTokenID,
			Owner:      owner,
			CampaignID: campaignID,
			IssuedAt:   issuedAt,
		}
		s.nextTokenID++
		s.tokens[token.TokenID] = token
		issued = append(issued, token)
	}
	return issued, nil
}

func (s *Store) GetToken(_ context.Context, tokenID uint64) (entities.AdToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	token, ok := s.tokens[tokenID]
	if !ok {
		return entities.AdToken{}, domainerrors.ErrTokenNotFound
	}
	return token, nil
}

func (s *Store) BalanceOf(_ context.Context, owner string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int64
	for _, token := range s.tokens {
		if token.Owner == owner {
			count++
		}
	}
	return count, nil
}

func (s *Store) ListTokensByOwner(_ context.Context, owner string) ([]entities.AdToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.AdToken, 0)
	for _, token := range s.tokens {
		if token.Owner == owner {
			items = append(items, token)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].TokenID < items[j].TokenID
	})
	return items, nil
}
