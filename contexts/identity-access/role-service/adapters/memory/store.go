package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"madison/contexts/identity-access/role-service/domain/entities"
	"madison/contexts/identity-access/role-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing repository/outbox ports.
// It is intended for tests and local development wiring.
type Store struct {
	mu sync.RWMutex

	administrator string
	grants        map[string]entities.AdvertiserGrant
	outbox        map[string]outboxRow
}

type outboxRow struct {
	ports.OutboxMessage
	PublishedAt *time.Time
}

// NewStore builds an in-memory role store with the administrator fixed at
// construction, mirroring the one-time bootstrap assignment.
func NewStore(administrator string) *Store {
	return &Store{
		administrator: strings.TrimSpace(administrator),
		grants:        make(map[string]entities.AdvertiserGrant),
		outbox:        make(map[string]outboxRow),
	}
}

func (s *Store) IsAdministrator(_ context.Context, address string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.administrator != "" && s.administrator == strings.TrimSpace(address), nil
}

func (s *Store) IsAdvertiser(_ context.Context, address string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grant, ok := s.grants[strings.TrimSpace(address)]
	return ok && grant.Active, nil
}

func (s *Store) UpsertAdvertiserGrant(_ context.Context, grant entities.AdvertiserGrant) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.grants[grant.Address]
	if ok && existing.Active {
		return false, nil
	}
	s.grants[grant.Address] = grant
	return true, nil
}

func (s *Store) DeactivateAdvertiserGrant(_ context.Context, address string, revokedAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	grant, ok := s.grants[strings.TrimSpace(address)]
	if !ok || !grant.Active {
		return false, nil
	}
	grant.Active = false
	grant.RevokedAt = &revokedAt
	s.grants[grant.Address] = grant
	return true, nil
}

func (s *Store) ListAdvertiserGrants(_ context.Context) ([]entities.AdvertiserGrant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.AdvertiserGrant, 0, len(s.grants))
	for _, grant := range s.grants {
		items = append(items, grant)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Address < items[j].Address
	})
	return items, nil
}

func (s *Store) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}
	outboxID, err := s.NewID(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.outbox[outboxID] = outboxRow{
		OutboxMessage: ports.OutboxMessage{
			OutboxID:  outboxID,
			EventType: envelope.EventType,
			Payload:   payload,
			CreatedAt: envelope.OccurredAt,
		},
	}
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.OutboxMessage, 0)
	for _, row := range s.outbox {
		if row.PublishedAt != nil {
			continue
		}
		items = append(items, row.OutboxMessage)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, ok := s.outbox[outboxID]
	if !ok {
		return nil
	}
	row.PublishedAt = &publishedAt
	s.outbox[outboxID] = row
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
