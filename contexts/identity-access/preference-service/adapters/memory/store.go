package memory

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"

	"madison/contexts/identity-access/preference-service/domain/entities"
	"madison/contexts/identity-access/preference-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing repository/outbox ports.
// It is intended for tests and local development wiring.
type Store struct {
	mu sync.RWMutex

	optOuts map[string]optOutRow
	blocks  map[string]map[string]blockRow
	outbox  map[string]outboxRow
}

type optOutRow struct {
	OptOut    bool
	UpdatedAt time.Time
}

type blockRow struct {
	Blocked   bool
	UpdatedAt time.Time
}

type outboxRow struct {
	ports.OutboxMessage
	PublishedAt *time.Time
}

func NewStore() *Store {
	return &Store{
		optOuts: make(map[string]optOutRow),
		blocks:  make(map[string]map[string]blockRow),
		outbox:  make(map[string]outboxRow),
	}
}

func (s *Store) GetPreferences(_ context.Context, address string) (entities.PreferenceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	address = strings.TrimSpace(address)
	record := entities.PreferenceRecord{Address: address}
	if row, ok := s.optOuts[address]; ok {
		record.GlobalOptOut = row.OptOut
		record.UpdatedAt = row.UpdatedAt
	}
	for advertiser, row := range s.blocks[address] {
		if !row.Blocked {
			continue
		}
		record.BlockedAdvertisers = append(record.BlockedAdvertisers, advertiser)
		if row.UpdatedAt.After(record.UpdatedAt) {
			record.UpdatedAt = row.UpdatedAt
		}
	}
	sort.Strings(record.BlockedAdvertisers)
	return record, nil
}

func (s *Store) SetGlobalOptOut(_ context.Context, address string, optOut bool, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.optOuts[strings.TrimSpace(address)] = optOutRow{OptOut: optOut, UpdatedAt: updatedAt}
	return nil
}

func (s *Store) SetAdvertiserBlocked(_ context.Context, address string, advertiser string, blocked bool, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	address = strings.TrimSpace(address)
	if s.blocks[address] == nil {
		s.blocks[address] = make(map[string]blockRow)
	}
	s.blocks[address][strings.TrimSpace(advertiser)] = blockRow{Blocked: blocked, UpdatedAt: updatedAt}
	return nil
}

func (s *Store) IsEligible(_ context.Context, user string, advertiser string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user = strings.TrimSpace(user)
	if row, ok := s.optOuts[user]; ok && row.OptOut {
		return false, nil
	}
	if row, ok := s.blocks[user][strings.TrimSpace(advertiser)]; ok && row.Blocked {
		return false, nil
	}
	return true, nil
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
