package memory

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"madison/contexts/ad-delivery/distribution-service/domain/entities"
	domainerrors "madison/contexts/ad-delivery/distribution-service/domain/errors"
	"madison/contexts/ad-delivery/distribution-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing batch/idempotency/outbox ports.
// It is intended for tests and local development wiring.
type Store struct {
	mu sync.RWMutex

	batches     map[string]entities.DistributionBatch
	idempotency map[string]ports.IdempotencyRecord
	outbox      map[string]outboxRow
}

type outboxRow struct {
	ports.OutboxMessage
	PublishedAt *time.Time
}

func NewStore() *Store {
	return &Store{
		batches:     make(map[string]entities.DistributionBatch),
		idempotency: make(map[string]ports.IdempotencyRecord),
		outbox:      make(map[string]outboxRow),
	}
}

func (s *Store) SaveBatch(_ context.Context, batch entities.DistributionBatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[batch.BatchID] = batch
	return nil
}

func (s *Store) GetBatch(_ context.Context, batchID string) (entities.DistributionBatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batch, ok := s.batches[batchID]
	if !ok {
		return entities.DistributionBatch{}, domainerrors.ErrBatchNotFound
	}
	return batch, nil
}

func (s *Store) ListBatchesByCampaign(_ context.Context, campaignID uint64) ([]entities.DistributionBatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.DistributionBatch, 0)
	for _, batch := range s.batches {
		if batch.CampaignID == campaignID {
			items = append(items, batch)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) GetRecord(_ context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.idempotency[key]
	if !ok || record.ExpiresAt.Before(now) {
		return ports.IdempotencyRecord{}, false, nil
	}
	return record, true, nil
}

func (s *Store) PutRecord(_ context.Context, record ports.IdempotencyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idempotency[record.Key] = record
	return nil
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
