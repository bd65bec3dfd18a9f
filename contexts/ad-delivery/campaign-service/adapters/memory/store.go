package memory

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"madison/contexts/ad-delivery/campaign-service/domain/entities"
	domainerrors "madison/contexts/ad-delivery/campaign-service/domain/errors"
	"madison/contexts/ad-delivery/campaign-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing repository/idempotency/outbox
// ports. It is intended for tests and local development wiring.
type Store struct {
	mu sync.RWMutex

	campaigns      map[uint64]entities.Campaign
	nextCampaignID uint64

	idempotency map[string]ports.IdempotencyRecord
	outbox      map[string]outboxRow
}

type outboxRow struct {
	ports.OutboxMessage
	PublishedAt *time.Time
}

func NewStore() *Store {
	return &Store{
		campaigns:      make(map[uint64]entities.Campaign),
		nextCampaignID: 1,
		idempotency:    make(map[string]ports.IdempotencyRecord),
		outbox:         make(map[string]outboxRow),
	}
}

// CreateCampaign assigns the next monotonic id under the store lock so the
// counter bump and the record write are atomic together.
func (s *Store) CreateCampaign(_ context.Context, draft entities.Campaign) (entities.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nextCampaignID == math.MaxUint64 {
		return entities.Campaign{}, domainerrors.ErrCounterExhausted
	}
	draft.CampaignID = s.nextCampaignID
	s.nextCampaignID++
	s.campaigns[draft.CampaignID] = draft
	return draft, nil
}

func (s *Store) UpdateCampaignStatus(_ context.Context, campaignID uint64, active bool, updatedAt time.Time) (entities.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	campaign, ok := s.campaigns[campaignID]
	if !ok {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	campaign.Active = active
	campaign.UpdatedAt = updatedAt
	s.campaigns[campaignID] = campaign
	return campaign, nil
}

func (s *Store) GetCampaign(_ context.Context, campaignID uint64) (entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	campaign, ok := s.campaigns[campaignID]
	if !ok {
		return entities.Campaign{}, domainerrors.ErrCampaignNotFound
	}
	return campaign, nil
}

func (s *Store) ListCampaigns(_ context.Context, filter ports.CampaignFilter) ([]entities.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.Campaign, 0, len(s.campaigns))
	for _, campaign := range s.campaigns {
		if strings.TrimSpace(filter.OwnerID) != "" && campaign.OwnerID != strings.TrimSpace(filter.OwnerID) {
			continue
		}
		if filter.Active != nil && campaign.Active != *filter.Active {
			continue
		}
		items = append(items, campaign)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CampaignID < items[j].CampaignID
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
