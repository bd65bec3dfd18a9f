package ports

import (
	"context"
	"time"

	"madison/contexts/ad-delivery/campaign-service/domain/entities"
	contractsv1 "madison/contracts/gen/events/v1"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for outbox rows and events.
// Campaign ids themselves come from the repository's monotonic counter.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// RoleChecker answers role membership queries against the role store.
type RoleChecker interface {
	IsAdvertiser(ctx context.Context, address string) (bool, error)
	IsAdministrator(ctx context.Context, address string) (bool, error)
}

// CampaignFilter narrows list queries.
type CampaignFilter struct {
	OwnerID string
	Active  *bool
}

// CampaignRepository is the write/read boundary for campaign state.
// CreateCampaign allocates the next monotonic id atomically with the insert.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, draft entities.Campaign) (entities.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, campaignID uint64, active bool, updatedAt time.Time) (entities.Campaign, error)
	GetCampaign(ctx context.Context, campaignID uint64) (entities.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]entities.Campaign, error)
}

// IdempotencyRecord stores request hash and previous response payload.
type IdempotencyRecord struct {
	Key             string
	RequestHash     string
	ResponsePayload []byte
	ExpiresAt       time.Time
}

// IdempotencyStore guarantees replay/conflict behavior for resubmitted requests.
type IdempotencyStore interface {
	GetRecord(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	PutRecord(ctx context.Context, record IdempotencyRecord) error
}

// EventEnvelope reuses the canonical cross-runtime envelope contract.
type EventEnvelope = contractsv1.Envelope

// OutboxWriter persists an event in the same store as the state change.
type OutboxWriter interface {
	AppendOutbox(ctx context.Context, envelope EventEnvelope) error
}

// OutboxMessage represents a pending relay message.
type OutboxMessage struct {
	OutboxID  string
	EventType string
	Payload   []byte
	CreatedAt time.Time
}

// OutboxRepository supports worker relay polling and acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error
}

// EventPublisher emits campaign events to the event bus adapter.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
