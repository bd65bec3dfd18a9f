package ports

import (
	"context"
	"time"

	"madison/contexts/ad-delivery/distribution-service/domain/entities"
	contractsv1 "madison/contracts/gen/events/v1"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for batch ids, outbox rows, events.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// RoleChecker answers role membership queries against the role store.
type RoleChecker interface {
	IsAdvertiser(ctx context.Context, address string) (bool, error)
}

// CampaignView is the projection of a campaign the engine needs.
type CampaignView struct {
	CampaignID uint64
	Owner      string
	ContentRef string
	Active     bool
}

// CampaignDirectory resolves campaigns from the registry. A missing id must
// map to the campaign module's not-found error at the glue adapter.
type CampaignDirectory interface {
	GetCampaign(ctx context.Context, campaignID uint64) (CampaignView, error)
}

// EligibilityChecker answers whether an advertiser may reach a recipient,
// combining the recipient's global opt-out and per-advertiser blocks.
type EligibilityChecker interface {
	IsEligible(ctx context.Context, recipient string, advertiser string) (bool, error)
}

// IssuedToken is the engine's view of a freshly minted token.
type IssuedToken struct {
	TokenID uint64
	Owner   string
}

// TokenIssuer mints tokens for the filtered recipient list in one atomic
// batch: the id allocations and records commit together or not at all.
type TokenIssuer interface {
	IssueTokens(ctx context.Context, campaignID uint64, owners []string, issuedAt time.Time) ([]IssuedToken, error)
}

// BatchRepository journals completed distribution batches.
type BatchRepository interface {
	SaveBatch(ctx context.Context, batch entities.DistributionBatch) error
	GetBatch(ctx context.Context, batchID string) (entities.DistributionBatch, error)
	ListBatchesByCampaign(ctx context.Context, campaignID uint64) ([]entities.DistributionBatch, error)
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

// EventPublisher emits distribution events to the event bus adapter.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
