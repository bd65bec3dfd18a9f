package ports

import (
	"context"
	"time"

	"madison/contexts/identity-access/role-service/domain/entities"
	contractsv1 "madison/contracts/gen/events/v1"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for outbox rows and events.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Repository is the write/read boundary for role state.
// The administrator address is seeded once at bootstrap and is read-only here.
type Repository interface {
	IsAdministrator(ctx context.Context, address string) (bool, error)
	IsAdvertiser(ctx context.Context, address string) (bool, error)
	UpsertAdvertiserGrant(ctx context.Context, grant entities.AdvertiserGrant) (bool, error)
	DeactivateAdvertiserGrant(ctx context.Context, address string, revokedAt time.Time) (bool, error)
	ListAdvertiserGrants(ctx context.Context) ([]entities.AdvertiserGrant, error)
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

// EventPublisher emits role change events to the event bus adapter.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
