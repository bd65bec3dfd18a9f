package ports

import (
	"context"
	"time"

	"madison/contexts/identity-access/preference-service/domain/entities"
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

// Repository is the write/read boundary for preference state.
// Reads for unknown users return the zero-value defaults, not an error.
type Repository interface {
	GetPreferences(ctx context.Context, address string) (entities.PreferenceRecord, error)
	SetGlobalOptOut(ctx context.Context, address string, optOut bool, updatedAt time.Time) error
	SetAdvertiserBlocked(ctx context.Context, address string, advertiser string, blocked bool, updatedAt time.Time) error
	IsEligible(ctx context.Context, user string, advertiser string) (bool, error)
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

// EventPublisher emits preference change events to the event bus adapter.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
