package postgresadapter

import (
	"encoding/json"
	"time"

	"madison/contexts/ad-delivery/distribution-service/domain/entities"
)

type batchModel struct {
	BatchID        string    `gorm:"column:batch_id;primaryKey"`
	CampaignID     uint64    `gorm:"column:campaign_id;index;not null"`
	SenderID       string    `gorm:"column:sender_id;index;not null"`
	RequestedCount int       `gorm:"column:requested_count;not null"`
	IssuedCount    int       `gorm:"column:issued_count;not null"`
	SkippedCount   int       `gorm:"column:skipped_count;not null"`
	TokenIDs       []byte    `gorm:"column:token_ids;type:jsonb;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;not null"`
}

func (batchModel) TableName() string { return "distribution_batches" }

func (m batchModel) toEntity() (entities.DistributionBatch, error) {
	var tokenIDs []uint64
	if len(m.TokenIDs) > 0 {
		if err := json.Unmarshal(m.TokenIDs, &tokenIDs); err != nil {
			return entities.DistributionBatch{}, err
		}
	}
	return entities.DistributionBatch{
		BatchID:        m.BatchID,
		CampaignID:     m.CampaignID,
		SenderID:       m.SenderID,
		RequestedCount: m.RequestedCount,
		IssuedCount:    m.IssuedCount,
		SkippedCount:   m.SkippedCount,
		TokenIDs:       tokenIDs,
		CreatedAt:      m.CreatedAt,
	}, nil
}

func batchModelFromEntity(batch entities.DistributionBatch) (batchModel, error) {
	tokenIDs, err := json.Marshal(batch.TokenIDs)
	if err != nil {
		return batchModel{}, err
	}
	return batchModel{
		BatchID:        batch.BatchID,
		CampaignID:     batch.CampaignID,
		SenderID:       batch.SenderID,
		RequestedCount: batch.RequestedCount,
		IssuedCount:    batch.IssuedCount,
		SkippedCount:   batch.SkippedCount,
		TokenIDs:       tokenIDs,
		CreatedAt:      batch.CreatedAt,
	}, nil
}

type idempotencyModel struct {
	Key             string    `gorm:"column:idempotency_key;primaryKey"`
	RequestHash     string    `gorm:"column:request_hash;not null"`
	ResponsePayload []byte    `gorm:"column:response_payload;type:jsonb"`
	ExpiresAt       time.Time `gorm:"column:expires_at;index;not null"`
}

func (idempotencyModel) TableName() string { return "distribution_idempotency_records" }

type outboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey"`
	EventType   string     `gorm:"column:event_type;not null"`
	Payload     []byte     `gorm:"column:payload;type:jsonb;not null"`
	Status      string     `gorm:"column:status;index;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "distribution_outbox_messages" }
