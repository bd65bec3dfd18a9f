package postgresadapter

import (
	"time"

	"madison/contexts/ad-delivery/campaign-service/domain/entities"
)

type campaignModel struct {
	CampaignID uint64    `gorm:"column:campaign_id;primaryKey"`
	OwnerID    string    `gorm:"column:owner_id;index;not null"`
	ContentRef string    `gorm:"column:content_ref;not null"`
	Active     bool      `gorm:"column:active;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
}

func (campaignModel) TableName() string { return "campaigns" }

func (m campaignModel) toEntity() entities.Campaign {
	return entities.Campaign{
		CampaignID: m.CampaignID,
		OwnerID:    m.OwnerID,
		ContentRef: m.ContentRef,
		Active:     m.Active,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func campaignModelFromEntity(campaign entities.Campaign) campaignModel {
	return campaignModel{
		CampaignID: campaign.CampaignID,
		OwnerID:    campaign.OwnerID,
		ContentRef: campaign.ContentRef,
		Active:     campaign.Active,
		CreatedAt:  campaign.CreatedAt,
		UpdatedAt:  campaign.UpdatedAt,
	}
}

// idCounterModel backs monotonic id allocation. A counter row is locked
// FOR UPDATE, incremented, and the new value used within the same
// transaction as the insert it identifies.
type idCounterModel struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value uint64 `gorm:"column:value;not null"`
}

func (idCounterModel) TableName() string { return "id_counters" }

type idempotencyModel struct {
	Key             string    `gorm:"column:idempotency_key;primaryKey"`
	RequestHash     string    `gorm:"column:request_hash;not null"`
	ResponsePayload []byte    `gorm:"column:response_payload;type:jsonb"`
	ExpiresAt       time.Time `gorm:"column:expires_at;index;not null"`
}

func (idempotencyModel) TableName() string { return "campaign_idempotency_records" }

type outboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey"`
	EventType   string     `gorm:"column:event_type;not null"`
	Payload     []byte     `gorm:"column:payload;type:jsonb;not null"`
	Status      string     `gorm:"column:status;index;not null"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "campaign_outbox_messages" }
