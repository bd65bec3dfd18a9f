package postgresadapter

import (
	"time"

	"madison/contexts/ad-delivery/token-service/domain/entities"
)

type adTokenModel struct {
	TokenID    uint64    `gorm:"column:token_id;primaryKey"`
	Owner      string    `gorm:"column:owner;index;not null"`
	CampaignID uint64    `gorm:"column:campaign_id;index;not null"`
	IssuedAt   time.Time `gorm:"column:issued_at;not null"`
}

func (adTokenModel) TableName() string { return "ad_tokens" }

func (m adTokenModel) toEntity() entities.AdToken {
	return entities.AdToken{
		TokenID:    m.TokenID,
		Owner:      m.Owner,
		CampaignID: m.CampaignID,
		IssuedAt:   m.IssuedAt,
	}
}

// idCounterModel maps the shared counter table; the ledger only ever touches
// its own counter row.
type idCounterModel struct {
	Name  string `gorm:"column:name;primaryKey"`
	Value uint64 `gorm:"column:value;not null"`
}

func (idCounterModel) TableName() string { return "id_counters" }
