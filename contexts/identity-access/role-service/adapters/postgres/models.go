package postgresadapter

import (
	"time"

	"madison/contexts/identity-access/role-service/domain/entities"
)

type administratorModel struct {
	Address   string    `gorm:"column:address;primaryKey"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (administratorModel) TableName() string { return "role_administrators" }

type advertiserGrantModel struct {
	Address   string     `gorm:"column:address;primaryKey"`
	GrantedBy string     `gorm:"column:granted_by"`
	GrantedAt time.Time  `gorm:"column:granted_at"`
	Active    bool       `gorm:"column:active"`
	RevokedAt *time.Time `gorm:"column:revoked_at"`
}

func (advertiserGrantModel) TableName() string { return "advertiser_grants" }

func grantModelFromEntity(grant entities.AdvertiserGrant) advertiserGrantModel {
	return advertiserGrantModel{
		Address:   grant.Address,
		GrantedBy: grant.GrantedBy,
		GrantedAt: grant.GrantedAt,
		Active:    grant.Active,
		RevokedAt: grant.RevokedAt,
	}
}

func (m advertiserGrantModel) toEntity() entities.AdvertiserGrant {
	return entities.AdvertiserGrant{
		Address:   m.Address,
		GrantedBy: m.GrantedBy,
		GrantedAt: m.GrantedAt,
		Active:    m.Active,
		RevokedAt: m.RevokedAt,
	}
}

type outboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "role_outbox_messages" }
