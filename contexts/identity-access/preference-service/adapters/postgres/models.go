package postgresadapter

import "time"

type userPreferenceModel struct {
	Address      string    `gorm:"column:address;primaryKey"`
	GlobalOptOut bool      `gorm:"column:global_opt_out"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userPreferenceModel) TableName() string { return "user_preferences" }

type advertiserBlockModel struct {
	UserAddress       string    `gorm:"column:user_address;primaryKey"`
	AdvertiserAddress string    `gorm:"column:advertiser_address;primaryKey"`
	Blocked           bool      `gorm:"column:blocked"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (advertiserBlockModel) TableName() string { return "advertiser_blocks" }

type outboxModel struct {
	OutboxID    string     `gorm:"column:outbox_id;primaryKey"`
	EventType   string     `gorm:"column:event_type"`
	Payload     []byte     `gorm:"column:payload"`
	Status      string     `gorm:"column:status"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "preference_outbox_messages" }
