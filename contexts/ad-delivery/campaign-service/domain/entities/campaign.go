package entities

import (
	"strings"
	"time"
)

// Campaign is an advertiser-owned content reference with an active flag.
// CampaignID is assigned by the registry on creation and immutable after.
type Campaign struct {
	CampaignID uint64    `json:"campaign_id"`
	OwnerID    string    `json:"owner_id"`
	ContentRef string    `json:"content_ref"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c Campaign) ValidateBasics() bool {
	return strings.TrimSpace(c.OwnerID) != "" && strings.TrimSpace(c.ContentRef) != ""
}
