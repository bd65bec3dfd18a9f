package entities

import "time"

// AdToken is a non-transferable receipt binding one recipient to one
// campaign at issuance time. Ownership is fixed for the token's lifetime.
type AdToken struct {
	TokenID    uint64    `json:"token_id"`
	Owner      string    `json:"owner"`
	CampaignID uint64    `json:"campaign_id"`
	IssuedAt   time.Time `json:"issued_at"`
}
