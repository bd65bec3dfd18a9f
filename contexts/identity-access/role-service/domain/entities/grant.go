package entities

import "time"

// AdvertiserGrant captures an active or historical advertiser role relation.
type AdvertiserGrant struct {
	Address   string     `json:"address"`
	GrantedBy string     `json:"granted_by"`
	GrantedAt time.Time  `json:"granted_at"`
	Active    bool       `json:"active"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}
