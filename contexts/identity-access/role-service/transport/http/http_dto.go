package httptransport

import "time"

// GrantAdvertiserResponse reports the grant outcome; changed=false marks an
// idempotent replay of an existing grant.
type GrantAdvertiserResponse struct {
	Address   string    `json:"address"`
	GrantedBy string    `json:"granted_by"`
	GrantedAt time.Time `json:"granted_at"`
	Changed   bool      `json:"changed"`
}

type RevokeAdvertiserResponse struct {
	Address string `json:"address"`
	Changed bool   `json:"changed"`
}

type RoleCheckResponse struct {
	Address       string `json:"address"`
	Advertiser    bool   `json:"advertiser"`
	Administrator bool   `json:"administrator"`
}

type AdvertiserGrantDTO struct {
	Address   string     `json:"address"`
	GrantedBy string     `json:"granted_by"`
	GrantedAt time.Time  `json:"granted_at"`
	Active    bool       `json:"active"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

type ListAdvertisersResponse struct {
	Advertisers []AdvertiserGrantDTO `json:"advertisers"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
