package httptransport

import "time"

type CreateCampaignRequest struct {
	ContentRef string `json:"content_ref"`
}

type SetCampaignStatusRequest struct {
	Active bool `json:"active"`
}

type CampaignDTO struct {
	CampaignID uint64    `json:"campaign_id"`
	Owner      string    `json:"owner"`
	ContentRef string    `json:"content_ref"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateCampaignResponse reports the new campaign; replayed=true marks an
// idempotency-key replay returning the original allocation.
type CreateCampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
	Replayed bool        `json:"replayed"`
}

type SetCampaignStatusResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type GetCampaignResponse struct {
	Campaign CampaignDTO `json:"campaign"`
}

type ListCampaignsResponse struct {
	Campaigns []CampaignDTO `json:"campaigns"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
