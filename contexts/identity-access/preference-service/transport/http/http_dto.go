package httptransport

import "time"

type SetOptOutRequest struct {
	OptOut bool `json:"opt_out"`
}

type SetOptOutResponse struct {
	Address   string    `json:"address"`
	OptOut    bool      `json:"opt_out"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SetBlockRequest struct {
	Blocked bool `json:"blocked"`
}

type SetBlockResponse struct {
	Address    string    `json:"address"`
	Advertiser string    `json:"advertiser"`
	Blocked    bool      `json:"blocked"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type PreferencesResponse struct {
	Address            string    `json:"address"`
	GlobalOptOut       bool      `json:"global_opt_out"`
	BlockedAdvertisers []string  `json:"blocked_advertisers"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type EligibilityResponse struct {
	Address    string `json:"address"`
	Advertiser string `json:"advertiser"`
	Eligible   bool   `json:"eligible"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
