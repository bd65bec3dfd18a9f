package entities

import "time"

// PreferenceRecord holds one user's standing distribution preferences.
// A user without a stored record has the zero-value defaults: no global
// opt-out and no blocked advertisers.
type PreferenceRecord struct {
	Address            string    `json:"address"`
	GlobalOptOut       bool      `json:"global_opt_out"`
	BlockedAdvertisers []string  `json:"blocked_advertisers"`
	UpdatedAt          time.Time `json:"updated_at"`
}
