package entities

import "time"

// DistributionBatch journals one sendToMany execution. TokenIDs lists the
// ids actually issued, in recipient order; skipped recipients leave no trace
// beyond the count.
type DistributionBatch struct {
	BatchID        string    `json:"batch_id"`
	CampaignID     uint64    `json:"campaign_id"`
	SenderID       string    `json:"sender_id"`
	RequestedCount int       `json:"requested_count"`
	IssuedCount    int       `json:"issued_count"`
	SkippedCount   int       `json:"skipped_count"`
	TokenIDs       []uint64  `json:"token_ids"`
	CreatedAt      time.Time `json:"created_at"`
}
