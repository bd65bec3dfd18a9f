package httptransport

import "time"

type SendToManyRequest struct {
	CampaignID uint64   `json:"campaign_id"`
	Recipients []string `json:"recipients"`
}

type BatchDTO struct {
	BatchID        string    `json:"batch_id"`
	CampaignID     uint64    `json:"campaign_id"`
	Sender         string    `json:"sender"`
	RequestedCount int       `json:"requested_count"`
	IssuedCount    int       `json:"issued_count"`
	SkippedCount   int       `json:"skipped_count"`
	TokenIDs       []uint64  `json:"token_ids"`
	CreatedAt      time.Time `json:"created_at"`
}

// SendToManyResponse reports the batch outcome; replayed=true marks an
// idempotency-key replay returning the original issuance.
type SendToManyResponse struct {
	Batch    BatchDTO `json:"batch"`
	Replayed bool     `json:"replayed"`
}

type GetBatchResponse struct {
	Batch BatchDTO `json:"batch"`
}

type ListBatchesResponse struct {
	CampaignID uint64     `json:"campaign_id"`
	Batches    []BatchDTO `json:"batches"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
