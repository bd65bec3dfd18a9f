package httptransport

import "time"

type TransferTokenRequest struct {
	To string `json:"to"`
}

type TokenDTO struct {
	TokenID    uint64    `json:"token_id"`
	Owner      string    `json:"owner"`
	CampaignID uint64    `json:"campaign_id"`
	IssuedAt   time.Time `json:"issued_at"`
}

type GetTokenResponse struct {
	Token TokenDTO `json:"token"`
}

type OwnerOfResponse struct {
	TokenID uint64 `json:"token_id"`
	Owner   string `json:"owner"`
}

type BalanceOfResponse struct {
	Address string `json:"address"`
	Balance int64  `json:"balance"`
}

type ContentRefOfResponse struct {
	TokenID    uint64 `json:"token_id"`
	ContentRef string `json:"content_ref"`
}

type ListTokensResponse struct {
	Owner  string     `json:"owner"`
	Tokens []TokenDTO `json:"tokens"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
