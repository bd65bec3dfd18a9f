package ports

import (
	"context"
	"time"

	"madison/contexts/ad-delivery/token-service/domain/entities"
)

// LedgerRepository is the write/read boundary for token state.
// IssueTokens allocates one monotonic id per owner and persists all records
// atomically with the counter bump: either every token in the batch exists
// afterwards or none does.
type LedgerRepository interface {
	IssueTokens(ctx context.Context, campaignID uint64, owners []string, issuedAt time.Time) ([]entities.AdToken, error)
	GetToken(ctx context.Context, tokenID uint64) (entities.AdToken, error)
	BalanceOf(ctx context.Context, owner string) (int64, error)
	ListTokensByOwner(ctx context.Context, owner string) ([]entities.AdToken, error)
}

// CampaignReader resolves campaign content references for token queries.
// Implemented by a thin glue adapter over the campaign module at wiring time.
type CampaignReader interface {
	ContentRef(ctx context.Context, campaignID uint64) (string, error)
}
