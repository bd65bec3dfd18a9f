package queries

import (
	"context"
	"log/slog"

	"madison/contexts/ad-delivery/token-service/domain/entities"
	domainerrors "madison/contexts/ad-delivery/token-service/domain/errors"
	"madison/contexts/ad-delivery/token-service/ports"
)

// GetTokenUseCase resolves a single token record.
// Id 0 is never assigned and always resolves to not found.
type GetTokenUseCase struct {
	Ledger ports.LedgerRepository
	Logger *slog.Logger
}

func (u GetTokenUseCase) Execute(ctx context.Context, tokenID uint64) (entities.AdToken, error) {
	if tokenID == 0 {
		return entities.AdToken{}, domainerrors.ErrTokenNotFound
	}
	return u.Ledger.GetToken(ctx, tokenID)
}

// OwnerOfUseCase resolves the permanent owner of a token.
type OwnerOfUseCase struct {
	Ledger ports.LedgerRepository
	Logger *slog.Logger
}

func (u OwnerOfUseCase) Execute(ctx context.Context, tokenID uint64) (string, error) {
	if tokenID == 0 {
		return "", domainerrors.ErrTokenNotFound
	}
	token, err := u.Ledger.GetToken(ctx, tokenID)
	if err != nil {
		return "", err
	}
	return token.Owner, nil
}

// BalanceOfUseCase counts tokens held by an address. Unknown addresses hold
// zero tokens; the query never fails on identity grounds.
type BalanceOfUseCase struct {
	Ledger ports.LedgerRepository
	Logger *slog.Logger
}

func (u BalanceOfUseCase) Execute(ctx context.Context, owner string) (int64, error) {
	return u.Ledger.BalanceOf(ctx, owner)
}

// ContentRefOfUseCase resolves the content reference of the campaign a token
// was issued under. The indirection through the campaign registry means all
// tokens of one campaign always agree on the reference.
type ContentRefOfUseCase struct {
	Ledger    ports.LedgerRepository
	Campaigns ports.CampaignReader
	Logger    *slog.Logger
}

func (u ContentRefOfUseCase) Execute(ctx context.Context, tokenID uint64) (string, error) {
	if tokenID == 0 {
		return "", domainerrors.ErrTokenNotFound
	}
	token, err := u.Ledger.GetToken(ctx, tokenID)
	if err != nil {
		return "", err
	}
	return u.Campaigns.ContentRef(ctx, token.CampaignID)
}

// ListTokensUseCase lists every token held by an address, oldest first.
type ListTokensUseCase struct {
	Ledger ports.LedgerRepository
	Logger *slog.Logger
}

func (u ListTokensUseCase) Execute(ctx context.Context, owner string) ([]entities.AdToken, error) {
	return u.Ledger.ListTokensByOwner(ctx, owner)
}
