package commands

import (
	"context"
	"log/slog"

	application "madison/contexts/ad-delivery/token-service/application"
	domainerrors "madison/contexts/ad-delivery/token-service/domain/errors"
	"madison/contexts/ad-delivery/token-service/ports"
)

// TransferTokenCommand is the transport-agnostic transfer request.
type TransferTokenCommand struct {
	CallerID string
	TokenID  uint64
	ToID     string
}

// TransferTokenUseCase rejects every transfer of an existing token. The
// lookup runs first so an unknown token id reports not-found rather than
// the transferability error.
type TransferTokenUseCase struct {
	Ledger ports.LedgerRepository
	Logger *slog.Logger
}

func (u TransferTokenUseCase) Execute(ctx context.Context, cmd TransferTokenCommand) error {
	logger := application.ResolveLogger(u.Logger)

	if cmd.TokenID == 0 {
		return domainerrors.ErrTokenNotFound
	}
	if _, err := u.Ledger.GetToken(ctx, cmd.TokenID); err != nil {
		return err
	}

	logger.Info("token transfer rejected",
		"event", "token_transfer_rejected",
		"module", "ad-delivery/token-service",
		"layer", "application",
		"token_id", cmd.TokenID,
		"caller", cmd.CallerID,
	)
	return domainerrors.ErrTokenNotTransferable
}
