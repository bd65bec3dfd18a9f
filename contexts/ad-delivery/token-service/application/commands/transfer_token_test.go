package commands

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"madison/contexts/ad-delivery/token-service/adapters/memory"
	domainerrors "madison/contexts/ad-delivery/token-service/domain/errors"
)

func TestTransferAlwaysRejectedForExistingToken(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	issued, err := store.IssueTokens(ctx, 1, []string{"user-1"}, time.Now().UTC())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	useCase := TransferTokenUseCase{Ledger: store, Logger: slog.Default()}

	// Neither the owner nor anyone else can move a token.
	for _, caller := range []string{"user-1", "user-2"} {
		err := useCase.Execute(ctx, TransferTokenCommand{
			CallerID: caller,
			TokenID:  issued[0].TokenID,
			ToID:     "user-3",
		})
		if !errors.Is(err, domainerrors.ErrTokenNotTransferable) {
			t.Fatalf("caller %s: expected ErrTokenNotTransferable, got %v", caller, err)
		}
	}

	// Ownership is unchanged after the attempts.
	token, err := store.GetToken(ctx, issued[0].TokenID)
	if err != nil {
		t.Fatalf("GetToken failed: %v", err)
	}
	if token.Owner != "user-1" {
		t.Fatalf("expected owner user-1, got %q", token.Owner)
	}
}

func TestTransferUnknownTokenIsNotFound(t *testing.T) {
	store := memory.NewStore()
	useCase := TransferTokenUseCase{Ledger: store, Logger: slog.Default()}

	for _, tokenID := range []uint64{0, 99} {
		err := useCase.Execute(context.Background(), TransferTokenCommand{
			CallerID: "user-1",
			TokenID:  tokenID,
			ToID:     "user-2",
		})
		if !errors.Is(err, domainerrors.ErrTokenNotFound) {
			t.Fatalf("token %d: expected ErrTokenNotFound, got %v", tokenID, err)
		}
	}
}
