package queries

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"madison/contexts/ad-delivery/token-service/adapters/memory"
	domainerrors "madison/contexts/ad-delivery/token-service/domain/errors"
)

type fakeCampaigns map[uint64]string

func (f fakeCampaigns) ContentRef(_ context.Context, campaignID uint64) (string, error) {
	ref, ok := f[campaignID]
	if !ok {
		return "", errors.New("campaign missing")
	}
	return ref, nil
}

func TestTokenIDsAreMonotonicAcrossBatches(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	first, err := store.IssueTokens(ctx, 1, []string{"a", "b"}, now)
	if err != nil {
		t.Fatalf("first batch failed: %v", err)
	}
	second, err := store.IssueTokens(ctx, 2, []string{"c"}, now)
	if err != nil {
		t.Fatalf("second batch failed: %v", err)
	}

	want := uint64(1)
	for _, token := range append(first, second...) {
		if token.TokenID != want {
			t.Fatalf("expected token id %d, got %d", want, token.TokenID)
		}
		want++
	}
}

func TestOwnerAndBalanceQueries(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	issued, err := store.IssueTokens(ctx, 1, []string{"user-1", "user-2", "user-1"}, time.Now().UTC())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	ownerOf := OwnerOfUseCase{Ledger: store, Logger: slog.Default()}
	owner, err := ownerOf.Execute(ctx, issued[1].TokenID)
	if err != nil {
		t.Fatalf("OwnerOf failed: %v", err)
	}
	if owner != "user-2" {
		t.Fatalf("expected owner user-2, got %q", owner)
	}

	balanceOf := BalanceOfUseCase{Ledger: store, Logger: slog.Default()}
	balance, err := balanceOf.Execute(ctx, "user-1")
	if err != nil {
		t.Fatalf("BalanceOf failed: %v", err)
	}
	if balance != 2 {
		t.Fatalf("expected balance 2, got %d", balance)
	}

	// Unknown holders simply have zero tokens.
	empty, err := balanceOf.Execute(ctx, "stranger")
	if err != nil {
		t.Fatalf("BalanceOf failed: %v", err)
	}
	if empty != 0 {
		t.Fatalf("expected balance 0, got %d", empty)
	}

	list := ListTokensUseCase{Ledger: store, Logger: slog.Default()}
	tokens, err := list.Execute(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListTokens failed: %v", err)
	}
	if len(tokens) != 2 || tokens[0].TokenID >= tokens[1].TokenID {
		t.Fatalf("expected two tokens in id order, got %+v", tokens)
	}
}

func TestContentRefResolvesThroughCampaign(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	issued, err := store.IssueTokens(ctx, 7, []string{"user-1", "user-2"}, time.Now().UTC())
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	useCase := ContentRefOfUseCase{
		Ledger:    store,
		Campaigns: fakeCampaigns{7: "ipfs://shared"},
		Logger:    slog.Default(),
	}

	// Every token of one campaign resolves the same reference.
	for _, token := range issued {
		ref, err := useCase.Execute(ctx, token.TokenID)
		if err != nil {
			t.Fatalf("ContentRefOf failed: %v", err)
		}
		if ref != "ipfs://shared" {
			t.Fatalf("expected ipfs://shared, got %q", ref)
		}
	}
}

func TestQueriesRejectUnknownToken(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	get := GetTokenUseCase{Ledger: store, Logger: slog.Default()}
	if _, err := get.Execute(ctx, 0); !errors.Is(err, domainerrors.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound for id 0, got %v", err)
	}

	contentRef := ContentRefOfUseCase{Ledger: store, Campaigns: fakeCampaigns{}, Logger: slog.Default()}
	if _, err := contentRef.Execute(ctx, 5); !errors.Is(err, domainerrors.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound for unissued id, got %v", err)
	}
}
