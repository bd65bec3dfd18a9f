package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	campaigntransport "madison/contexts/ad-delivery/campaign-service/transport/http"
	distributiontransport "madison/contexts/ad-delivery/distribution-service/transport/http"
	tokenerrors "madison/contexts/ad-delivery/token-service/domain/errors"
	tokentransport "madison/contexts/ad-delivery/token-service/transport/http"
	preferencetransport "madison/contexts/identity-access/preference-service/transport/http"
)

// TestInMemoryRegistryLifecycle drives the whole registry through the same
// module handlers the HTTP layer calls: grant a role, create a campaign,
// record an opt-out, distribute, then inspect the ledger.
func TestInMemoryRegistryLifecycle(t *testing.T) {
	modules := BuildInMemory("admin@example", slog.Default())
	ctx := context.Background()

	// The administrator grants the advertiser role.
	if _, err := modules.Roles.Handler.GrantAdvertiserHandler(ctx, "acme", "admin@example"); err != nil {
		t.Fatalf("grant failed: %v", err)
	}

	// The advertiser opens a campaign; the registry's first campaign is id 1.
	created, err := modules.Campaigns.Handler.CreateCampaignHandler(ctx, "acme", "",
		campaigntransport.CreateCampaignRequest{ContentRef: "ipfs://creative-1"})
	if err != nil {
		t.Fatalf("create campaign failed: %v", err)
	}
	if created.Campaign.CampaignID != 1 {
		t.Fatalf("expected campaign id 1, got %d", created.Campaign.CampaignID)
	}

	// user-3 opts out before the send and must be skipped silently.
	if _, err := modules.Preferences.Handler.SetOptOutHandler(ctx, "user-3",
		preferencetransport.SetOptOutRequest{OptOut: true}); err != nil {
		t.Fatalf("opt-out failed: %v", err)
	}

	sent, err := modules.Distribution.Handler.SendToManyHandler(ctx, "acme", "",
		distributiontransport.SendToManyRequest{
			CampaignID: created.Campaign.CampaignID,
			Recipients: []string{"user-1", "user-2", "user-3"},
		})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if sent.Batch.RequestedCount != 3 || sent.Batch.IssuedCount != 2 || sent.Batch.SkippedCount != 1 {
		t.Fatalf("unexpected batch counts: %+v", sent.Batch)
	}
	if len(sent.Batch.TokenIDs) != 2 || sent.Batch.TokenIDs[0] != 1 || sent.Batch.TokenIDs[1] != 2 {
		t.Fatalf("expected token ids [1 2], got %v", sent.Batch.TokenIDs)
	}

	// Holders and balances reflect the issuance; the opted-out user got nothing.
	for i, holder := range []string{"user-1", "user-2"} {
		owner, err := modules.Tokens.Handler.OwnerOfHandler(ctx, sent.Batch.TokenIDs[i])
		if err != nil {
			t.Fatalf("OwnerOf failed: %v", err)
		}
		if owner.Owner != holder {
			t.Fatalf("token %d: expected owner %s, got %s", sent.Batch.TokenIDs[i], holder, owner.Owner)
		}
		balance, err := modules.Tokens.Handler.BalanceOfHandler(ctx, holder)
		if err != nil {
			t.Fatalf("BalanceOf failed: %v", err)
		}
		if balance.Balance != 1 {
			t.Fatalf("%s: expected balance 1, got %d", holder, balance.Balance)
		}
	}
	skippedBalance, err := modules.Tokens.Handler.BalanceOfHandler(ctx, "user-3")
	if err != nil {
		t.Fatalf("BalanceOf failed: %v", err)
	}
	if skippedBalance.Balance != 0 {
		t.Fatalf("expected opted-out user to hold nothing, got %d", skippedBalance.Balance)
	}

	// Content resolves through the campaign, identically for every token.
	for _, tokenID := range sent.Batch.TokenIDs {
		ref, err := modules.Tokens.Handler.ContentRefOfHandler(ctx, tokenID)
		if err != nil {
			t.Fatalf("ContentRefOf failed: %v", err)
		}
		if ref.ContentRef != "ipfs://creative-1" {
			t.Fatalf("token %d: expected ipfs://creative-1, got %q", tokenID, ref.ContentRef)
		}
	}

	// Tokens stay bound to their recipient.
	err = modules.Tokens.Handler.TransferTokenHandler(ctx, "user-1", sent.Batch.TokenIDs[0],
		tokentransport.TransferTokenRequest{To: "user-2"})
	if !errors.Is(err, tokenerrors.ErrTokenNotTransferable) {
		t.Fatalf("expected ErrTokenNotTransferable, got %v", err)
	}

	// The batch journal is queryable afterwards.
	batch, err := modules.Distribution.Handler.GetBatchHandler(ctx, sent.Batch.BatchID)
	if err != nil {
		t.Fatalf("GetBatch failed: %v", err)
	}
	if batch.Batch.IssuedCount != 2 {
		t.Fatalf("expected journaled issued count 2, got %d", batch.Batch.IssuedCount)
	}

	// A second campaign continues the id sequence.
	second, err := modules.Campaigns.Handler.CreateCampaignHandler(ctx, "acme", "",
		campaigntransport.CreateCampaignRequest{ContentRef: "ipfs://creative-2"})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if second.Campaign.CampaignID != 2 {
		t.Fatalf("expected campaign id 2, got %d", second.Campaign.CampaignID)
	}
}
