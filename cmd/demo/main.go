package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	campaignhttp "madison/contexts/ad-delivery/campaign-service/transport/http"
	disthttp "madison/contexts/ad-delivery/distribution-service/transport/http"
	tokenerrors "madison/contexts/ad-delivery/token-service/domain/errors"
	tokenhttp "madison/contexts/ad-delivery/token-service/transport/http"
	prefhttp "madison/contexts/identity-access/preference-service/transport/http"
	"madison/internal/app/bootstrap"
)

// Demo process: runs the full grant -> create -> distribute -> verify flow
// against the in-memory wiring. Useful as living documentation of the
// module's behavior without any infrastructure.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	const (
		admin      = "admin@madison"
		advertiser = "acme-ads"
		userOne    = "user-1"
		userTwo    = "user-2"
		userThree  = "user-3"
	)

	ctx := context.Background()
	modules := bootstrap.BuildInMemory(admin, logger)

	// Administrator grants the advertiser role.
	grant, err := modules.Roles.Handler.GrantAdvertiserHandler(ctx, advertiser, admin)
	must(err)
	fmt.Printf("granted advertiser role to %s (changed=%v)\n", grant.Address, grant.Changed)

	// Advertiser creates a campaign.
	created, err := modules.Campaigns.Handler.CreateCampaignHandler(ctx, advertiser, "", campaignhttp.CreateCampaignRequest{
		ContentRef: "ipfs://bafybeigdemo",
	})
	must(err)
	fmt.Printf("created campaign %d -> %s\n", created.Campaign.CampaignID, created.Campaign.ContentRef)

	// One recipient opts out entirely.
	_, err = modules.Preferences.Handler.SetOptOutHandler(ctx, userTwo, prefhttp.SetOptOutRequest{OptOut: true})
	must(err)
	fmt.Printf("%s opted out of all distributions\n", userTwo)

	// Distribute to three recipients; the opted-out one is skipped silently.
	sent, err := modules.Distribution.Handler.SendToManyHandler(ctx, advertiser, "", disthttp.SendToManyRequest{
		CampaignID: created.Campaign.CampaignID,
		Recipients: []string{userOne, userTwo, userThree},
	})
	must(err)
	fmt.Printf("batch %s: requested=%d issued=%d skipped=%d tokens=%v\n",
		sent.Batch.BatchID, sent.Batch.RequestedCount, sent.Batch.IssuedCount,
		sent.Batch.SkippedCount, sent.Batch.TokenIDs)

	// Recipients hold their tokens and can resolve the campaign content.
	for _, user := range []string{userOne, userTwo, userThree} {
		balance, err := modules.Tokens.Handler.BalanceOfHandler(ctx, user)
		must(err)
		fmt.Printf("%s balance: %d\n", user, balance.Balance)
	}
	contentRef, err := modules.Tokens.Handler.ContentRefOfHandler(ctx, sent.Batch.TokenIDs[0])
	must(err)
	fmt.Printf("token %d resolves content %s\n", contentRef.TokenID, contentRef.ContentRef)

	// Tokens are soulbound: any transfer attempt fails.
	err = modules.Tokens.Handler.TransferTokenHandler(ctx, userOne, sent.Batch.TokenIDs[0], tokenhttp.TransferTokenRequest{To: userThree})
	if !errors.Is(err, tokenerrors.ErrTokenNotTransferable) {
		log.Fatalf("expected transfer rejection, got %v", err)
	}
	fmt.Println("transfer attempt rejected: tokens are non-transferable")
}

func must(err error) {
	if err != nil {
		log.Fatalf("demo failed: %v", err)
	}
}
