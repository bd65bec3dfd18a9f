package commands

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"madison/contexts/ad-delivery/campaign-service/adapters/memory"
	"madison/contexts/ad-delivery/campaign-service/application/queries"
	domainerrors "madison/contexts/ad-delivery/campaign-service/domain/errors"
)

// fakeRoles is a fixed role table; only listed addresses hold roles.
type fakeRoles struct {
	advertisers map[string]bool
	admins      map[string]bool
}

func (f fakeRoles) IsAdvertiser(_ context.Context, address string) (bool, error) {
	return f.advertisers[address], nil
}

func (f fakeRoles) IsAdministrator(_ context.Context, address string) (bool, error) {
	return f.admins[address], nil
}

func newCampaignFixture() (*memory.Store, CreateCampaignUseCase, SetCampaignStatusUseCase) {
	store := memory.NewStore()
	roles := fakeRoles{
		advertisers: map[string]bool{"acme": true, "globex": true},
		admins:      map[string]bool{"admin@example": true},
	}
	create := CreateCampaignUseCase{
		Campaigns:   store,
		Roles:       roles,
		Idempotency: store,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      slog.Default(),
	}
	status := SetCampaignStatusUseCase{
		Campaigns:   store,
		Roles:       roles,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      slog.Default(),
	}
	return store, create, status
}

func TestCreateCampaignAssignsMonotonicIDs(t *testing.T) {
	_, create, _ := newCampaignFixture()
	ctx := context.Background()

	for want := uint64(1); want <= 3; want++ {
		result, err := create.Execute(ctx, CreateCampaignCommand{
			CallerID:   "acme",
			ContentRef: "ipfs://content",
		})
		if err != nil {
			t.Fatalf("create %d failed: %v", want, err)
		}
		if result.Campaign.CampaignID != want {
			t.Fatalf("expected campaign id %d, got %d", want, result.Campaign.CampaignID)
		}
		if !result.Campaign.Active {
			t.Fatal("expected new campaign to start active")
		}
	}
}

func TestCreateCampaignRejectsNonAdvertiser(t *testing.T) {
	_, create, _ := newCampaignFixture()

	_, err := create.Execute(context.Background(), CreateCampaignCommand{
		CallerID:   "random-user",
		ContentRef: "ipfs://content",
	})
	if !errors.Is(err, domainerrors.ErrNotAdvertiser) {
		t.Fatalf("expected ErrNotAdvertiser, got %v", err)
	}
}

func TestCreateCampaignRejectsEmptyContentRef(t *testing.T) {
	_, create, _ := newCampaignFixture()

	for _, contentRef := range []string{"", "   "} {
		_, err := create.Execute(context.Background(), CreateCampaignCommand{
			CallerID:   "acme",
			ContentRef: contentRef,
		})
		if !errors.Is(err, domainerrors.ErrEmptyContentRef) {
			t.Fatalf("content ref %q: expected ErrEmptyContentRef, got %v", contentRef, err)
		}
	}
}

func TestCreateCampaignWithoutKeyAlwaysAllocatesFreshID(t *testing.T) {
	_, create, _ := newCampaignFixture()
	ctx := context.Background()

	first, err := create.Execute(ctx, CreateCampaignCommand{CallerID: "acme", ContentRef: "ipfs://same"})
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := create.Execute(ctx, CreateCampaignCommand{CallerID: "acme", ContentRef: "ipfs://same"})
	if err != nil {
		t.Fatalf("second create failed: %v", err)
	}
	if first.Campaign.CampaignID == second.Campaign.CampaignID {
		t.Fatal("expected identical requests without a key to allocate distinct ids")
	}
}

func TestCreateCampaignIdempotencyKeyReplays(t *testing.T) {
	_, create, _ := newCampaignFixture()
	ctx := context.Background()

	first, err := create.Execute(ctx, CreateCampaignCommand{
		CallerID:       "acme",
		ContentRef:     "ipfs://content",
		IdempotencyKey: "key-1",
	})
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	replay, err := create.Execute(ctx, CreateCampaignCommand{
		CallerID:       "acme",
		ContentRef:     "ipfs://content",
		IdempotencyKey: "key-1",
	})
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !replay.Replayed {
		t.Fatal("expected replay to be flagged")
	}
	if replay.Campaign.CampaignID != first.Campaign.CampaignID {
		t.Fatalf("expected replayed id %d, got %d", first.Campaign.CampaignID, replay.Campaign.CampaignID)
	}

	_, err = create.Execute(ctx, CreateCampaignCommand{
		CallerID:       "acme",
		ContentRef:     "ipfs://different",
		IdempotencyKey: "key-1",
	})
	if !errors.Is(err, domainerrors.ErrIdempotencyKeyConflict) {
		t.Fatalf("expected ErrIdempotencyKeyConflict, got %v", err)
	}
}

func TestSetCampaignStatusByOwnerAndAdministrator(t *testing.T) {
	store, create, status := newCampaignFixture()
	ctx := context.Background()

	created, err := create.Execute(ctx, CreateCampaignCommand{CallerID: "acme", ContentRef: "ipfs://content"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	campaignID := created.Campaign.CampaignID

	deactivated, err := status.Execute(ctx, SetCampaignStatusCommand{
		CallerID:   "acme",
		CampaignID: campaignID,
		Active:     false,
	})
	if err != nil {
		t.Fatalf("owner deactivate failed: %v", err)
	}
	if deactivated.Campaign.Active {
		t.Fatal("expected campaign to be inactive")
	}

	reactivated, err := status.Execute(ctx, SetCampaignStatusCommand{
		CallerID:   "admin@example",
		CampaignID: campaignID,
		Active:     true,
	})
	if err != nil {
		t.Fatalf("administrator reactivate failed: %v", err)
	}
	if !reactivated.Campaign.Active {
		t.Fatal("expected campaign to be active again")
	}

	// Another advertiser cannot touch the campaign.
	_, err = status.Execute(ctx, SetCampaignStatusCommand{
		CallerID:   "globex",
		CampaignID: campaignID,
		Active:     false,
	})
	if !errors.Is(err, domainerrors.ErrNotCampaignOwner) {
		t.Fatalf("expected ErrNotCampaignOwner, got %v", err)
	}

	// The record itself never disappears.
	stored, err := store.GetCampaign(ctx, campaignID)
	if err != nil {
		t.Fatalf("GetCampaign failed: %v", err)
	}
	if stored.OwnerID != "acme" {
		t.Fatalf("unexpected owner %q", stored.OwnerID)
	}
}

func TestSetCampaignStatusUnknownCampaign(t *testing.T) {
	_, _, status := newCampaignFixture()

	_, err := status.Execute(context.Background(), SetCampaignStatusCommand{
		CallerID:   "acme",
		CampaignID: 42,
		Active:     false,
	})
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

func TestGetCampaignZeroIDIsNotFound(t *testing.T) {
	store, _, _ := newCampaignFixture()
	get := queries.GetCampaignUseCase{Campaigns: store, Logger: slog.Default()}

	_, err := get.Execute(context.Background(), 0)
	if !errors.Is(err, domainerrors.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound for id 0, got %v", err)
	}
}
