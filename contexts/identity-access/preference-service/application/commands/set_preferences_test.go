package commands

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"madison/contexts/identity-access/preference-service/adapters/memory"
	"madison/contexts/identity-access/preference-service/application/queries"
	domainerrors "madison/contexts/identity-access/preference-service/domain/errors"
)

func newPreferenceFixture() (*memory.Store, SetGlobalOptOutUseCase, SetAdvertiserBlockUseCase, queries.CheckEligibilityUseCase) {
	store := memory.NewStore()
	optOut := SetGlobalOptOutUseCase{
		Repository:  store,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      slog.Default(),
	}
	block := SetAdvertiserBlockUseCase{
		Repository:  store,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      slog.Default(),
	}
	eligibility := queries.CheckEligibilityUseCase{Repository: store, Logger: slog.Default()}
	return store, optOut, block, eligibility
}

func TestUnknownUserIsEligibleByDefault(t *testing.T) {
	_, _, _, eligibility := newPreferenceFixture()

	eligible, err := eligibility.Execute(context.Background(), "user-1", "acme")
	if err != nil {
		t.Fatalf("eligibility check failed: %v", err)
	}
	if !eligible {
		t.Fatal("expected unknown user to be eligible by default")
	}
}

func TestGlobalOptOutBlocksAllAdvertisers(t *testing.T) {
	_, optOut, _, eligibility := newPreferenceFixture()
	ctx := context.Background()

	if _, err := optOut.Execute(ctx, SetGlobalOptOutCommand{CallerID: "user-1", OptOut: true}); err != nil {
		t.Fatalf("opt-out failed: %v", err)
	}

	for _, advertiser := range []string{"acme", "globex"} {
		eligible, err := eligibility.Execute(ctx, "user-1", advertiser)
		if err != nil {
			t.Fatalf("eligibility check failed: %v", err)
		}
		if eligible {
			t.Fatalf("expected opted-out user to be ineligible for %s", advertiser)
		}
	}

	// Opting back in restores eligibility.
	if _, err := optOut.Execute(ctx, SetGlobalOptOutCommand{CallerID: "user-1", OptOut: false}); err != nil {
		t.Fatalf("opt-in failed: %v", err)
	}
	eligible, err := eligibility.Execute(ctx, "user-1", "acme")
	if err != nil {
		t.Fatalf("eligibility check failed: %v", err)
	}
	if !eligible {
		t.Fatal("expected opted-back-in user to be eligible again")
	}
}

func TestAdvertiserBlockIsScopedToOneAdvertiser(t *testing.T) {
	_, _, block, eligibility := newPreferenceFixture()
	ctx := context.Background()

	if _, err := block.Execute(ctx, SetAdvertiserBlockCommand{
		CallerID:     "user-1",
		AdvertiserID: "acme",
		Blocked:      true,
	}); err != nil {
		t.Fatalf("block failed: %v", err)
	}

	blocked, err := eligibility.Execute(ctx, "user-1", "acme")
	if err != nil {
		t.Fatalf("eligibility check failed: %v", err)
	}
	if blocked {
		t.Fatal("expected user-1 to be ineligible for blocked advertiser")
	}

	other, err := eligibility.Execute(ctx, "user-1", "globex")
	if err != nil {
		t.Fatalf("eligibility check failed: %v", err)
	}
	if !other {
		t.Fatal("expected block to apply only to the named advertiser")
	}

	// Unblocking restores eligibility.
	if _, err := block.Execute(ctx, SetAdvertiserBlockCommand{
		CallerID:     "user-1",
		AdvertiserID: "acme",
		Blocked:      false,
	}); err != nil {
		t.Fatalf("unblock failed: %v", err)
	}
	restored, err := eligibility.Execute(ctx, "user-1", "acme")
	if err != nil {
		t.Fatalf("eligibility check failed: %v", err)
	}
	if !restored {
		t.Fatal("expected eligibility after unblock")
	}
}

func TestPreferenceWritesRejectNullIdentities(t *testing.T) {
	_, optOut, block, _ := newPreferenceFixture()
	ctx := context.Background()

	if _, err := optOut.Execute(ctx, SetGlobalOptOutCommand{CallerID: "  ", OptOut: true}); !errors.Is(err, domainerrors.ErrNullAddress) {
		t.Fatalf("expected ErrNullAddress, got %v", err)
	}
	if _, err := block.Execute(ctx, SetAdvertiserBlockCommand{CallerID: "", AdvertiserID: "acme", Blocked: true}); !errors.Is(err, domainerrors.ErrNullAddress) {
		t.Fatalf("expected ErrNullAddress, got %v", err)
	}
	if _, err := block.Execute(ctx, SetAdvertiserBlockCommand{CallerID: "user-1", AdvertiserID: " ", Blocked: true}); !errors.Is(err, domainerrors.ErrNullAdvertiser) {
		t.Fatalf("expected ErrNullAdvertiser, got %v", err)
	}
}

func TestRepeatedOptOutWritesStillNotify(t *testing.T) {
	store, optOut, _, _ := newPreferenceFixture()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := optOut.Execute(ctx, SetGlobalOptOutCommand{CallerID: "user-1", OptOut: true}); err != nil {
			t.Fatalf("opt-out failed: %v", err)
		}
	}

	pending, err := store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("ListPendingOutbox failed: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected a notification per write, got %d", len(pending))
	}
}
