package commands

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"madison/contexts/identity-access/role-service/adapters/memory"
	domainerrors "madison/contexts/identity-access/role-service/domain/errors"
)

const testAdmin = "admin@example"

func newGrantUseCase(store *memory.Store) GrantAdvertiserUseCase {
	return GrantAdvertiserUseCase{
		Repository:  store,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      slog.Default(),
	}
}

func newRevokeUseCase(store *memory.Store) RevokeAdvertiserUseCase {
	return RevokeAdvertiserUseCase{
		Repository:  store,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      slog.Default(),
	}
}

func TestGrantAdvertiserByAdministrator(t *testing.T) {
	store := memory.NewStore(testAdmin)
	useCase := newGrantUseCase(store)

	result, err := useCase.Execute(context.Background(), GrantAdvertiserCommand{
		CallerID: testAdmin,
		TargetID: "acme",
	})
	if err != nil {
		t.Fatalf("grant failed: %v", err)
	}
	if !result.Changed {
		t.Fatal("expected first grant to change state")
	}
	if result.Grant.Address != "acme" || result.Grant.GrantedBy != testAdmin {
		t.Fatalf("unexpected grant: %+v", result.Grant)
	}

	isAdvertiser, err := store.IsAdvertiser(context.Background(), "acme")
	if err != nil {
		t.Fatalf("IsAdvertiser failed: %v", err)
	}
	if !isAdvertiser {
		t.Fatal("expected acme to be an advertiser after grant")
	}
}

func TestGrantAdvertiserRejectsNonAdministrator(t *testing.T) {
	store := memory.NewStore(testAdmin)
	useCase := newGrantUseCase(store)

	_, err := useCase.Execute(context.Background(), GrantAdvertiserCommand{
		CallerID: "mallory",
		TargetID: "acme",
	})
	if !errors.Is(err, domainerrors.ErrNotAdministrator) {
		t.Fatalf("expected ErrNotAdministrator, got %v", err)
	}
}

func TestGrantAdvertiserRejectsNullTarget(t *testing.T) {
	store := memory.NewStore(testAdmin)
	useCase := newGrantUseCase(store)

	for _, target := range []string{"", "   "} {
		_, err := useCase.Execute(context.Background(), GrantAdvertiserCommand{
			CallerID: testAdmin,
			TargetID: target,
		})
		if !errors.Is(err, domainerrors.ErrNullAddress) {
			t.Fatalf("target %q: expected ErrNullAddress, got %v", target, err)
		}
	}
}

func TestGrantAdvertiserTwiceIsNoOp(t *testing.T) {
	store := memory.NewStore(testAdmin)
	useCase := newGrantUseCase(store)

	ctx := context.Background()
	if _, err := useCase.Execute(ctx, GrantAdvertiserCommand{CallerID: testAdmin, TargetID: "acme"}); err != nil {
		t.Fatalf("first grant failed: %v", err)
	}
	second, err := useCase.Execute(ctx, GrantAdvertiserCommand{CallerID: testAdmin, TargetID: "acme"})
	if err != nil {
		t.Fatalf("second grant failed: %v", err)
	}
	if second.Changed {
		t.Fatal("expected second grant to be a no-op")
	}

	pending, err := store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("ListPendingOutbox failed: %v", err)
	}
	if len(pending) != 1 {
		t.Fatalf("expected one outbox event for the single state change, got %d", len(pending))
	}
	if pending[0].EventType != "role.advertiser_granted" {
		t.Fatalf("unexpected event type %q", pending[0].EventType)
	}
}

func TestRevokeAdvertiserLifecycle(t *testing.T) {
	store := memory.NewStore(testAdmin)
	grant := newGrantUseCase(store)
	revoke := newRevokeUseCase(store)

	ctx := context.Background()
	if _, err := grant.Execute(ctx, GrantAdvertiserCommand{CallerID: testAdmin, TargetID: "acme"}); err != nil {
		t.Fatalf("grant failed: %v", err)
	}

	revoked, err := revoke.Execute(ctx, RevokeAdvertiserCommand{CallerID: testAdmin, TargetID: "acme"})
	if err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if !revoked.Changed {
		t.Fatal("expected revoke to change state")
	}

	isAdvertiser, err := store.IsAdvertiser(ctx, "acme")
	if err != nil {
		t.Fatalf("IsAdvertiser failed: %v", err)
	}
	if isAdvertiser {
		t.Fatal("expected acme to lose the advertiser role")
	}

	// Regrant restores the role.
	regrant, err := grant.Execute(ctx, GrantAdvertiserCommand{CallerID: testAdmin, TargetID: "acme"})
	if err != nil {
		t.Fatalf("regrant failed: %v", err)
	}
	if !regrant.Changed {
		t.Fatal("expected regrant after revoke to change state")
	}
}

func TestRevokeAdvertiserRejectsNonAdministrator(t *testing.T) {
	store := memory.NewStore(testAdmin)
	useCase := newRevokeUseCase(store)

	_, err := useCase.Execute(context.Background(), RevokeAdvertiserCommand{
		CallerID: "mallory",
		TargetID: "acme",
	})
	if !errors.Is(err, domainerrors.ErrNotAdministrator) {
		t.Fatalf("expected ErrNotAdministrator, got %v", err)
	}
}

func TestRevokeNullTargetIsNoOp(t *testing.T) {
	store := memory.NewStore(testAdmin)
	useCase := newRevokeUseCase(store)

	result, err := useCase.Execute(context.Background(), RevokeAdvertiserCommand{
		CallerID: testAdmin,
		TargetID: "",
	})
	if err != nil {
		t.Fatalf("revoke of null target should succeed as no-op, got %v", err)
	}
	if result.Changed {
		t.Fatal("expected no state change for null target")
	}
}

func TestRevokeUnknownAdvertiserIsNoOp(t *testing.T) {
	store := memory.NewStore(testAdmin)
	useCase := newRevokeUseCase(store)

	result, err := useCase.Execute(context.Background(), RevokeAdvertiserCommand{
		CallerID: testAdmin,
		TargetID: "never-granted",
	})
	if err != nil {
		t.Fatalf("revoke failed: %v", err)
	}
	if result.Changed {
		t.Fatal("expected no state change for never-granted address")
	}
}
