package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"madison/contexts/ad-delivery/distribution-service/adapters/memory"
	domainerrors "madison/contexts/ad-delivery/distribution-service/domain/errors"
	"madison/contexts/ad-delivery/distribution-service/ports"
)

type fakeRoles map[string]bool

func (f fakeRoles) IsAdvertiser(_ context.Context, address string) (bool, error) {
	return f[address], nil
}

type fakeCampaigns map[uint64]ports.CampaignView

func (f fakeCampaigns) GetCampaign(_ context.Context, campaignID uint64) (ports.CampaignView, error) {
	view, ok := f[campaignID]
	if !ok {
		return ports.CampaignView{}, domainerrors.ErrCampaignNotFound
	}
	return view, nil
}

// fakeEligibility marks listed "user|advertiser" pairs as ineligible.
type fakeEligibility map[string]bool

func (f fakeEligibility) IsEligible(_ context.Context, recipient string, advertiser string) (bool, error) {
	return !f[recipient+"|"+advertiser], nil
}

// fakeIssuer mints sequential ids and records every batch it was asked for.
type fakeIssuer struct {
	mu      sync.Mutex
	nextID  uint64
	batches [][]string
	fail    error
}

func (f *fakeIssuer) IssueTokens(_ context.Context, _ uint64, owners []string, _ time.Time) ([]ports.IssuedToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail != nil {
		return nil, f.fail
	}
	f.batches = append(f.batches, append([]string(nil), owners...))
	issued := make([]ports.IssuedToken, 0, len(owners))
	for _, owner := range owners {
		f.nextID++
		issued = append(issued, ports.IssuedToken{TokenID: f.nextID, Owner: owner})
	}
	return issued, nil
}

type fixture struct {
	store  *memory.Store
	issuer *fakeIssuer
	send   SendToManyUseCase
}

func newFixture(ineligible fakeEligibility) fixture {
	store := memory.NewStore()
	issuer := &fakeIssuer{}
	send := SendToManyUseCase{
		Roles: fakeRoles{"acme": true, "globex": true},
		Campaigns: fakeCampaigns{
			1: {CampaignID: 1, Owner: "acme", ContentRef: "ipfs://one", Active: true},
			2: {CampaignID: 2, Owner: "acme", ContentRef: "ipfs://two", Active: false},
		},
		Eligibility: ineligible,
		Issuer:      issuer,
		Batches:     store,
		Idempotency: store,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      slog.Default(),
	}
	return fixture{store: store, issuer: issuer, send: send}
}

func TestSendToManyPreconditions(t *testing.T) {
	f := newFixture(fakeEligibility{})
	ctx := context.Background()

	cases := []struct {
		name string
		cmd  SendToManyCommand
		want error
	}{
		{
			name: "non-advertiser sender",
			cmd:  SendToManyCommand{SenderID: "stranger", CampaignID: 1, Recipients: []string{"u1"}},
			want: domainerrors.ErrSenderNotAdvertiser,
		},
		{
			name: "unknown campaign",
			cmd:  SendToManyCommand{SenderID: "acme", CampaignID: 99, Recipients: []string{"u1"}},
			want: domainerrors.ErrCampaignNotFound,
		},
		{
			name: "inactive campaign",
			cmd:  SendToManyCommand{SenderID: "acme", CampaignID: 2, Recipients: []string{"u1"}},
			want: domainerrors.ErrCampaignInactive,
		},
		{
			name: "advertiser who does not own the campaign",
			cmd:  SendToManyCommand{SenderID: "globex", CampaignID: 1, Recipients: []string{"u1"}},
			want: domainerrors.ErrNotCampaignOwner,
		},
		{
			name: "empty recipient list",
			cmd:  SendToManyCommand{SenderID: "acme", CampaignID: 1, Recipients: nil},
			want: domainerrors.ErrNoRecipients,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.send.Execute(ctx, tc.cmd)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	if len(f.issuer.batches) != 0 {
		t.Fatalf("expected no issuance on failed preconditions, got %d batches", len(f.issuer.batches))
	}
}

func TestSendToManySkipsIneligibleSilently(t *testing.T) {
	f := newFixture(fakeEligibility{
		"u2|acme": true,
		"u4|acme": true,
	})
	ctx := context.Background()

	result, err := f.send.Execute(ctx, SendToManyCommand{
		SenderID:   "acme",
		CampaignID: 1,
		Recipients: []string{"u1", "u2", "", "u3", "u4"},
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	batch := result.Batch
	if batch.RequestedCount != 5 || batch.IssuedCount != 2 || batch.SkippedCount != 3 {
		t.Fatalf("unexpected counts: %+v", batch)
	}
	// Survivors keep request order.
	if len(f.issuer.batches) != 1 {
		t.Fatalf("expected one issuance batch, got %d", len(f.issuer.batches))
	}
	got := f.issuer.batches[0]
	if len(got) != 2 || got[0] != "u1" || got[1] != "u3" {
		t.Fatalf("expected issuance for [u1 u3] in order, got %v", got)
	}
	if len(batch.TokenIDs) != 2 || batch.TokenIDs[0] >= batch.TokenIDs[1] {
		t.Fatalf("expected ascending token ids, got %v", batch.TokenIDs)
	}
}

func TestSendToManyAllSkippedIsSuccess(t *testing.T) {
	f := newFixture(fakeEligibility{"u1|acme": true})
	ctx := context.Background()

	result, err := f.send.Execute(ctx, SendToManyCommand{
		SenderID:   "acme",
		CampaignID: 1,
		Recipients: []string{"u1"},
	})
	if err != nil {
		t.Fatalf("expected success when everyone is filtered, got %v", err)
	}
	if result.Batch.IssuedCount != 0 || result.Batch.SkippedCount != 1 {
		t.Fatalf("unexpected counts: %+v", result.Batch)
	}
	if len(f.issuer.batches) != 0 {
		t.Fatal("expected no issuance call for an empty eligible set")
	}
}

func TestSendToManyEmitsBatchAndTokenEvents(t *testing.T) {
	f := newFixture(fakeEligibility{})
	ctx := context.Background()

	_, err := f.send.Execute(ctx, SendToManyCommand{
		SenderID:   "acme",
		CampaignID: 1,
		Recipients: []string{"u1", "u2"},
	})
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}

	pending, err := f.store.ListPendingOutbox(ctx, 10)
	if err != nil {
		t.Fatalf("ListPendingOutbox failed: %v", err)
	}
	issuedEvents := 0
	batchEvents := 0
	for _, row := range pending {
		switch row.EventType {
		case "adtoken.issued":
			issuedEvents++
		case "distribution.batch_completed":
			batchEvents++
		default:
			t.Fatalf("unexpected event type %q", row.EventType)
		}
	}
	if issuedEvents != 2 || batchEvents != 1 {
		t.Fatalf("expected 2 issuance events and 1 batch event, got %d/%d", issuedEvents, batchEvents)
	}
}

func TestSendToManyIdempotencyKeyReplays(t *testing.T) {
	f := newFixture(fakeEligibility{})
	ctx := context.Background()

	cmd := SendToManyCommand{
		SenderID:       "acme",
		CampaignID:     1,
		Recipients:     []string{"u1"},
		IdempotencyKey: "batch-key",
	}
	first, err := f.send.Execute(ctx, cmd)
	if err != nil {
		t.Fatalf("first send failed: %v", err)
	}
	replay, err := f.send.Execute(ctx, cmd)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !replay.Replayed {
		t.Fatal("expected replay to be flagged")
	}
	if replay.Batch.BatchID != first.Batch.BatchID {
		t.Fatal("expected replay to return the original batch")
	}
	if len(f.issuer.batches) != 1 {
		t.Fatalf("expected a single issuance, got %d", len(f.issuer.batches))
	}

	// Same key with a different recipient list is a conflict.
	conflict := cmd
	conflict.Recipients = []string{"u1", "u2"}
	if _, err := f.send.Execute(ctx, conflict); !errors.Is(err, domainerrors.ErrIdempotencyKeyConflict) {
		t.Fatalf("expected ErrIdempotencyKeyConflict, got %v", err)
	}
}

func TestSendToManyWithoutKeyMintsFreshTokens(t *testing.T) {
	f := newFixture(fakeEligibility{})
	ctx := context.Background()

	cmd := SendToManyCommand{SenderID: "acme", CampaignID: 1, Recipients: []string{"u1"}}
	first, err := f.send.Execute(ctx, cmd)
	if err != nil {
		t.Fatalf("first send failed: %v", err)
	}
	second, err := f.send.Execute(ctx, cmd)
	if err != nil {
		t.Fatalf("second send failed: %v", err)
	}
	if first.Batch.TokenIDs[0] == second.Batch.TokenIDs[0] {
		t.Fatal("expected repeated sends without a key to mint distinct tokens")
	}
}

func TestSendToManyPropagatesIssuerFailure(t *testing.T) {
	f := newFixture(fakeEligibility{})
	f.issuer.fail = errors.New("ledger unavailable")
	ctx := context.Background()

	_, err := f.send.Execute(ctx, SendToManyCommand{
		SenderID:   "acme",
		CampaignID: 1,
		Recipients: []string{"u1"},
	})
	if err == nil || !errors.Is(err, f.issuer.fail) {
		t.Fatalf("expected issuer failure to propagate, got %v", err)
	}

	// Nothing is journaled for a failed batch.
	batches, listErr := f.store.ListBatchesByCampaign(ctx, 1)
	if listErr != nil {
		t.Fatalf("ListBatchesByCampaign failed: %v", listErr)
	}
	if len(batches) != 0 {
		t.Fatalf("expected no journaled batch after failure, got %d", len(batches))
	}
}
