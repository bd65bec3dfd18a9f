package httpserver_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"madison/internal/app/bootstrap"
	"madison/internal/platform/httpserver"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	modules := bootstrap.BuildInMemory("admin@example", slog.Default())
	return httpserver.New(modules, slog.Default(), ":0").Handler()
}

func do(t *testing.T, handler http.Handler, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)
	return recorder
}

func decode(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.NewDecoder(recorder.Body).Decode(target); err != nil {
		t.Fatalf("decoding response failed: %v", err)
	}
}

func TestWriteEndpointsRequireCaller(t *testing.T) {
	handler := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/roles/v1/advertisers/acme/grant"},
		{http.MethodPut, "/api/preferences/v1/opt-out"},
		{http.MethodPost, "/api/campaigns/v1/campaigns"},
		{http.MethodPost, "/api/tokens/v1/tokens/1/transfer"},
		{http.MethodPost, "/api/distribution/v1/send"},
	}
	for _, p := range paths {
		recorder := do(t, handler, p.method, p.path, "", "")
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401 without X-User-Id, got %d", p.method, p.path, recorder.Code)
		}
	}
}

func TestGrantRequiresAdministrator(t *testing.T) {
	handler := newTestServer(t)

	recorder := do(t, handler, http.MethodPost, "/api/roles/v1/advertisers/acme/grant", "random-user", "")
	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-administrator, got %d", recorder.Code)
	}

	recorder = do(t, handler, http.MethodPost, "/api/roles/v1/advertisers/acme/grant", "admin@example", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 for administrator grant, got %d", recorder.Code)
	}
}

func TestCampaignAndDistributionFlowOverHTTP(t *testing.T) {
	handler := newTestServer(t)

	// Grant the advertiser role first.
	if rec := do(t, handler, http.MethodPost, "/api/roles/v1/advertisers/acme/grant", "admin@example", ""); rec.Code != http.StatusOK {
		t.Fatalf("grant failed with %d", rec.Code)
	}

	// Create a campaign.
	rec := do(t, handler, http.MethodPost, "/api/campaigns/v1/campaigns", "acme",
		`{"content_ref":"ipfs://creative"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 on create, got %d: %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Campaign struct {
			CampaignID uint64 `json:"campaign_id"`
		} `json:"campaign"`
	}
	decode(t, rec, &created)
	if created.Campaign.CampaignID != 1 {
		t.Fatalf("expected campaign id 1, got %d", created.Campaign.CampaignID)
	}

	// Non-advertisers get a 403, never a campaign.
	if rec := do(t, handler, http.MethodPost, "/api/campaigns/v1/campaigns", "stranger",
		`{"content_ref":"ipfs://creative"}`); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-advertiser, got %d", rec.Code)
	}

	// Opt one recipient out, then distribute to three.
	if rec := do(t, handler, http.MethodPut, "/api/preferences/v1/opt-out", "user-3",
		`{"opt_out":true}`); rec.Code != http.StatusOK {
		t.Fatalf("opt-out failed with %d", rec.Code)
	}
	rec = do(t, handler, http.MethodPost, "/api/distribution/v1/send", "acme",
		`{"campaign_id":1,"recipients":["user-1","user-2","user-3"]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on send, got %d: %s", rec.Code, rec.Body.String())
	}
	var sent struct {
		Batch struct {
			IssuedCount  int      `json:"issued_count"`
			SkippedCount int      `json:"skipped_count"`
			TokenIDs     []uint64 `json:"token_ids"`
		} `json:"batch"`
	}
	decode(t, rec, &sent)
	if sent.Batch.IssuedCount != 2 || sent.Batch.SkippedCount != 1 {
		t.Fatalf("unexpected batch counts: %+v", sent.Batch)
	}

	// The holder can read the token but never move it.
	rec = do(t, handler, http.MethodGet, "/api/tokens/v1/tokens/1/owner", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on owner lookup, got %d", rec.Code)
	}
	if rec := do(t, handler, http.MethodPost, "/api/tokens/v1/tokens/1/transfer", "user-1",
		`{"to":"user-2"}`); rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 on transfer, got %d", rec.Code)
	}
}

func TestNotFoundAndValidationStatuses(t *testing.T) {
	handler := newTestServer(t)

	if rec := do(t, handler, http.MethodGet, "/api/tokens/v1/tokens/99", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown token, got %d", rec.Code)
	}
	if rec := do(t, handler, http.MethodGet, "/api/campaigns/v1/campaigns/99", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown campaign, got %d", rec.Code)
	}
	if rec := do(t, handler, http.MethodGet, "/api/campaigns/v1/campaigns/not-a-number", "", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed campaign id, got %d", rec.Code)
	}
	if rec := do(t, handler, http.MethodGet, "/api/distribution/v1/batches/missing", "", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown batch, got %d", rec.Code)
	}

	// Unknown addresses read as eligible with zero balance rather than erroring.
	rec := do(t, handler, http.MethodGet, "/api/preferences/v1/users/ghost/eligibility/acme", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on eligibility read, got %d", rec.Code)
	}
	var eligibility struct {
		Eligible bool `json:"eligible"`
	}
	decode(t, rec, &eligibility)
	if !eligibility.Eligible {
		t.Fatal("expected unknown user to be eligible")
	}
}
