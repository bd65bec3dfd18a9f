package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	campaignerrors "madison/contexts/ad-delivery/campaign-service/domain/errors"
	campaignports "madison/contexts/ad-delivery/campaign-service/ports"
	campaignhttp "madison/contexts/ad-delivery/campaign-service/transport/http"
)

func (s *Server) registerCampaignRoutes() {
	s.mux.HandleFunc("POST /api/campaigns/v1/campaigns", s.handleCreateCampaign)
	s.mux.HandleFunc("POST /api/campaigns/v1/campaigns/{campaign_id}/status", s.handleSetCampaignStatus)
	s.mux.HandleFunc("GET /api/campaigns/v1/campaigns/{campaign_id}", s.handleGetCampaign)
	s.mux.HandleFunc("GET /api/campaigns/v1/campaigns", s.handleListCampaigns)
}

func (s *Server) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeCampaignError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req campaignhttp.CreateCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.campaigns.Handler.CreateCampaignHandler(
		r.Context(),
		caller,
		r.Header.Get("Idempotency-Key"),
		req,
	)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleSetCampaignStatus(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeCampaignError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	campaignID, ok := parseCampaignID(w, r)
	if !ok {
		return
	}

	var req campaignhttp.SetCampaignStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.campaigns.Handler.SetCampaignStatusHandler(r.Context(), caller, campaignID, req)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := parseCampaignID(w, r)
	if !ok {
		return
	}

	resp, err := s.campaigns.Handler.GetCampaignHandler(r.Context(), campaignID)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := campaignports.CampaignFilter{OwnerID: query.Get("owner")}
	if raw := query.Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			writeCampaignError(w, http.StatusBadRequest, "invalid_active", "active must be a boolean")
			return
		}
		filter.Active = &active
	}

	resp, err := s.campaigns.Handler.ListCampaignsHandler(r.Context(), filter)
	if err != nil {
		writeCampaignDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseCampaignID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	campaignID, err := strconv.ParseUint(r.PathValue("campaign_id"), 10, 64)
	if err != nil {
		writeCampaignError(w, http.StatusBadRequest, "invalid_campaign_id", "campaign_id must be an unsigned integer")
		return 0, false
	}
	return campaignID, true
}

func writeCampaignDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaignerrors.ErrNotAdvertiser):
		writeCampaignError(w, http.StatusForbidden, "not_advertiser", err.Error())
	case errors.Is(err, campaignerrors.ErrNotCampaignOwner):
		writeCampaignError(w, http.StatusForbidden, "not_campaign_owner", err.Error())
	case errors.Is(err, campaignerrors.ErrCampaignNotFound):
		writeCampaignError(w, http.StatusNotFound, "campaign_not_found", err.Error())
	case errors.Is(err, campaignerrors.ErrEmptyContentRef):
		writeCampaignError(w, http.StatusBadRequest, "empty_content_ref", err.Error())
	case errors.Is(err, campaignerrors.ErrIdempotencyKeyConflict):
		writeCampaignError(w, http.StatusConflict, "idempotency_conflict", err.Error())
	case errors.Is(err, campaignerrors.ErrCounterExhausted):
		writeCampaignError(w, http.StatusInternalServerError, "counter_exhausted", err.Error())
	default:
		writeCampaignError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCampaignError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, campaignhttp.ErrorResponse{Code: code, Message: message})
}
