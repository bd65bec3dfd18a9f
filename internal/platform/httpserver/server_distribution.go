package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	disterrors "madison/contexts/ad-delivery/distribution-service/domain/errors"
	disthttp "madison/contexts/ad-delivery/distribution-service/transport/http"
	tokenerrors "madison/contexts/ad-delivery/token-service/domain/errors"
)

func (s *Server) registerDistributionRoutes() {
	s.mux.HandleFunc("POST /api/distribution/v1/send", s.handleSendToMany)
	s.mux.HandleFunc("GET /api/distribution/v1/batches/{batch_id}", s.handleGetBatch)
	s.mux.HandleFunc("GET /api/distribution/v1/campaigns/{campaign_id}/batches", s.handleListBatches)
}

func (s *Server) handleSendToMany(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeDistributionError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req disthttp.SendToManyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDistributionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.distribution.Handler.SendToManyHandler(
		r.Context(),
		caller,
		r.Header.Get("Idempotency-Key"),
		req,
	)
	if err != nil {
		writeDistributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetBatch(w http.ResponseWriter, r *http.Request) {
	resp, err := s.distribution.Handler.GetBatchHandler(r.Context(), r.PathValue("batch_id"))
	if err != nil {
		writeDistributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListBatches(w http.ResponseWriter, r *http.Request) {
	campaignID, err := strconv.ParseUint(r.PathValue("campaign_id"), 10, 64)
	if err != nil {
		writeDistributionError(w, http.StatusBadRequest, "invalid_campaign_id", "campaign_id must be an unsigned integer")
		return
	}

	resp, err := s.distribution.Handler.ListBatchesHandler(r.Context(), campaignID)
	if err != nil {
		writeDistributionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeDistributionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, disterrors.ErrSenderNotAdvertiser):
		writeDistributionError(w, http.StatusForbidden, "not_advertiser", err.Error())
	case errors.Is(err, disterrors.ErrNotCampaignOwner):
		writeDistributionError(w, http.StatusForbidden, "not_campaign_owner", err.Error())
	case errors.Is(err, disterrors.ErrCampaignNotFound):
		writeDistributionError(w, http.StatusNotFound, "campaign_not_found", err.Error())
	case errors.Is(err, disterrors.ErrBatchNotFound):
		writeDistributionError(w, http.StatusNotFound, "batch_not_found", err.Error())
	case errors.Is(err, disterrors.ErrCampaignInactive):
		writeDistributionError(w, http.StatusConflict, "campaign_inactive", err.Error())
	case errors.Is(err, disterrors.ErrNoRecipients):
		writeDistributionError(w, http.StatusBadRequest, "no_recipients", err.Error())
	case errors.Is(err, disterrors.ErrIdempotencyKeyConflict):
		writeDistributionError(w, http.StatusConflict, "idempotency_conflict", err.Error())
	case errors.Is(err, tokenerrors.ErrCounterExhausted):
		writeDistributionError(w, http.StatusInternalServerError, "counter_exhausted", err.Error())
	default:
		writeDistributionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeDistributionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, disthttp.ErrorResponse{Code: code, Message: message})
}
