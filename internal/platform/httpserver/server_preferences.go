package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	preferrors "madison/contexts/identity-access/preference-service/domain/errors"
	prefhttp "madison/contexts/identity-access/preference-service/transport/http"
)

func (s *Server) registerPreferenceRoutes() {
	s.mux.HandleFunc("PUT /api/preferences/v1/opt-out", s.handleSetOptOut)
	s.mux.HandleFunc("PUT /api/preferences/v1/blocks/{advertiser}", s.handleSetBlock)
	s.mux.HandleFunc("GET /api/preferences/v1/users/{address}", s.handleGetPreferences)
	s.mux.HandleFunc("GET /api/preferences/v1/users/{address}/eligibility/{advertiser}", s.handleCheckEligibility)
}

// handleSetOptOut writes the caller's own opt-out flag; preferences are
// always self-service, so the subject is taken from the identity header.
func (s *Server) handleSetOptOut(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writePreferenceError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req prefhttp.SetOptOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePreferenceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.preferences.Handler.SetOptOutHandler(r.Context(), caller, req)
	if err != nil {
		writePreferenceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetBlock(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writePreferenceError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req prefhttp.SetBlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePreferenceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.preferences.Handler.SetBlockHandler(r.Context(), caller, r.PathValue("advertiser"), req)
	if err != nil {
		writePreferenceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	resp, err := s.preferences.Handler.GetPreferencesHandler(r.Context(), r.PathValue("address"))
	if err != nil {
		writePreferenceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCheckEligibility(w http.ResponseWriter, r *http.Request) {
	resp, err := s.preferences.Handler.CheckEligibilityHandler(
		r.Context(),
		r.PathValue("address"),
		r.PathValue("advertiser"),
	)
	if err != nil {
		writePreferenceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writePreferenceDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, preferrors.ErrNullAddress):
		writePreferenceError(w, http.StatusBadRequest, "null_address", err.Error())
	case errors.Is(err, preferrors.ErrNullAdvertiser):
		writePreferenceError(w, http.StatusBadRequest, "null_advertiser", err.Error())
	default:
		writePreferenceError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writePreferenceError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, prefhttp.ErrorResponse{Code: code, Message: message})
}
