package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	tokenerrors "madison/contexts/ad-delivery/token-service/domain/errors"
	tokenhttp "madison/contexts/ad-delivery/token-service/transport/http"
)

func (s *Server) registerTokenRoutes() {
	s.mux.HandleFunc("POST /api/tokens/v1/tokens/{token_id}/transfer", s.handleTransferToken)
	s.mux.HandleFunc("GET /api/tokens/v1/tokens/{token_id}", s.handleGetToken)
	s.mux.HandleFunc("GET /api/tokens/v1/tokens/{token_id}/owner", s.handleOwnerOf)
	s.mux.HandleFunc("GET /api/tokens/v1/tokens/{token_id}/content-ref", s.handleContentRefOf)
	s.mux.HandleFunc("GET /api/tokens/v1/addresses/{address}/balance", s.handleBalanceOf)
	s.mux.HandleFunc("GET /api/tokens/v1/addresses/{address}/tokens", s.handleListTokens)
}

func (s *Server) handleTransferToken(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeTokenError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	tokenID, ok := parseTokenID(w, r)
	if !ok {
		return
	}

	var req tokenhttp.TransferTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeTokenError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	// Transfer always fails for existing tokens; a nil error here would mean
	// the ledger contract was broken.
	err := s.tokens.Handler.TransferTokenHandler(r.Context(), caller, tokenID, req)
	if err == nil {
		writeTokenError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	writeTokenDomainError(w, err)
}

func (s *Server) handleGetToken(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := parseTokenID(w, r)
	if !ok {
		return
	}

	resp, err := s.tokens.Handler.GetTokenHandler(r.Context(), tokenID)
	if err != nil {
		writeTokenDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleOwnerOf(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := parseTokenID(w, r)
	if !ok {
		return
	}

	resp, err := s.tokens.Handler.OwnerOfHandler(r.Context(), tokenID)
	if err != nil {
		writeTokenDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleContentRefOf(w http.ResponseWriter, r *http.Request) {
	tokenID, ok := parseTokenID(w, r)
	if !ok {
		return
	}

	resp, err := s.tokens.Handler.ContentRefOfHandler(r.Context(), tokenID)
	if err != nil {
		writeTokenDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBalanceOf(w http.ResponseWriter, r *http.Request) {
	resp, err := s.tokens.Handler.BalanceOfHandler(r.Context(), r.PathValue("address"))
	if err != nil {
		writeTokenDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTokens(w http.ResponseWriter, r *http.Request) {
	resp, err := s.tokens.Handler.ListTokensHandler(r.Context(), r.PathValue("address"))
	if err != nil {
		writeTokenDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseTokenID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	tokenID, err := strconv.ParseUint(r.PathValue("token_id"), 10, 64)
	if err != nil {
		writeTokenError(w, http.StatusBadRequest, "invalid_token_id", "token_id must be an unsigned integer")
		return 0, false
	}
	return tokenID, true
}

func writeTokenDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tokenerrors.ErrTokenNotFound):
		writeTokenError(w, http.StatusNotFound, "token_not_found", err.Error())
	case errors.Is(err, tokenerrors.ErrTokenNotTransferable):
		writeTokenError(w, http.StatusForbidden, "not_transferable", err.Error())
	case errors.Is(err, tokenerrors.ErrCounterExhausted):
		writeTokenError(w, http.StatusInternalServerError, "counter_exhausted", err.Error())
	default:
		writeTokenError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeTokenError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, tokenhttp.ErrorResponse{Code: code, Message: message})
}
