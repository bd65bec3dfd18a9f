package httpserver

import (
	"errors"
	"net/http"

	roleerrors "madison/contexts/identity-access/role-service/domain/errors"
	rolehttp "madison/contexts/identity-access/role-service/transport/http"
)

func (s *Server) registerRoleRoutes() {
	s.mux.HandleFunc("POST /api/roles/v1/advertisers/{address}/grant", s.handleGrantAdvertiser)
	s.mux.HandleFunc("POST /api/roles/v1/advertisers/{address}/revoke", s.handleRevokeAdvertiser)
	s.mux.HandleFunc("GET /api/roles/v1/addresses/{address}", s.handleCheckRoles)
	s.mux.HandleFunc("GET /api/roles/v1/advertisers", s.handleListAdvertisers)
}

func (s *Server) handleGrantAdvertiser(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeRoleError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.roles.Handler.GrantAdvertiserHandler(r.Context(), r.PathValue("address"), caller)
	if err != nil {
		writeRoleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRevokeAdvertiser(w http.ResponseWriter, r *http.Request) {
	caller := callerID(r)
	if caller == "" {
		writeRoleError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	resp, err := s.roles.Handler.RevokeAdvertiserHandler(r.Context(), r.PathValue("address"), caller)
	if err != nil {
		writeRoleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCheckRoles(w http.ResponseWriter, r *http.Request) {
	resp, err := s.roles.Handler.CheckRolesHandler(r.Context(), r.PathValue("address"))
	if err != nil {
		writeRoleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAdvertisers(w http.ResponseWriter, r *http.Request) {
	resp, err := s.roles.Handler.ListAdvertisersHandler(r.Context())
	if err != nil {
		writeRoleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeRoleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roleerrors.ErrNotAdministrator):
		writeRoleError(w, http.StatusForbidden, "not_administrator", err.Error())
	case errors.Is(err, roleerrors.ErrNullAddress):
		writeRoleError(w, http.StatusBadRequest, "null_address", err.Error())
	default:
		writeRoleError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeRoleError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, rolehttp.ErrorResponse{Code: code, Message: message})
}
