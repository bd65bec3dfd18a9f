package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	campaignservice "madison/contexts/ad-delivery/campaign-service"
	distributionservice "madison/contexts/ad-delivery/distribution-service"
	tokenservice "madison/contexts/ad-delivery/token-service"
	preferenceservice "madison/contexts/identity-access/preference-service"
	roleservice "madison/contexts/identity-access/role-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "madison/internal/platform/httpserver/docs"
)

type Server struct {
	mux          *http.ServeMux
	logger       *slog.Logger
	addr         string
	roles        roleservice.Module
	preferences  preferenceservice.Module
	campaigns    campaignservice.Module
	tokens       tokenservice.Module
	distribution distributionservice.Module
}

type Modules struct {
	Roles        roleservice.Module
	Preferences  preferenceservice.Module
	Campaigns    campaignservice.Module
	Tokens       tokenservice.Module
	Distribution distributionservice.Module
}

func New(modules Modules, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:          http.NewServeMux(),
		logger:       logger,
		addr:         addr,
		roles:        modules.Roles,
		preferences:  modules.Preferences,
		campaigns:    modules.Campaigns,
		tokens:       modules.Tokens,
		distribution: modules.Distribution,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.registerRoleRoutes()
	s.registerPreferenceRoutes()
	s.registerCampaignRoutes()
	s.registerTokenRoutes()
	s.registerDistributionRoutes()
}

// callerID resolves the authenticated identity. The gateway in front of this
// service authenticates and injects the header; an absent header means an
// unauthenticated request.
func callerID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get("X-User-Id"))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
