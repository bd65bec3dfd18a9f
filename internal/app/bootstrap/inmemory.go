package bootstrap

import (
	"log/slog"

	campaignservice "madison/contexts/ad-delivery/campaign-service"
	distributionservice "madison/contexts/ad-delivery/distribution-service"
	tokenservice "madison/contexts/ad-delivery/token-service"
	preferenceservice "madison/contexts/identity-access/preference-service"
	roleservice "madison/contexts/identity-access/role-service"
	"madison/internal/platform/httpserver"
)

// BuildInMemory wires every module against in-memory adapters, with the same
// glue between modules the postgres build uses. Tests and the demo binary
// run the full registry this way without external infrastructure.
func BuildInMemory(administrator string, logger *slog.Logger) httpserver.Modules {
	roles := roleservice.NewInMemoryModule(administrator, logger)
	preferences := preferenceservice.NewInMemoryModule(logger)
	campaigns := campaignservice.NewInMemoryModule(roles.Store, logger)
	tokens := tokenservice.NewInMemoryModule(
		campaignContentResolver{campaigns: campaigns.Store},
		logger,
	)
	distribution := distributionservice.NewInMemoryModule(
		roles.Store,
		campaignDirectory{campaigns: campaigns.Store},
		preferences.Store,
		tokenIssuer{ledger: tokens.Store},
		logger,
	)

	return httpserver.Modules{
		Roles:        roles,
		Preferences:  preferences,
		Campaigns:    campaigns,
		Tokens:       tokens,
		Distribution: distribution,
	}
}
