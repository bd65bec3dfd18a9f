package campaignservice

import (
	"log/slog"

	httpadapter "madison/contexts/ad-delivery/campaign-service/adapters/http"
	"madison/contexts/ad-delivery/campaign-service/adapters/memory"
	"madison/contexts/ad-delivery/campaign-service/application/commands"
	"madison/contexts/ad-delivery/campaign-service/application/queries"
	"madison/contexts/ad-delivery/campaign-service/ports"
)

// Module is the campaign-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Campaigns   ports.CampaignRepository
	Roles       ports.RoleChecker
	Idempotency ports.IdempotencyStore
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires campaign use-cases and the transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	createCampaign := commands.CreateCampaignUseCase{
		Campaigns:   deps.Campaigns,
		Roles:       deps.Roles,
		Idempotency: deps.Idempotency,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	setCampaignStatus := commands.SetCampaignStatusUseCase{
		Campaigns:   deps.Campaigns,
		Roles:       deps.Roles,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	getCampaign := queries.GetCampaignUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}
	listCampaigns := queries.ListCampaignsUseCase{
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateCampaign:    createCampaign,
			SetCampaignStatus: setCampaignStatus,
			GetCampaign:       getCampaign,
			ListCampaigns:     listCampaigns,
			Logger:            deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
// Role checks delegate to the given checker so the module composes with the
// role-service store.
func NewInMemoryModule(roles ports.RoleChecker, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Campaigns:   store,
		Roles:       roles,
		Idempotency: store,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
