package distributionservice

import (
	"log/slog"

	httpadapter "madison/contexts/ad-delivery/distribution-service/adapters/http"
	"madison/contexts/ad-delivery/distribution-service/adapters/memory"
	"madison/contexts/ad-delivery/distribution-service/application/commands"
	"madison/contexts/ad-delivery/distribution-service/application/queries"
	"madison/contexts/ad-delivery/distribution-service/ports"
)

// Module is the distribution-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Roles       ports.RoleChecker
	Campaigns   ports.CampaignDirectory
	Eligibility ports.EligibilityChecker
	Issuer      ports.TokenIssuer
	Batches     ports.BatchRepository
	Idempotency ports.IdempotencyStore
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires distribution use-cases and the transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	sendToMany := commands.SendToManyUseCase{
		Roles:       deps.Roles,
		Campaigns:   deps.Campaigns,
		Eligibility: deps.Eligibility,
		Issuer:      deps.Issuer,
		Batches:     deps.Batches,
		Idempotency: deps.Idempotency,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	getBatch := queries.GetBatchUseCase{Batches: deps.Batches, Logger: deps.Logger}
	listBatches := queries.ListBatchesUseCase{Batches: deps.Batches, Logger: deps.Logger}

	return Module{
		Handler: httpadapter.Handler{
			SendToMany:  sendToMany,
			GetBatch:    getBatch,
			ListBatches: listBatches,
			Logger:      deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory
// batch/idempotency/outbox storage. Role, campaign, eligibility, and
// issuance checks delegate to the given ports so the module composes with
// the sibling services' stores.
func NewInMemoryModule(
	roles ports.RoleChecker,
	campaigns ports.CampaignDirectory,
	eligibility ports.EligibilityChecker,
	issuer ports.TokenIssuer,
	logger *slog.Logger,
) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Roles:       roles,
		Campaigns:   campaigns,
		Eligibility: eligibility,
		Issuer:      issuer,
		Batches:     store,
		Idempotency: store,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
