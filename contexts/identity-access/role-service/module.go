package roleservice

import (
	"log/slog"

	httpadapter "madison/contexts/identity-access/role-service/adapters/http"
	"madison/contexts/identity-access/role-service/adapters/memory"
	"madison/contexts/identity-access/role-service/application/commands"
	"madison/contexts/identity-access/role-service/application/queries"
	"madison/contexts/identity-access/role-service/ports"
)

// Module is the role-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Repository  ports.Repository
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires role use-cases and the transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	grantAdvertiser := commands.GrantAdvertiserUseCase{
		Repository:  deps.Repository,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	revokeAdvertiser := commands.RevokeAdvertiserUseCase{
		Repository:  deps.Repository,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	checkRoles := queries.CheckRolesUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	listAdvertisers := queries.ListAdvertisersUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			GrantAdvertiser:  grantAdvertiser,
			RevokeAdvertiser: revokeAdvertiser,
			CheckRoles:       checkRoles,
			ListAdvertisers:  listAdvertisers,
			Logger:           deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
// The administrator is fixed to the given address at construction.
func NewInMemoryModule(administrator string, logger *slog.Logger) Module {
	store := memory.NewStore(administrator)
	module := NewModule(Dependencies{
		Repository:  store,
		Outbox:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
