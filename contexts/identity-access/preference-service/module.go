package preferenceservice

import (
	"log/slog"

	httpadapter "madison/contexts/identity-access/preference-service/adapters/http"
	"madison/contexts/identity-access/preference-service/adapters/memory"
	"madison/contexts/identity-access/preference-service/application/commands"
	"madison/contexts/identity-access/preference-service/application/queries"
	"madison/contexts/identity-access/preference-service/ports"
)

// Module is the preference-service composition root exposed to runtime wiring.
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

// NewModule wires preference use-cases and the transport handler.
func NewModule(deps Dependencies) Module {
	setOptOut := commands.SetGlobalOptOutUseCase{
		Repository:  deps.Repository,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	setBlock := commands.SetAdvertiserBlockUseCase{
		Repository:  deps.Repository,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	checkEligibility := queries.CheckEligibilityUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}
	getPreferences := queries.GetPreferencesUseCase{
		Repository: deps.Repository,
		Logger:     deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			SetOptOut:        setOptOut,
			SetBlock:         setBlock,
			CheckEligibility: checkEligibility,
			GetPreferences:   getPreferences,
			Logger:           deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
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
