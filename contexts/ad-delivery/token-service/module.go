package tokenservice

import (
	"log/slog"

	httpadapter "madison/contexts/ad-delivery/token-service/adapters/http"
	"madison/contexts/ad-delivery/token-service/adapters/memory"
	"madison/contexts/ad-delivery/token-service/application/commands"
	"madison/contexts/ad-delivery/token-service/application/queries"
	"madison/contexts/ad-delivery/token-service/ports"
)

// Module is the token-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Ledger    ports.LedgerRepository
	Campaigns ports.CampaignReader
	Logger    *slog.Logger
}

// NewModule wires token use-cases and the transport handler using explicit ports.
func NewModule(deps Dependencies) Module {
	transferToken := commands.TransferTokenUseCase{
		Ledger: deps.Ledger,
		Logger: deps.Logger,
	}
	getToken := queries.GetTokenUseCase{Ledger: deps.Ledger, Logger: deps.Logger}
	ownerOf := queries.OwnerOfUseCase{Ledger: deps.Ledger, Logger: deps.Logger}
	balanceOf := queries.BalanceOfUseCase{Ledger: deps.Ledger, Logger: deps.Logger}
	contentRefOf := queries.ContentRefOfUseCase{
		Ledger:    deps.Ledger,
		Campaigns: deps.Campaigns,
		Logger:    deps.Logger,
	}
	listTokens := queries.ListTokensUseCase{Ledger: deps.Ledger, Logger: deps.Logger}

	return Module{
		Handler: httpadapter.Handler{
			TransferToken: transferToken,
			GetToken:      getToken,
			OwnerOf:       ownerOf,
			BalanceOf:     balanceOf,
			ContentRefOf:  contentRefOf,
			ListTokens:    listTokens,
			Logger:        deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with in-memory adapters.
// Campaign lookups delegate to the given reader so the module composes with
// the campaign-service store.
func NewInMemoryModule(campaigns ports.CampaignReader, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Ledger:    store,
		Campaigns: campaigns,
		Logger:    logger,
	})
	module.Store = store
	return module
}
