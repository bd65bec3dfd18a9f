package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	campaignservice "madison/contexts/ad-delivery/campaign-service"
	campaignpostgres "madison/contexts/ad-delivery/campaign-service/adapters/postgres"
	campaignworkers "madison/contexts/ad-delivery/campaign-service/application/workers"
	distributionservice "madison/contexts/ad-delivery/distribution-service"
	distpostgres "madison/contexts/ad-delivery/distribution-service/adapters/postgres"
	distworkers "madison/contexts/ad-delivery/distribution-service/application/workers"
	tokenservice "madison/contexts/ad-delivery/token-service"
	tokenpostgres "madison/contexts/ad-delivery/token-service/adapters/postgres"
	preferenceservice "madison/contexts/identity-access/preference-service"
	prefpostgres "madison/contexts/identity-access/preference-service/adapters/postgres"
	prefworkers "madison/contexts/identity-access/preference-service/application/workers"
	roleservice "madison/contexts/identity-access/role-service"
	rolepostgres "madison/contexts/identity-access/role-service/adapters/postgres"
	roleworkers "madison/contexts/identity-access/role-service/application/workers"
	"madison/internal/platform/config"
	"madison/internal/platform/db"
	"madison/internal/platform/httpserver"
	"madison/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type relay interface {
	RunOnce(ctx context.Context) error
}

type WorkerApp struct {
	postgres     *db.Postgres
	relays       []relay
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	roleRepo := rolepostgres.NewRepository(pg.DB, logger)
	if err := roleRepo.EnsureAdministrator(context.Background(), cfg.AdminAddress, time.Now().UTC()); err != nil {
		_ = pg.Close()
		return nil, err
	}

	prefRepo := prefpostgres.NewRepository(pg.DB, logger)
	campaignRepo := campaignpostgres.NewRepository(pg.DB, logger)
	tokenRepo := tokenpostgres.NewRepository(pg.DB, logger)
	distRepo := distpostgres.NewRepository(pg.DB, logger)

	roles := roleservice.NewModule(roleservice.Dependencies{
		Repository:  roleRepo,
		Outbox:      roleRepo,
		Clock:       rolepostgres.SystemClock{},
		IDGenerator: rolepostgres.UUIDGenerator{},
		Logger:      logger,
	})
	preferences := preferenceservice.NewModule(preferenceservice.Dependencies{
		Repository:  prefRepo,
		Outbox:      prefRepo,
		Clock:       prefpostgres.SystemClock{},
		IDGenerator: prefpostgres.UUIDGenerator{},
		Logger:      logger,
	})
	campaigns := campaignservice.NewModule(campaignservice.Dependencies{
		Campaigns:   campaignRepo,
		Roles:       roleRepo,
		Idempotency: campaignRepo,
		Outbox:      campaignRepo,
		Clock:       campaignpostgres.SystemClock{},
		IDGenerator: campaignpostgres.UUIDGenerator{},
		Logger:      logger,
	})
	tokens := tokenservice.NewModule(tokenservice.Dependencies{
		Ledger:    tokenRepo,
		Campaigns: campaignContentResolver{campaigns: campaignRepo},
		Logger:    logger,
	})
	distribution := distributionservice.NewModule(distributionservice.Dependencies{
		Roles:       roleRepo,
		Campaigns:   campaignDirectory{campaigns: campaignRepo},
		Eligibility: prefRepo,
		Issuer:      tokenIssuer{ledger: tokenRepo},
		Batches:     distRepo,
		Idempotency: distRepo,
		Outbox:      distRepo,
		Clock:       distpostgres.SystemClock{},
		IDGenerator: distpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(httpserver.Modules{
		Roles:        roles,
		Preferences:  preferences,
		Campaigns:    campaigns,
		Tokens:       tokens,
		Distribution: distribution,
	}, logger, normalizeAddr(cfg.HTTPPort))

	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}

	var relays []relay
	if cfg.EnableRoleOutboxRelay {
		relays = append(relays, roleworkers.OutboxRelay{
			Outbox:    rolepostgres.NewRepository(pg.DB, logger),
			Publisher: kafka,
			Clock:     rolepostgres.SystemClock{},
			BatchSize: cfg.OutboxBatchSize,
			Logger:    logger,
		})
	}
	if cfg.EnablePreferenceOutboxRelay {
		relays = append(relays, prefworkers.OutboxRelay{
			Outbox:    prefpostgres.NewRepository(pg.DB, logger),
			Publisher: kafka,
			Clock:     prefpostgres.SystemClock{},
			BatchSize: cfg.OutboxBatchSize,
			Logger:    logger,
		})
	}
	if cfg.EnableCampaignOutboxRelay {
		relays = append(relays, campaignworkers.OutboxRelay{
			Outbox:    campaignpostgres.NewRepository(pg.DB, logger),
			Publisher: kafka,
			Clock:     campaignpostgres.SystemClock{},
			BatchSize: cfg.OutboxBatchSize,
			Logger:    logger,
		})
	}
	if cfg.EnableDistributionOutboxRelay {
		relays = append(relays, distworkers.OutboxRelay{
			Outbox:    distpostgres.NewRepository(pg.DB, logger),
			Publisher: kafka,
			Clock:     distpostgres.SystemClock{},
			BatchSize: cfg.OutboxBatchSize,
			Logger:    logger,
		})
	}

	return &WorkerApp{
		postgres:     pg,
		relays:       relays,
		pollInterval: cfg.OutboxPollInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"relay_count", len(w.relays),
		"poll_interval", w.pollInterval.String(),
	)

	for {
		for _, r := range w.relays {
			if err := r.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
