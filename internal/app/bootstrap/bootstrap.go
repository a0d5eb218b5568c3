package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	walletsession "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session"
	walletpostgres "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/adapters/postgres"
	walletworkers "github.com/En0rm0s/Blockchain/contexts/identity-access/wallet-session/application/workers"
	nftledger "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger"
	ledgerpostgres "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/adapters/postgres"
	ledgerworkers "github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/application/workers"
	"github.com/En0rm0s/Blockchain/contexts/marketplace-core/nft-ledger/domain/entities"
	"github.com/En0rm0s/Blockchain/internal/platform/config"
	"github.com/En0rm0s/Blockchain/internal/platform/db"
	"github.com/En0rm0s/Blockchain/internal/platform/httpserver"
	"github.com/En0rm0s/Blockchain/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	outboxRelay  ledgerworkers.OutboxRelay
	expirer      walletworkers.SessionExpirer
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

	ctx := context.Background()

	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	if err := ledgerRepo.Migrate(ctx); err != nil {
		_ = pg.Close()
		return nil, err
	}
	seed, err := entities.NewLedgerState(cfg.AdminAddress, cfg.MintPrice, cfg.RoyaltyPercent, cfg.PlatformFeePercent)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}
	// First boot writes the seed row; later boots keep the persisted state.
	if err := ledgerRepo.EnsureState(ctx, seed); err != nil {
		_ = pg.Close()
		return nil, err
	}
	ledgerModule := nftledger.NewModule(nftledger.Dependencies{
		Store:       ledgerRepo,
		Clock:       ledgerpostgres.SystemClock{},
		IDGenerator: ledgerpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	walletRepo := walletpostgres.NewRepository(pg.DB, logger)
	if err := walletRepo.Migrate(ctx); err != nil {
		_ = pg.Close()
		return nil, err
	}
	walletModule := walletsession.NewModule(walletsession.Dependencies{
		Accounts:   walletRepo,
		Sessions:   walletRepo,
		Clock:      walletpostgres.SystemClock{},
		Tokens:     walletpostgres.UUIDTokenGenerator{},
		SessionTTL: cfg.SessionTTL,
		Logger:     logger,
	})

	server := httpserver.New(ledgerModule, walletModule, logger, normalizeAddr(cfg.HTTPPort))
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
		return nil, err
	}

	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	walletRepo := walletpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		outboxRelay: ledgerworkers.OutboxRelay{
			Outbox:    ledgerRepo,
			Publisher: kafka,
			Clock:     ledgerpostgres.SystemClock{},
			Topic:     "marketplace.ledger",
			BatchSize: 100,
			Logger:    logger,
		},
		expirer: walletworkers.SessionExpirer{
			Sessions: walletRepo,
			Clock:    walletpostgres.SystemClock{},
			Logger:   logger,
		},
		pollInterval: 2 * time.Second,
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
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.expirer.RunOnce(ctx); err != nil {
			return err
		}
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
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
