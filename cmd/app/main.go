package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/InvestSim_Go/internal/bootstrap"
	"github.com/osse101/InvestSim_Go/internal/cache"
	"github.com/osse101/InvestSim_Go/internal/catalog"
	"github.com/osse101/InvestSim_Go/internal/config"
	"github.com/osse101/InvestSim_Go/internal/database"
	"github.com/osse101/InvestSim_Go/internal/event"
	"github.com/osse101/InvestSim_Go/internal/eventlog"
	"github.com/osse101/InvestSim_Go/internal/quote"
	"github.com/osse101/InvestSim_Go/internal/scheduler"
	"github.com/osse101/InvestSim_Go/internal/server"
	"github.com/osse101/InvestSim_Go/internal/sse"
	"github.com/osse101/InvestSim_Go/internal/wallet"
	"github.com/osse101/InvestSim_Go/internal/worker"
)

const shutdownTimeout = 15 * time.Second

// @title InvestSim API
// @version 1.0
// @description Quote catalog, affordability and simulated purchases for crypto and stocks.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	def, err := bootstrap.LoadCatalogDefinition(cfg)
	if err != nil {
		return err
	}

	dbPool, err := database.NewPool(ctx, cfg.GetDBConnString(), bootstrap.PoolOptions(cfg))
	if err != nil {
		return err
	}
	if err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return err
	}
	repos := bootstrap.InitializeRepositories(dbPool)

	store, err := cache.New(ctx, bootstrap.CacheConfig(cfg))
	if err != nil {
		dbPool.Close()
		return err
	}

	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()

	eventLogService := eventlog.NewService(repos.EventLog)
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        bus,
		Hub:             hub,
		EventLogService: eventLogService,
	}); err != nil {
		hub.Stop()
		store.Close()
		dbPool.Close()
		return err
	}

	catalogService := catalog.NewService(store, quote.NewFromConfig(bootstrap.QuoteConfig(cfg)), def, bus)
	walletService := wallet.NewService(repos.Wallet, catalogService, bus, cfg.InitialBalance)

	pool := worker.NewPool(cfg.WorkerCount, worker.DefaultQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule("catalog_refresh", cfg.CatalogRefreshInterval,
		worker.NewCatalogRefreshJob(catalogService, catalog.SourceScheduler))
	sched.Schedule("event_log_cleanup", cfg.EventLogCleanupInterval,
		eventlog.NewCleanupJob(eventLogService, cfg.EventLogRetentionDays))
	sched.Start()

	// Warm the cache so the first request does not pay for the fetch
	pool.Enqueue(worker.NewCatalogRefreshJob(catalogService, catalog.SourceStartup))

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, server.Dependencies{
		DB:       dbPool,
		Catalog:  catalogService,
		Wallet:   walletService,
		Hub:      hub,
		EventLog: eventLogService,
	})

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:        srv,
		Hub:           hub,
		Scheduler:     sched,
		WorkerPool:    pool,
		WalletService: walletService,
		Cache:         store,
		DB:            dbPool,
	})
	return err
}
