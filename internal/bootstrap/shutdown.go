package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/InvestSim_Go/internal/cache"
	"github.com/osse101/InvestSim_Go/internal/scheduler"
	"github.com/osse101/InvestSim_Go/internal/server"
	"github.com/osse101/InvestSim_Go/internal/sse"
	"github.com/osse101/InvestSim_Go/internal/wallet"
	"github.com/osse101/InvestSim_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Any field may be nil.
type ShutdownComponents struct {
	Server        *server.Server
	Hub           *sse.Hub
	Scheduler     *scheduler.Scheduler
	WorkerPool    *worker.Pool
	WalletService wallet.Service
	Cache         cache.Store
	DB            interface{ Close() }
}

// GracefulShutdown stops the application in order:
// 1. SSE hub, so streaming handlers return and do not hold the server open
// 2. HTTP server (stop accepting new requests)
// 3. Scheduler and worker pool (drain queued jobs)
// 4. Wallet service (wait for in-flight event publishing)
// 5. Cache and database connections
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Hub != nil {
		components.Hub.Stop()
	}

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownWorkers)
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		if err := components.WorkerPool.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerPoolFailed, "error", err)
		}
	}

	if components.WalletService != nil {
		shutdownService(ctx, ServiceNameWallet, components.WalletService)
	}

	if components.Cache != nil {
		if err := components.Cache.Close(); err != nil {
			slog.Error(LogMsgCacheCloseFailed, "error", err)
		}
	}
	if components.DB != nil {
		components.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
