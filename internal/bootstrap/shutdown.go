package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PlotPlanner_Go/internal/profile"
	"github.com/osse101/PlotPlanner_Go/internal/scheduler"
	"github.com/osse101/PlotPlanner_Go/internal/server"
	"github.com/osse101/PlotPlanner_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server         *server.Server
	Scheduler      *scheduler.Scheduler
	ProfileService profile.Service
	Autosaver      *worker.AutosaveWorker
	WorkerPool     *worker.Pool
	Storage        *Storage
}

// GracefulShutdown stops intake first, then writes every pending profile
// before the pool and storage go away. Errors are logged and the sequence
// continues.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}

	slog.Info(LogMsgFlushingProfiles)
	if c.ProfileService != nil {
		if err := c.ProfileService.Flush(ctx); err != nil {
			slog.Error(LogMsgAutosaveFlushFailed, "error", err)
		}
	}
	if c.Autosaver != nil {
		if err := c.Autosaver.Shutdown(ctx); err != nil {
			slog.Error(LogMsgAutosaveStopFailed, "error", err)
		}
	}

	if c.WorkerPool != nil {
		c.WorkerPool.Stop()
	}
	if c.Storage != nil {
		c.Storage.Close()
	}
	slog.Info(LogMsgServerStopped)
}
