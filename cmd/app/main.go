package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/PlotPlanner_Go/internal/bootstrap"
	"github.com/osse101/PlotPlanner_Go/internal/config"
	"github.com/osse101/PlotPlanner_Go/internal/planner"
	"github.com/osse101/PlotPlanner_Go/internal/profile"
	"github.com/osse101/PlotPlanner_Go/internal/scheduler"
	"github.com/osse101/PlotPlanner_Go/internal/server"
	"github.com/osse101/PlotPlanner_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

// @title Plot Planner API
// @version 1.0
// @description Plans which seeds go on which plots and where lamps help most.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	initLogger(cfg)
	slog.Info(bootstrap.LogMsgStarting,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage", cfg.StorageBackend)
	slog.Debug(bootstrap.LogMsgConfigurationLoaded,
		"data_dir", cfg.DataDir,
		"port", cfg.Port,
		"autosave_delay", cfg.AutosaveDelay,
		"catalog_reload_interval", cfg.CatalogReloadInterval)

	ctx := context.Background()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)

	catalogs := bootstrap.LoadCatalog(ctx, cfg.DataDir, cfg.CatalogReloadInterval, sched)

	autosaver := worker.NewAutosaveWorker(storage.Profiles, pool, cfg.AutosaveDelay)
	profileService := profile.NewService(storage.Profiles, catalogs, autosaver)
	plannerService := planner.NewService(catalogs, profileService, planner.Options{
		CacheSize: cfg.StrategyCacheSize,
		CacheTTL:  cfg.StrategyCacheTTL,
	})

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
	}, storage.Pinger(), catalogs, plannerService, profileService)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:         srv,
		Scheduler:      sched,
		ProfileService: profileService,
		Autosaver:      autosaver,
		WorkerPool:     pool,
		Storage:        storage,
	})
}
