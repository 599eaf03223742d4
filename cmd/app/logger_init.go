package main

import (
	"github.com/osse101/PlotPlanner_Go/internal/config"
	"github.com/osse101/PlotPlanner_Go/internal/logger"
)

// initLogger configures the process-wide slog logger from the app config
func initLogger(cfg *config.Config) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == logger.EnvironmentDev,
	))
}
