package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PlotPlanner_Go/internal/config"
	"github.com/osse101/PlotPlanner_Go/internal/database"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var lastErr error
	for i := 0; i < dbRetryAttempts; i++ {
		if lastErr = pingDatabase(cfg); lastErr == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		fmt.Printf("Database not ready (%d/%d): %v\n", i+1, dbRetryAttempts, lastErr)
		time.Sleep(dbRetryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", dbRetryAttempts, lastErr)
}

func pingDatabase(cfg *config.Config) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbConnectTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 1, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	pool.Close()
	return nil
}
