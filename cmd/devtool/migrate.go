package main

import (
	"context"
	"fmt"

	"github.com/osse101/PlotPlanner_Go/internal/config"
	"github.com/osse101/PlotPlanner_Go/internal/database"
	"github.com/osse101/PlotPlanner_Go/migrations"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, status)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, status")
	}
	subcmd := args[0]
	if subcmd != "up" && subcmd != "status" {
		return fmt.Errorf("unknown migrate subcommand %q: want up or status", subcmd)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if subcmd == "up" {
		PrintHeader("Applying migrations...")
		if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
			return err
		}
		PrintSuccess("Migrations applied")
		return nil
	}

	PrintHeader("Migration status")
	statuses, err := database.MigrationStatus(ctx, pool, migrations.FS)
	if err != nil {
		return err
	}
	for _, st := range statuses {
		applied := "pending"
		if !st.AppliedAt.IsZero() {
			applied = st.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Printf("  %05d  %-8s  %s\n", st.Source.Version, st.State, applied)
	}
	return nil
}
