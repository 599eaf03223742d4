package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PlotPlanner_Go/internal/config"
	"github.com/osse101/PlotPlanner_Go/internal/database"
	"github.com/osse101/PlotPlanner_Go/internal/database/memory"
	"github.com/osse101/PlotPlanner_Go/internal/database/postgres"
	"github.com/osse101/PlotPlanner_Go/internal/handler"
	"github.com/osse101/PlotPlanner_Go/internal/repository"
	"github.com/osse101/PlotPlanner_Go/migrations"
)

// Storage holds the profile repository and, for PostgreSQL, its pool.
type Storage struct {
	Profiles repository.Profile
	Pool     *pgxpool.Pool
}

// InitializeStorage opens the configured backend. PostgreSQL storage is
// migrated before use.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if !cfg.UsesPostgres() {
		slog.Warn(LogMsgStorageMemory)
		return &Storage{Profiles: memory.NewProfileRepository()}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}
	if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}

	slog.Info(LogMsgStoragePostgres, "host", cfg.DBHost, "db", cfg.DBName)
	return &Storage{Profiles: postgres.NewProfileRepository(pool), Pool: pool}, nil
}

// Pinger returns the readiness probe target, nil for memory storage.
func (s *Storage) Pinger() handler.Pinger {
	if s.Pool == nil {
		return nil
	}
	return s.Pool
}

// Close releases the pool, if any.
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
