package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/repository"
)

// ProfileRepository implements repository.Profile for PostgreSQL
type ProfileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(pool *pgxpool.Pool) repository.Profile {
	return &ProfileRepository{pool: pool}
}

// ListProfiles returns the display names of every stored profile, ordered by key
func (r *ProfileRepository) ListProfiles(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, queryListProfiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListProfiles, err)
	}
	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListProfiles, err)
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, domain.ProfileNameFromKey(key))
	}
	return names, nil
}

// GetProfile loads one profile; domain.ErrProfileNotFound when absent
func (r *ProfileRepository) GetProfile(ctx context.Context, name string) (*domain.Profile, error) {
	var (
		key       string
		raw       []byte
		updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, queryGetProfile, domain.ProfileKey(name)).Scan(&key, &raw, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetProfile, err)
	}

	profile := &domain.Profile{Name: domain.ProfileNameFromKey(key), UpdatedAt: updatedAt}
	if err := json.Unmarshal(raw, &profile.Data); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUnmarshalProfile, err)
	}
	return profile, nil
}

// SaveProfile inserts or replaces a profile and stamps its UpdatedAt
func (r *ProfileRepository) SaveProfile(ctx context.Context, profile *domain.Profile) error {
	raw, err := json.Marshal(profile.Data)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalProfile, err)
	}

	now := time.Now().UTC()
	if _, err := r.pool.Exec(ctx, queryUpsertProfile, domain.ProfileKey(profile.Name), raw, now); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveProfile, err)
	}
	profile.UpdatedAt = now
	return nil
}

// DeleteProfile removes a profile and, when it was the last opened farm,
// points the settings back at the default profile in the same transaction
func (r *ProfileRepository) DeleteProfile(ctx context.Context, name string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	tag, err := tx.Exec(ctx, queryDeleteProfile, domain.ProfileKey(name))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteProfile, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProfileNotFound
	}

	if _, err := tx.Exec(ctx, queryResetLastFarm, domain.DefaultProfileName, name); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSettings, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// GetSettings loads the planner settings; domain.ErrSettingsNotFound before the first save
func (r *ProfileRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	var s domain.Settings
	err := r.pool.QueryRow(ctx, queryGetSettings).Scan(&s.LastFarm, &s.SortVar, &s.StrategyVar)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSettings, err)
	}
	return &s, nil
}

// SaveSettings upserts the single settings row
func (r *ProfileRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	if _, err := r.pool.Exec(ctx, queryUpsertSettings, settings.LastFarm, settings.SortVar, settings.StrategyVar); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSettings, err)
	}
	return nil
}
