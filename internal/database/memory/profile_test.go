package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

func sampleProfile(name string) *domain.Profile {
	return &domain.Profile{
		Name: name,
		Data: domain.ProfileData{
			Seeds:         map[string]int{"Strawberry_Common": 3},
			Plots:         map[string]int{"Cardboard": 2},
			Lamps:         map[string]int{},
			Animals:       map[string]int{},
			StrategyVar:   domain.LegacyObjectiveRate,
			ExcludedSeeds: []string{"Strawberry_Common_0"},
		},
	}
}

func TestProfileRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newProfileRepository()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	p := sampleProfile("My Farm")
	require.NoError(t, repo.SaveProfile(ctx, p))
	assert.Equal(t, fixed, p.UpdatedAt)

	got, err := repo.GetProfile(ctx, "My Farm")
	require.NoError(t, err)
	assert.Equal(t, "My Farm", got.Name)
	assert.Equal(t, p.Data, got.Data)
	assert.Equal(t, fixed, got.UpdatedAt)
}

func TestProfileRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := newProfileRepository()
	p := sampleProfile("Farm")
	require.NoError(t, repo.SaveProfile(ctx, p))

	p.Data.Seeds["Strawberry_Common"] = 99
	got, err := repo.GetProfile(ctx, "Farm")
	require.NoError(t, err)
	got.Data.Plots["Cardboard"] = 42

	again, err := repo.GetProfile(ctx, "Farm")
	require.NoError(t, err)
	assert.Equal(t, 3, again.Data.Seeds["Strawberry_Common"])
	assert.Equal(t, 2, again.Data.Plots["Cardboard"])
}

func TestProfileRepository_KeysCollapseSpaces(t *testing.T) {
	ctx := context.Background()
	repo := newProfileRepository()
	require.NoError(t, repo.SaveProfile(ctx, sampleProfile("My Farm")))

	got, err := repo.GetProfile(ctx, "My_Farm")
	require.NoError(t, err)
	assert.Equal(t, "My Farm", got.Name)
}

func TestProfileRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := newProfileRepository()
	for _, name := range []string{"Zeta", "Alpha Farm", "Default"} {
		require.NoError(t, repo.SaveProfile(ctx, sampleProfile(name)))
	}

	names, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha Farm", "Default", "Zeta"}, names)
}

func TestProfileRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newProfileRepository()
	require.NoError(t, repo.SaveProfile(ctx, sampleProfile("Spare")))
	require.NoError(t, repo.SaveSettings(ctx, domain.Settings{LastFarm: "Spare", SortVar: "name", StrategyVar: "rate"}))

	require.NoError(t, repo.DeleteProfile(ctx, "Spare"))

	_, err := repo.GetProfile(ctx, "Spare")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.ErrorIs(t, repo.DeleteProfile(ctx, "Spare"), domain.ErrProfileNotFound)

	settings, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfileName, settings.LastFarm)
}

func TestProfileRepository_Settings(t *testing.T) {
	ctx := context.Background()
	repo := newProfileRepository()

	_, err := repo.GetSettings(ctx)
	assert.ErrorIs(t, err, domain.ErrSettingsNotFound)

	want := domain.Settings{LastFarm: "Farm", SortVar: "bp", StrategyVar: "bp_per_minute"}
	require.NoError(t, repo.SaveSettings(ctx, want))

	got, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestProfileRepository_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo := newProfileRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.SaveProfile(ctx, sampleProfile("Shared")))
			_, err := repo.GetProfile(ctx, "Shared")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	names, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Shared"}, names)
}
