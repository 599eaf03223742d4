package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

const (
	testDataDir = "testdata/data"
	testProfile = "testdata/farm_My_Farm.json"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--data", testDataDir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestStrategyCommand(t *testing.T) {
	out, err := run(t, "strategy", "--profile", testProfile)
	require.NoError(t, err)

	assert.Contains(t, out, "My Farm: "+domain.BatchTitle)
	assert.Contains(t, out, "Plots used:  2 / 2")
	assert.Contains(t, out, "Seeds used:  2 / 3")
	assert.Contains(t, out, "SEED")
}

func TestStrategyCommand_ObjectiveOverride(t *testing.T) {
	out, err := run(t, "strategy", "--profile", testProfile, "--objective", "rate")
	require.NoError(t, err)
	assert.Contains(t, out, domain.RateTitle)

	_, err = run(t, "strategy", "--profile", testProfile, "--objective", "fastest")
	assert.ErrorIs(t, err, domain.ErrInvalidObjective)
}

func TestStrategyCommand_YAMLProfile(t *testing.T) {
	out, err := run(t, "strategy", "--profile", "testdata/farm_Yaml.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, "Yaml: "+domain.RateTitle)
	assert.Contains(t, out, "Plots used:  1 / 1")
}

func TestStrategyCommand_Errors(t *testing.T) {
	_, err := run(t, "strategy")
	assert.ErrorContains(t, err, "--profile")

	_, err = run(t, "strategy", "--profile", "testdata/missing.json")
	assert.ErrorContains(t, err, "failed to read profile")

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--data", t.TempDir(), "strategy", "--profile", testProfile})
	assert.ErrorContains(t, cmd.Execute(), "failed to load catalog")
}

func TestValueCommand(t *testing.T) {
	out, err := run(t, "value", "--profile", testProfile)
	require.NoError(t, err)

	assert.Contains(t, out, "=== My Farm ===")
	assert.Contains(t, out, "Seeds:       3")
	assert.Contains(t, out, "Plots:       2")
	assert.Contains(t, out, "Lamps:       1")
}

func TestUpgradesCommand(t *testing.T) {
	out, err := run(t, "upgrades", "--profile", testProfile, "--seed", "Pumpkin")
	require.NoError(t, err)
	assert.Contains(t, out, "Upgrades for Pumpkin")

	_, err = run(t, "upgrades", "--profile", testProfile)
	assert.ErrorContains(t, err, "--seed")

	_, err = run(t, "upgrades", "--profile", testProfile, "--seed", "Cactus")
	assert.ErrorIs(t, err, domain.ErrCatalogEntryNotFound)
}

func TestShopCommand(t *testing.T) {
	out, err := run(t, "shop")
	require.NoError(t, err)
	assert.Contains(t, out, "Shop: All")
	assert.Contains(t, out, "Strawberry")
	assert.NotContains(t, out, "Pumpkin")

	out, err = run(t, "shop", "--all", "--category", "seeds")
	require.NoError(t, err)
	assert.Contains(t, out, "Shop: Seeds")
	assert.Contains(t, out, "Pumpkin")
	assert.NotContains(t, out, "Cardboard")

	_, err = run(t, "shop", "--sort", "colour")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProfileNameFromPath(t *testing.T) {
	assert.Equal(t, "My Farm", profileNameFromPath("exports/farm_My_Farm.json"))
	assert.Equal(t, "Barn", profileNameFromPath("Barn.yaml"))
}
