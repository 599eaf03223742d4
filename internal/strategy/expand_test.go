package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

func TestExpandSeeds_StableIDsAndOrder(t *testing.T) {
	seeds, err := ExpandSeeds(berryCatalog(), map[string]int{
		"Melon_Common":    1,
		"Berry_Legendary": 1,
		"Berry_Common":    2,
	})
	require.NoError(t, err)

	ids := make([]domain.SeedInstanceID, 0, len(seeds))
	for _, s := range seeds {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []domain.SeedInstanceID{
		"Berry_Common_0", "Berry_Common_1", "Berry_Legendary_0", "Melon_Common_0",
	}, ids)
	assert.Equal(t, 0.5, seeds[0].YieldRate)
	assert.Equal(t, 1, seeds[1].Ordinal)
}

func TestExpandPlots_NameOrder(t *testing.T) {
	plots, err := ExpandPlots(berryCatalog(), map[string]int{"Wooden": 1, "Cardboard": 2})
	require.NoError(t, err)

	require.Len(t, plots, 3)
	assert.Equal(t, "Cardboard", plots[0].Kind)
	assert.Equal(t, "Wooden", plots[2].Kind)
	assert.Equal(t, 2, plots[2].Multiplier)
}

func TestExpandLamps_Fraction(t *testing.T) {
	lamps, err := ExpandLamps(berryCatalog(), map[string]int{"Common": 2, "Half": 0})
	require.NoError(t, err)

	require.Len(t, lamps, 2)
	assert.InDelta(t, 0.03, lamps[0].ReductionFraction, 1e-12)
}
