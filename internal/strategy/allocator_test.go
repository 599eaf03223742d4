package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

func TestAllocate_StrongestLampFirstStable(t *testing.T) {
	alloc := NewAllocator()
	lamps := []domain.LampInstance{
		{Kind: "A", ReductionFraction: 0.03},
		{Kind: "B", ReductionFraction: 0.10},
		{Kind: "C", ReductionFraction: 0.03},
	}

	bindings := alloc.Allocate(lamps, 5)

	require.Len(t, bindings, 3)
	assert.Equal(t, "B", bindings[0].LampKind)
	assert.Equal(t, []int{0, 1}, bindings[0].TargetIndices)
	assert.Equal(t, "A", bindings[1].LampKind, "ties keep insertion order")
	assert.Equal(t, []int{2, 3}, bindings[1].TargetIndices)
	assert.Equal(t, "C", bindings[2].LampKind)
	assert.Equal(t, []int{4}, bindings[2].TargetIndices, "last lamp takes the single remaining position")
}

func TestAllocate_SurplusLampsDropped(t *testing.T) {
	alloc := NewAllocator()
	lamps := []domain.LampInstance{
		{Kind: "A", ReductionFraction: 0.5},
		{Kind: "A", ReductionFraction: 0.5},
		{Kind: "A", ReductionFraction: 0.5},
	}

	bindings := alloc.Allocate(lamps, 2)

	require.Len(t, bindings, 1)
	assert.Equal(t, []int{0, 1}, bindings[0].TargetIndices)
}

func TestAllocate_Empty(t *testing.T) {
	alloc := NewAllocator()

	assert.Empty(t, alloc.Allocate(nil, 4))
	assert.Empty(t, alloc.Allocate([]domain.LampInstance{{Kind: "A", ReductionFraction: 0.1}}, 0))
	assert.NotNil(t, alloc.Allocate(nil, 4))
}

func TestAllocate_DoesNotReorderInput(t *testing.T) {
	alloc := NewAllocator()
	lamps := []domain.LampInstance{
		{Kind: "weak", ReductionFraction: 0.01},
		{Kind: "strong", ReductionFraction: 0.2},
	}

	alloc.Allocate(lamps, 4)

	assert.Equal(t, "weak", lamps[0].Kind)
}

func TestAllocate_NoPositionBoundTwice(t *testing.T) {
	alloc := NewAllocator()
	lamps := make([]domain.LampInstance, 7)
	for i := range lamps {
		lamps[i] = domain.LampInstance{Kind: "L", ReductionFraction: float64(i) / 100}
	}

	seen := map[int]bool{}
	for _, b := range alloc.Allocate(lamps, 9) {
		for _, idx := range b.TargetIndices {
			assert.False(t, seen[idx], "position %d bound twice", idx)
			seen[idx] = true
		}
	}
	assert.Len(t, seen, 9)
}
