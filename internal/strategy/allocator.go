package strategy

import (
	"sort"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// Allocator binds lamps to positions of an objective-ordered seed list.
//
// The strongest lamp takes the first two positions, the next lamp the
// following two, and so on. There is no notion of plot adjacency: this is a
// by-position heuristic, not a maximal matching.
type Allocator struct {
	targetsPerLamp int
}

// NewAllocator creates an allocator that covers domain.LampTargetsPerLamp positions per lamp.
func NewAllocator() *Allocator {
	return &Allocator{targetsPerLamp: domain.LampTargetsPerLamp}
}

// Allocate returns one binding per lamp that found at least one position.
// Lamps left over once every position is claimed are dropped.
func (a *Allocator) Allocate(lamps []domain.LampInstance, seedCount int) []domain.LampBinding {
	bindings := []domain.LampBinding{}
	if len(lamps) == 0 || seedCount <= 0 {
		return bindings
	}

	sorted := make([]domain.LampInstance, len(lamps))
	copy(sorted, lamps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReductionFraction > sorted[j].ReductionFraction
	})

	next := 0
	for _, lamp := range sorted {
		if next >= seedCount {
			break
		}
		end := next + a.targetsPerLamp
		if end > seedCount {
			end = seedCount
		}
		targets := make([]int, 0, end-next)
		for i := next; i < end; i++ {
			targets = append(targets, i)
		}
		bindings = append(bindings, domain.LampBinding{
			LampKind:          lamp.Kind,
			ReductionFraction: lamp.ReductionFraction,
			TargetIndices:     targets,
		})
		next = end
	}
	return bindings
}

// reductionsByIndex flattens bindings into a per-position lookup.
func reductionsByIndex(bindings []domain.LampBinding, seedCount int) ([]float64, []string) {
	reductions := make([]float64, seedCount)
	kinds := make([]string, seedCount)
	for _, b := range bindings {
		for _, idx := range b.TargetIndices {
			if idx >= 0 && idx < seedCount {
				reductions[idx] = b.ReductionFraction
				kinds[idx] = b.LampKind
			}
		}
	}
	return reductions, kinds
}
