package strategy

import (
	"math"
	"sort"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// Engine pairs seeds with plots under an objective (no storage dependencies)
type Engine struct {
	allocator *Allocator
}

// NewEngine creates a new strategy engine
func NewEngine() *Engine {
	return &Engine{allocator: NewAllocator()}
}

// Compute builds the strategy for an inventory snapshot. The snapshot is not
// modified. A catalog problem aborts the whole computation; no partial result
// is returned.
func (e *Engine) Compute(cat Catalog, inv domain.Inventory) (*domain.StrategyResult, error) {
	objective := inv.Objective
	if objective == "" {
		objective = domain.DefaultObjective
	}
	objective, err := domain.ParseObjective(string(objective))
	if err != nil {
		return nil, err
	}

	seeds, err := ExpandSeeds(cat, inv.Seeds)
	if err != nil {
		return nil, err
	}
	plots, err := ExpandPlots(cat, inv.Plots)
	if err != nil {
		return nil, err
	}
	lamps, err := ExpandLamps(cat, inv.Lamps)
	if err != nil {
		return nil, err
	}

	excludedSet := inv.ExclusionSet()
	available := make([]domain.SeedInstance, 0, len(seeds))
	excluded := []domain.SeedInstance{}
	matched := make(map[domain.SeedInstanceID]struct{})
	for _, s := range seeds {
		if _, ok := excludedSet[s.ID]; ok {
			excluded = append(excluded, s)
			matched[s.ID] = struct{}{}
			continue
		}
		available = append(available, s)
	}

	sortSeeds(available, objective)
	sort.SliceStable(plots, func(i, j int) bool {
		return plots[i].Multiplier > plots[j].Multiplier
	})

	bindings := e.allocator.Allocate(lamps, len(available))
	reductions, lampKinds := reductionsByIndex(bindings, len(available))

	pairCount := min(len(available), len(plots))
	result := &domain.StrategyResult{
		Objective:          objective,
		Assignments:        make([]domain.Assignment, 0, pairCount),
		Unused:             make([]domain.UnusedSeed, 0, len(available)-pairCount),
		Excluded:           excluded,
		StaleExclusions:    staleExclusions(inv.Excluded, matched),
		LampBindings:       bindings,
		UsedPlotCount:      pairCount,
		UsedSeedCount:      pairCount,
		TotalPlotCount:     len(plots),
		TotalSeedCount:     len(seeds),
		AvailableSeedCount: len(available),
	}

	for i := 0; i < pairCount; i++ {
		seed, plot := available[i], plots[i]
		baseYield := seed.YieldPoints * float64(plot.Multiplier)
		adjusted := seed.GrowTime * (1 - reductions[i])
		result.Assignments = append(result.Assignments, domain.Assignment{
			SeedID:               seed.ID,
			SeedName:             seed.Name,
			Rarity:               seed.Rarity,
			PlotKind:             plot.Kind,
			PlotMultiplier:       plot.Multiplier,
			LampKind:             lampKinds[i],
			GrowTime:             seed.GrowTime,
			BaseYield:            baseYield,
			AppliedTimeReduction: reductions[i],
			AdjustedGrowTime:     adjusted,
			YieldRate:            baseYield / adjusted,
			Cycles:               1,
			EffectiveYield:       baseYield,
		})
		if adjusted > result.CycleTime {
			result.CycleTime = adjusted
		}
	}

	for i := range result.Assignments {
		a := &result.Assignments[i]
		if objective == domain.ObjectiveRate {
			a.Cycles = max(int(math.Floor(result.CycleTime/a.AdjustedGrowTime)), 1)
			a.EffectiveYield = a.BaseYield * float64(a.Cycles)
		}
		result.TotalYield += a.EffectiveYield
		result.TotalYieldRate += a.YieldRate
	}

	for _, seed := range available[pairCount:] {
		result.Unused = append(result.Unused, domain.UnusedSeed{
			SeedInstance:     seed,
			AdjustedGrowTime: seed.GrowTime,
		})
	}

	return result, nil
}

func sortSeeds(seeds []domain.SeedInstance, objective domain.Objective) {
	if objective == domain.ObjectiveRate {
		sort.SliceStable(seeds, func(i, j int) bool {
			return seeds[i].YieldRate > seeds[j].YieldRate
		})
		return
	}
	sort.SliceStable(seeds, func(i, j int) bool {
		if seeds[i].YieldPoints != seeds[j].YieldPoints {
			return seeds[i].YieldPoints > seeds[j].YieldPoints
		}
		return seeds[i].GrowTime < seeds[j].GrowTime
	})
}

// staleExclusions returns the excluded ids that matched no owned instance, sorted.
func staleExclusions(excluded []string, matched map[domain.SeedInstanceID]struct{}) []string {
	stale := []string{}
	for _, id := range excluded {
		if _, ok := matched[domain.SeedInstanceID(id)]; !ok {
			stale = append(stale, id)
		}
	}
	sort.Strings(stale)
	return stale
}
