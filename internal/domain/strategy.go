package domain

// SeedInstance is one owned seed unit, expanded from a quantity.
type SeedInstance struct {
	ID          SeedInstanceID `json:"id"`
	Name        string         `json:"name"`
	Rarity      Rarity         `json:"rarity"`
	Ordinal     int            `json:"ordinal"`
	GrowTime    float64        `json:"grow_time"`
	YieldPoints float64        `json:"bio_points"`
	YieldRate   float64        `json:"bp_per_minute"`
}

// PlotInstance is one owned plot unit.
type PlotInstance struct {
	Kind       string `json:"kind"`
	Multiplier int    `json:"multiplier"`
}

// LampInstance is one owned lamp unit.
type LampInstance struct {
	Kind              string  `json:"kind"`
	ReductionFraction float64 `json:"reduction_fraction"`
}

// LampBinding ties a lamp to one or two positions of the objective-ordered seed list.
type LampBinding struct {
	LampKind          string  `json:"lamp_kind"`
	ReductionFraction float64 `json:"reduction_fraction"`
	TargetIndices     []int   `json:"target_indices"`
}

// Assignment is one seed instance planted in one plot instance.
type Assignment struct {
	SeedID               SeedInstanceID `json:"seed_id"`
	SeedName             string         `json:"seed_name"`
	Rarity               Rarity         `json:"rarity"`
	PlotKind             string         `json:"plot_kind"`
	PlotMultiplier       int            `json:"plot_multiplier"`
	LampKind             string         `json:"lamp_kind,omitempty"`
	GrowTime             float64        `json:"grow_time"`
	BaseYield            float64        `json:"base_yield"`
	AppliedTimeReduction float64        `json:"applied_time_reduction"`
	AdjustedGrowTime     float64        `json:"adjusted_grow_time"`
	YieldRate            float64        `json:"yield_rate"`
	Cycles               int            `json:"cycles"`
	EffectiveYield       float64        `json:"effective_yield"`
}

// HasLamp reports whether a lamp shortened this pairing.
func (a Assignment) HasLamp() bool {
	return a.AppliedTimeReduction > 0
}

// UnusedSeed is an available seed that found no plot. It keeps its own grow time.
type UnusedSeed struct {
	SeedInstance
	AdjustedGrowTime float64 `json:"adjusted_grow_time"`
}

// StrategyResult is the full output of one strategy computation.
type StrategyResult struct {
	Objective          Objective      `json:"objective"`
	Assignments        []Assignment   `json:"assignments"`
	Unused             []UnusedSeed   `json:"unused"`
	Excluded           []SeedInstance `json:"excluded"`
	StaleExclusions    []string       `json:"stale_exclusions"`
	LampBindings       []LampBinding  `json:"lamp_bindings"`
	TotalYield         float64        `json:"total_yield"`
	TotalYieldRate     float64        `json:"total_yield_rate"`
	CycleTime          float64        `json:"cycle_time"`
	UsedPlotCount      int            `json:"used_plot_count"`
	UsedSeedCount      int            `json:"used_seed_count"`
	TotalPlotCount     int            `json:"total_plot_count"`
	TotalSeedCount     int            `json:"total_seed_count"`
	AvailableSeedCount int            `json:"available_seed_count"`
}

// SummaryView is the display-ready projection of a StrategyResult.
type SummaryView struct {
	Objective         Objective        `json:"objective"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	PlotsUsed         string           `json:"plots_used"`
	SeedsUsed         string           `json:"seeds_used"`
	UsedPlotCount     int              `json:"used_plot_count"`
	TotalPlotCount    int              `json:"total_plot_count"`
	UsedSeedCount     int              `json:"used_seed_count"`
	TotalSeedCount    int              `json:"total_seed_count"`
	UnusedSeedCount   int              `json:"unused_seed_count"`
	ExcludedSeedCount int              `json:"excluded_seed_count"`
	TotalYield        float64          `json:"total_yield"`
	TotalYieldText    string           `json:"total_yield_text"`
	TotalYieldRate    float64          `json:"total_yield_rate"`
	YieldRateText     string           `json:"yield_rate_text"`
	CycleLabel        string           `json:"cycle_label,omitempty"`
	CycleMinutes      int              `json:"cycle_minutes"`
	CycleText         string           `json:"cycle_text,omitempty"`
	Assignments       []AssignmentView `json:"assignments"`
}

// AssignmentView is one assignment row prepared for display.
type AssignmentView struct {
	SeedID        SeedInstanceID `json:"seed_id"`
	SeedName      string         `json:"seed_name"`
	Rarity        Rarity         `json:"rarity"`
	PlotKind      string         `json:"plot_kind"`
	Cycles        int            `json:"cycles"`
	YieldText     string         `json:"yield_text"`
	YieldRateText string         `json:"yield_rate_text"`
	TimeMinutes   int            `json:"time_minutes"`
	TimeText      string         `json:"time_text"`
	LampPercent   int            `json:"lamp_percent,omitempty"`
	BaseTimeText  string         `json:"base_time_text,omitempty"`
}

// StrategyReport bundles a result with its summary for API consumers.
type StrategyReport struct {
	Result  *StrategyResult `json:"result"`
	Summary SummaryView     `json:"summary"`
}
