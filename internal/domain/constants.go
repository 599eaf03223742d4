package domain

// Defaults shared by the planner surfaces.
const (
	DefaultSortVar = "grow_time"

	// LampTargetsPerLamp is how many seed positions one lamp covers.
	LampTargetsPerLamp = 2

	// MaxLampBonusPerKind caps the reduction contributed by one lamp kind
	// in the inventory overview.
	MaxLampBonusPerKind = 0.9

	// MaxMergeCommons bounds the merge simulation search.
	MaxMergeCommons = 1024

	// CommonsPerMerge is how many items of one rarity merge into the next.
	CommonsPerMerge = 2
)

// Display labels for the two objectives.
const (
	RateTitle        = "Max BP/min (Active Play)"
	BatchTitle       = "Max BP/batch (Idle Play)"
	RateDescription  = "Assumes continuous replanting. Shorter seeds will be replanted multiple times during the longest seed's growth period."
	BatchDescription = "One-time harvest. Plant all seeds once and harvest when complete. Best for idle/away play."
	RateCycleLabel   = "Cycle Time (Longest Seed)"
	BatchCycleLabel  = "Batch Completion Time"
)
