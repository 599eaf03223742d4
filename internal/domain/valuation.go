package domain

// Totals are the owned-item counters and the naive production figure.
type Totals struct {
	Seeds       int     `json:"seeds"`
	Plots       int     `json:"plots"`
	Lamps       int     `json:"lamps"`
	Animals     int     `json:"animals"`
	LampBonus   float64 `json:"lamp_bonus"`
	YieldPerMin float64 `json:"bp_per_minute"`
	TotalValue  float64 `json:"total_value"`
	Investment  float64 `json:"investment"`
}

// UpgradeStep is the cost of reaching one rarity by merging commons.
type UpgradeStep struct {
	Seed          string  `json:"seed"`
	From          Rarity  `json:"from"`
	Target        Rarity  `json:"target"`
	CommonsNeeded int     `json:"commons_needed"`
	Cost          float64 `json:"cost"`
	CostUSDT      float64 `json:"cost_usdt"`
}

// UpgradePlan lists the upgrade steps for one seed.
type UpgradePlan struct {
	Seed string `json:"seed"`
	// Acquire is set when no rarity is owned: a Legendary costs 16 commons.
	Acquire *UpgradeStep  `json:"acquire,omitempty"`
	Steps   []UpgradeStep `json:"steps"`
}
