package domain

import (
	"strings"
	"time"
)

// DefaultProfileName is the profile that always exists and cannot be deleted.
const DefaultProfileName = "Default"

// ProfileKeyPrefix prefixes the storage key of every profile.
const ProfileKeyPrefix = "farm_"

// ProfileKey returns the storage key for a profile name ("My Farm" -> "farm_My_Farm").
func ProfileKey(name string) string {
	return ProfileKeyPrefix + strings.ReplaceAll(name, " ", "_")
}

// ProfileNameFromKey reverses ProfileKey.
func ProfileNameFromKey(key string) string {
	return strings.ReplaceAll(strings.TrimPrefix(key, ProfileKeyPrefix), "_", " ")
}

// ProfileData is the durable snapshot of one farm. Field names follow the
// export format of the browser planner so exported files import unchanged.
type ProfileData struct {
	Seeds           map[string]int  `json:"seeds"`
	Plots           map[string]int  `json:"plots"`
	Lamps           map[string]int  `json:"lamps"`
	Animals         map[string]int  `json:"animals"`
	SeasonalFlags   map[string]bool `json:"seasonal_flags,omitempty"`
	SortVar         string          `json:"sort_var,omitempty"`
	ShowCompareOnly bool            `json:"show_compare_only"`
	ShowCompactMode bool            `json:"show_compact_mode"`
	StrategyVar     string          `json:"strategy_var,omitempty"`
	ExcludedSeeds   []string        `json:"excluded_seeds"`
	CompareMode     map[string]bool `json:"compare_mode,omitempty"`
}

// Profile is a named, persisted ProfileData.
type Profile struct {
	Name      string      `json:"name"`
	Data      ProfileData `json:"data"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Inventory extracts the optimizer snapshot from the profile.
func (p *Profile) Inventory() Inventory {
	objective, err := ParseObjective(p.Data.StrategyVar)
	if err != nil {
		objective = DefaultObjective
	}
	inv := Inventory{
		Seeds:     cloneCounts(p.Data.Seeds),
		Plots:     cloneCounts(p.Data.Plots),
		Lamps:     cloneCounts(p.Data.Lamps),
		Animals:   cloneCounts(p.Data.Animals),
		Objective: objective,
	}
	if len(p.Data.ExcludedSeeds) > 0 {
		inv.Excluded = append([]string(nil), p.Data.ExcludedSeeds...)
	}
	return inv
}

// ApplyInventory writes an optimizer snapshot back into the profile.
func (p *Profile) ApplyInventory(inv Inventory) {
	p.Data.Seeds = cloneCounts(inv.Seeds)
	p.Data.Plots = cloneCounts(inv.Plots)
	p.Data.Lamps = cloneCounts(inv.Lamps)
	p.Data.Animals = cloneCounts(inv.Animals)
	p.Data.StrategyVar = inv.Objective.Legacy()
	p.Data.ExcludedSeeds = append([]string{}, inv.Excluded...)
}

// Settings are the planner-wide preferences remembered between sessions.
type Settings struct {
	LastFarm    string `json:"last_farm"`
	SortVar     string `json:"sort_var"`
	StrategyVar string `json:"strategy_var"`
}

// DefaultSettings returns the settings used on first launch.
func DefaultSettings() Settings {
	return Settings{
		LastFarm:    DefaultProfileName,
		SortVar:     DefaultSortVar,
		StrategyVar: DefaultObjective.Legacy(),
	}
}

// Clone returns a deep copy so snapshots can outlive later mutations.
func (p Profile) Clone() Profile {
	out := p
	out.Data.Seeds = cloneCounts(p.Data.Seeds)
	out.Data.Plots = cloneCounts(p.Data.Plots)
	out.Data.Lamps = cloneCounts(p.Data.Lamps)
	out.Data.Animals = cloneCounts(p.Data.Animals)
	out.Data.SeasonalFlags = cloneFlags(p.Data.SeasonalFlags)
	out.Data.CompareMode = cloneFlags(p.Data.CompareMode)
	if p.Data.ExcludedSeeds != nil {
		out.Data.ExcludedSeeds = append([]string{}, p.Data.ExcludedSeeds...)
	}
	return out
}

func cloneFlags(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
