package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Objective selects what the strategy optimizer maximises.
type Objective string

const (
	// ObjectiveRate maximises bio points per minute assuming continuous replanting.
	ObjectiveRate Objective = "rate"
	// ObjectiveBatch maximises the yield of a single plant-and-harvest batch.
	ObjectiveBatch Objective = "batch"
)

// Legacy objective names found in exported profiles.
const (
	LegacyObjectiveRate  = "bp_per_minute"
	LegacyObjectiveBatch = "bp_per_batch"
)

// DefaultObjective is used when a profile does not specify one.
const DefaultObjective = ObjectiveBatch

// ParseObjective accepts the current and legacy objective names.
func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ObjectiveRate), LegacyObjectiveRate:
		return ObjectiveRate, nil
	case string(ObjectiveBatch), LegacyObjectiveBatch:
		return ObjectiveBatch, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidObjective, s)
}

// Legacy returns the name the browser planner stores for this objective.
func (o Objective) Legacy() string {
	if o == ObjectiveRate {
		return LegacyObjectiveRate
	}
	return LegacyObjectiveBatch
}

// ItemKind names the owned-quantity maps of an inventory.
type ItemKind string

const (
	ItemKindSeed   ItemKind = "seed"
	ItemKindPlot   ItemKind = "plot"
	ItemKindLamp   ItemKind = "lamp"
	ItemKindAnimal ItemKind = "animal"
)

// ParseItemKind validates an item kind.
func ParseItemKind(s string) (ItemKind, error) {
	switch k := ItemKind(strings.ToLower(strings.TrimSpace(s))); k {
	case ItemKindSeed, ItemKindPlot, ItemKindLamp, ItemKindAnimal:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidItemKind, s)
}

// SeedKey identifies a (seed name, rarity) variant. Its string form is "Name_Rarity".
type SeedKey struct {
	Name   string
	Rarity Rarity
}

func (k SeedKey) String() string {
	return k.Name + "_" + string(k.Rarity)
}

// ParseSeedKey splits "Name_Rarity" at the last underscore, so names may contain underscores.
func ParseSeedKey(s string) (SeedKey, error) {
	idx := strings.LastIndex(s, "_")
	if idx <= 0 || idx == len(s)-1 {
		return SeedKey{}, fmt.Errorf("%w: %q", ErrInvalidSeedKey, s)
	}
	rarity, err := ParseRarity(s[idx+1:])
	if err != nil {
		return SeedKey{}, fmt.Errorf("%w: %q", ErrInvalidSeedKey, s)
	}
	return SeedKey{Name: s[:idx], Rarity: rarity}, nil
}

// SeedInstanceID is the stable identity of one owned seed unit: "Name_Rarity_Ordinal".
// Exclusions reference it, so it must not change while quantities are unchanged.
type SeedInstanceID string

// NewSeedInstanceID builds the id of the ordinal-th unit of a seed variant.
func NewSeedInstanceID(key SeedKey, ordinal int) SeedInstanceID {
	return SeedInstanceID(key.String() + "_" + strconv.Itoa(ordinal))
}

// Parse splits an instance id back into its variant key and ordinal.
func (id SeedInstanceID) Parse() (SeedKey, int, error) {
	s := string(id)
	idx := strings.LastIndex(s, "_")
	if idx <= 0 {
		return SeedKey{}, 0, fmt.Errorf("%w: %q", ErrInvalidSeedKey, s)
	}
	ordinal, err := strconv.Atoi(s[idx+1:])
	if err != nil || ordinal < 0 {
		return SeedKey{}, 0, fmt.Errorf("%w: %q", ErrInvalidSeedKey, s)
	}
	key, err := ParseSeedKey(s[:idx])
	if err != nil {
		return SeedKey{}, 0, err
	}
	return key, ordinal, nil
}

// CanonicalSeedKey respells a parseable seed key with the canonical rarity
// name. Unparseable keys are returned unchanged.
func CanonicalSeedKey(s string) string {
	key, err := ParseSeedKey(s)
	if err != nil {
		return s
	}
	return key.String()
}

// CanonicalSeedCounts rewrites seed keys to canonical spelling. Counts of keys
// naming the same variant are summed after clamping.
func CanonicalSeedCounts(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		canonical := CanonicalSeedKey(k)
		if prev, ok := out[canonical]; ok {
			out[canonical] = ClampQuantity(prev) + ClampQuantity(v)
		} else {
			out[canonical] = v
		}
	}
	return out
}

// CanonicalExclusions rewrites parseable instance ids to canonical spelling
// and drops repeats, keeping first-seen order.
func CanonicalExclusions(ids []string) []string {
	if ids == nil {
		return nil
	}
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, raw := range ids {
		id := raw
		if key, ordinal, err := SeedInstanceID(raw).Parse(); err == nil {
			id = string(NewSeedInstanceID(key, ordinal))
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// Inventory is the snapshot the optimizer consumes. Quantities are keyed by
// seed key ("Name_Rarity"), plot name, lamp name and animal name.
type Inventory struct {
	Seeds     map[string]int `json:"seeds"`
	Plots     map[string]int `json:"plots"`
	Lamps     map[string]int `json:"lamps"`
	Animals   map[string]int `json:"animals,omitempty"`
	Objective Objective      `json:"objective"`
	Excluded  []string       `json:"excluded_seeds"`
}

// NewInventory returns an empty inventory with initialised maps.
func NewInventory() Inventory {
	return Inventory{
		Seeds:     map[string]int{},
		Plots:     map[string]int{},
		Lamps:     map[string]int{},
		Animals:   map[string]int{},
		Objective: DefaultObjective,
	}
}

// Quantities returns the map for kind, creating it if needed.
func (inv *Inventory) Quantities(kind ItemKind) map[string]int {
	switch kind {
	case ItemKindSeed:
		if inv.Seeds == nil {
			inv.Seeds = map[string]int{}
		}
		return inv.Seeds
	case ItemKindPlot:
		if inv.Plots == nil {
			inv.Plots = map[string]int{}
		}
		return inv.Plots
	case ItemKindLamp:
		if inv.Lamps == nil {
			inv.Lamps = map[string]int{}
		}
		return inv.Lamps
	case ItemKindAnimal:
		if inv.Animals == nil {
			inv.Animals = map[string]int{}
		}
		return inv.Animals
	}
	return nil
}

// ExclusionSet returns the excluded ids as a set.
func (inv Inventory) ExclusionSet() map[SeedInstanceID]struct{} {
	set := make(map[SeedInstanceID]struct{}, len(inv.Excluded))
	for _, id := range inv.Excluded {
		set[SeedInstanceID(id)] = struct{}{}
	}
	return set
}

// ToggleExclusion adds id to the exclusion set or removes it if already present.
// The set is kept sorted so snapshots compare equal regardless of toggle order.
func (inv *Inventory) ToggleExclusion(id SeedInstanceID) bool {
	for i, existing := range inv.Excluded {
		if existing == string(id) {
			inv.Excluded = append(inv.Excluded[:i], inv.Excluded[i+1:]...)
			return false
		}
	}
	inv.Excluded = append(inv.Excluded, string(id))
	sort.Strings(inv.Excluded)
	return true
}

// Clone returns a deep copy.
func (inv Inventory) Clone() Inventory {
	out := Inventory{
		Seeds:     cloneCounts(inv.Seeds),
		Plots:     cloneCounts(inv.Plots),
		Lamps:     cloneCounts(inv.Lamps),
		Animals:   cloneCounts(inv.Animals),
		Objective: inv.Objective,
	}
	if inv.Excluded != nil {
		out.Excluded = append([]string(nil), inv.Excluded...)
	}
	return out
}

// ClampQuantity normalises an owned quantity: negatives become zero.
func ClampQuantity(qty int) int {
	if qty < 0 {
		return 0
	}
	return qty
}

func cloneCounts(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
