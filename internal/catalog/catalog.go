package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// Data is the raw content of a catalog before indexing.
type Data struct {
	Seeds      []domain.SeedDef        `json:"seeds"`
	Plots      []domain.PlotEntry      `json:"plots"`
	Lamps      []domain.LampEntry      `json:"lamps"`
	Animals    []domain.AnimalCategory `json:"animals"`
	Products   []domain.ProductEntry   `json:"products"`
	Food       []domain.FoodRecipe     `json:"food"`
	Harvesters []domain.HarvesterEntry `json:"harvesters"`
}

// Catalog is an immutable, validated index of the static game data.
type Catalog struct {
	data       Data
	seeds      map[string]domain.SeedDef
	plots      map[string]domain.PlotEntry
	lamps      map[string]domain.LampEntry
	animals    map[string]domain.AnimalEntry
	categories map[string]domain.AnimalCategory
	food       map[string]domain.FoodRecipe
	seedNames  []string
	plotNames  []string
	lampNames  []string
	digest     string
}

// New validates data and builds a catalog from it. Validation failures wrap
// domain.ErrInvalidCatalog, domain.ErrInvalidGrowTime, domain.ErrInvalidMultiplier
// or domain.ErrInvalidLampReduction.
func New(data Data) (*Catalog, error) {
	normalize(&data)
	if err := validateData(data); err != nil {
		return nil, err
	}

	c := &Catalog{
		data:       data,
		seeds:      make(map[string]domain.SeedDef, len(data.Seeds)),
		plots:      make(map[string]domain.PlotEntry, len(data.Plots)),
		lamps:      make(map[string]domain.LampEntry, len(data.Lamps)),
		animals:    make(map[string]domain.AnimalEntry),
		categories: make(map[string]domain.AnimalCategory, len(data.Animals)),
		food:       make(map[string]domain.FoodRecipe, len(data.Food)),
	}
	for _, s := range data.Seeds {
		c.seeds[s.Name] = s
		c.seedNames = append(c.seedNames, s.Name)
	}
	for _, p := range data.Plots {
		c.plots[p.Name] = p
		c.plotNames = append(c.plotNames, p.Name)
	}
	for _, l := range data.Lamps {
		c.lamps[l.Name] = l
		c.lampNames = append(c.lampNames, l.Name)
	}
	for _, cat := range data.Animals {
		c.categories[cat.Name] = cat
		for _, a := range cat.Animals {
			c.animals[a.Name] = a
		}
	}
	for _, f := range data.Food {
		c.food[f.Category] = f
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCatalog, err)
	}
	sum := sha256.Sum256(raw)
	c.digest = hex.EncodeToString(sum[:])
	return c, nil
}

// normalize puts every list into a canonical order so equal content digests equally.
func normalize(data *Data) {
	sort.SliceStable(data.Seeds, func(i, j int) bool { return data.Seeds[i].Name < data.Seeds[j].Name })
	sort.SliceStable(data.Plots, func(i, j int) bool {
		if data.Plots[i].Multiplier != data.Plots[j].Multiplier {
			return data.Plots[i].Multiplier < data.Plots[j].Multiplier
		}
		return data.Plots[i].Name < data.Plots[j].Name
	})
	sort.SliceStable(data.Lamps, func(i, j int) bool {
		if data.Lamps[i].TimeReducePercent != data.Lamps[j].TimeReducePercent {
			return data.Lamps[i].TimeReducePercent < data.Lamps[j].TimeReducePercent
		}
		return data.Lamps[i].Name < data.Lamps[j].Name
	})
	sort.SliceStable(data.Animals, func(i, j int) bool { return data.Animals[i].Name < data.Animals[j].Name })
	for i := range data.Animals {
		animals := data.Animals[i].Animals
		for j := range animals {
			animals[j].Category = data.Animals[i].Name
		}
		sort.SliceStable(animals, func(a, b int) bool {
			if animals[a].Products != animals[b].Products {
				return animals[a].Products < animals[b].Products
			}
			return animals[a].Name < animals[b].Name
		})
	}
	sort.SliceStable(data.Products, func(i, j int) bool {
		if data.Products[i].Type != data.Products[j].Type {
			return data.Products[i].Type < data.Products[j].Type
		}
		return data.Products[i].Rarity.Index() < data.Products[j].Rarity.Index()
	})
	sort.SliceStable(data.Food, func(i, j int) bool { return data.Food[i].Category < data.Food[j].Category })
	sort.SliceStable(data.Harvesters, func(i, j int) bool { return data.Harvesters[i].Name < data.Harvesters[j].Name })
}

var structValidator = validator.New()

func validateData(data Data) error {
	seen := make(map[string]bool)
	checkName := func(kind, name string) error {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf(ErrFmtEmptyName, domain.ErrInvalidCatalog, kind)
		}
		if seen[kind+"/"+name] {
			return fmt.Errorf(ErrFmtDuplicateName, domain.ErrInvalidCatalog, kind, name)
		}
		seen[kind+"/"+name] = true
		return nil
	}

	for _, s := range data.Seeds {
		if err := checkName("seed", s.Name); err != nil {
			return err
		}
		if err := checkStruct(domain.ErrInvalidCatalog, "seed", s.Name, s); err != nil {
			return err
		}
		for _, r := range domain.Rarities {
			tier, ok := s.Tiers[r]
			if !ok {
				return fmt.Errorf(ErrFmtMissingRarity, domain.ErrInvalidCatalog, s.Name, r)
			}
			if tier.GrowTime <= 0 {
				return fmt.Errorf("%w: seed %s_%s has grow time %v", domain.ErrInvalidGrowTime, s.Name, r, tier.GrowTime)
			}
			if err := checkStruct(domain.ErrInvalidCatalog, "seed", s.Name+"_"+string(r), tier); err != nil {
				return err
			}
		}
	}
	for _, p := range data.Plots {
		if err := checkName("plot", p.Name); err != nil {
			return err
		}
		if err := checkStruct(domain.ErrInvalidMultiplier, "plot", p.Name, p); err != nil {
			return err
		}
	}
	for _, l := range data.Lamps {
		if err := checkName("lamp", l.Name); err != nil {
			return err
		}
		if err := checkStruct(domain.ErrInvalidLampReduction, "lamp", l.Name, l); err != nil {
			return err
		}
	}
	for _, cat := range data.Animals {
		if err := checkName("animal category", cat.Name); err != nil {
			return err
		}
		for _, a := range cat.Animals {
			if err := checkName("animal", a.Name); err != nil {
				return err
			}
			if a.GrowTime <= 0 {
				return fmt.Errorf("%w: animal %s has grow time %v", domain.ErrInvalidGrowTime, a.Name, a.GrowTime)
			}
			if err := checkStruct(domain.ErrInvalidCatalog, "animal", a.Name, a); err != nil {
				return err
			}
		}
	}
	for _, p := range data.Products {
		if !p.Rarity.Valid() {
			return fmt.Errorf(ErrFmtUnknownProductRarity, domain.ErrInvalidCatalog, p.Type, p.Rarity)
		}
		if err := checkStruct(domain.ErrInvalidCatalog, "product", p.Type+"_"+string(p.Rarity), p); err != nil {
			return err
		}
	}
	return nil
}

func checkStruct(sentinel error, kind, name string, v any) error {
	if err := structValidator.Struct(v); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
			}
		} else {
			fields = append(fields, err.Error())
		}
		return fmt.Errorf(ErrFmtFieldInvalid, sentinel, kind, name, strings.Join(fields, ", "))
	}
	return nil
}

// SeedEntry returns the attributes of one seed rarity.
func (c *Catalog) SeedEntry(name string, rarity domain.Rarity) (domain.SeedEntry, error) {
	def, ok := c.seeds[name]
	if ok {
		if entry, ok := def.Tiers[rarity]; ok {
			return entry, nil
		}
	}
	key := domain.SeedKey{Name: name, Rarity: rarity}.String()
	return domain.SeedEntry{}, c.notFound(domain.ItemKindSeed, key, name)
}

// Seed returns a seed with all of its tiers.
func (c *Catalog) Seed(name string) (domain.SeedDef, error) {
	def, ok := c.seeds[name]
	if !ok {
		return domain.SeedDef{}, c.notFound(domain.ItemKindSeed, name, name)
	}
	return def, nil
}

// PlotEntry returns the attributes of a plot type.
func (c *Catalog) PlotEntry(name string) (domain.PlotEntry, error) {
	entry, ok := c.plots[name]
	if !ok {
		return domain.PlotEntry{}, c.notFound(domain.ItemKindPlot, name, name)
	}
	return entry, nil
}

// LampEntry returns the attributes of a lamp type.
func (c *Catalog) LampEntry(name string) (domain.LampEntry, error) {
	entry, ok := c.lamps[name]
	if !ok {
		return domain.LampEntry{}, c.notFound(domain.ItemKindLamp, name, name)
	}
	return entry, nil
}

// AnimalEntry returns the attributes of an animal.
func (c *Catalog) AnimalEntry(name string) (domain.AnimalEntry, error) {
	entry, ok := c.animals[name]
	if !ok {
		return domain.AnimalEntry{}, c.notFound(domain.ItemKindAnimal, name, name)
	}
	return entry, nil
}

// Food returns the feed recipe of an animal category.
func (c *Catalog) Food(category string) (domain.FoodRecipe, bool) {
	f, ok := c.food[category]
	return f, ok
}

func (c *Catalog) notFound(kind domain.ItemKind, key, name string) error {
	return &domain.CatalogError{
		Kind:       kind,
		Key:        key,
		Suggestion: c.Suggest(kind, name),
		Err:        domain.ErrCatalogEntryNotFound,
	}
}

// SeedNames lists seed names alphabetically.
func (c *Catalog) SeedNames() []string { return append([]string(nil), c.seedNames...) }

// PlotNames lists plot names from the lowest multiplier up.
func (c *Catalog) PlotNames() []string { return append([]string(nil), c.plotNames...) }

// LampNames lists lamp names from the weakest up.
func (c *Catalog) LampNames() []string { return append([]string(nil), c.lampNames...) }

// AnimalNames lists animals by category, then by products tier.
func (c *Catalog) AnimalNames() []string {
	var names []string
	for _, cat := range c.data.Animals {
		for _, a := range cat.Animals {
			names = append(names, a.Name)
		}
	}
	return names
}

// Seeds returns every seed definition in name order.
func (c *Catalog) Seeds() []domain.SeedDef { return append([]domain.SeedDef(nil), c.data.Seeds...) }

// Plots returns every plot in merge order.
func (c *Catalog) Plots() []domain.PlotEntry { return append([]domain.PlotEntry(nil), c.data.Plots...) }

// Lamps returns every lamp in merge order.
func (c *Catalog) Lamps() []domain.LampEntry { return append([]domain.LampEntry(nil), c.data.Lamps...) }

// AnimalCategories returns every category with its animals in merge order.
func (c *Catalog) AnimalCategories() []domain.AnimalCategory {
	return append([]domain.AnimalCategory(nil), c.data.Animals...)
}

// Products returns every product tier.
func (c *Catalog) Products() []domain.ProductEntry {
	return append([]domain.ProductEntry(nil), c.data.Products...)
}

// Harvesters returns the auto harvester listings.
func (c *Catalog) Harvesters() []domain.HarvesterEntry {
	return append([]domain.HarvesterEntry(nil), c.data.Harvesters...)
}

// Data returns a copy of the catalog content, e.g. for serialising to clients.
func (c *Catalog) Data() Data {
	return Data{
		Seeds:      c.Seeds(),
		Plots:      c.Plots(),
		Lamps:      c.Lamps(),
		Animals:    c.AnimalCategories(),
		Products:   c.Products(),
		Food:       append([]domain.FoodRecipe(nil), c.data.Food...),
		Harvesters: c.Harvesters(),
	}
}

// Digest identifies the catalog content.
func (c *Catalog) Digest() string {
	return c.digest
}

// EmptyInventory returns an inventory with a zero entry for every catalog item.
func (c *Catalog) EmptyInventory() domain.Inventory {
	inv := domain.NewInventory()
	for _, name := range c.seedNames {
		for _, r := range domain.Rarities {
			inv.Seeds[domain.SeedKey{Name: name, Rarity: r}.String()] = 0
		}
	}
	for _, name := range c.plotNames {
		inv.Plots[name] = 0
	}
	for _, name := range c.lampNames {
		inv.Lamps[name] = 0
	}
	for _, name := range c.AnimalNames() {
		inv.Animals[name] = 0
	}
	return inv
}
