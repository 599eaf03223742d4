package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/PlotPlanner_Go/configs/schemas"
	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/validation"
)

// Loader reads catalog data files and validates them
type Loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a loader backed by the embedded catalog schemas
func NewLoader() *Loader {
	return &Loader{schemaValidator: validation.NewSchemaValidator(schemas.FS)}
}

// LoadDir loads the catalog from a directory on disk
func (l *Loader) LoadDir(dir string) (*Catalog, error) {
	return l.Load(os.DirFS(dir))
}

// Load reads the data files from fsys. Seeds, plots and lamps are required;
// animals, products, food and auto harvesters are optional.
func (l *Loader) Load(fsys fs.FS) (*Catalog, error) {
	var data Data

	raw, err := l.readDocument(fsys, SeedFile, schemas.Seeds, true)
	if err != nil {
		return nil, err
	}
	if data.Seeds, err = parseSeeds(raw); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, SeedFile, err)
	}

	if raw, err = l.readDocument(fsys, PlotFile, schemas.Plots, true); err != nil {
		return nil, err
	}
	if data.Plots, err = parsePlots(raw); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, PlotFile, err)
	}

	if raw, err = l.readDocument(fsys, LampFile, schemas.Lamps, true); err != nil {
		return nil, err
	}
	if data.Lamps, err = parseLamps(raw); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, LampFile, err)
	}

	if raw, err = l.readDocument(fsys, AnimalFile, schemas.Animals, false); err != nil {
		return nil, err
	}
	if data.Animals, err = parseAnimals(raw); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, AnimalFile, err)
	}

	if raw, err = l.readDocument(fsys, ProductFile, "", false); err != nil {
		return nil, err
	}
	if data.Products, err = parseProducts(raw); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, ProductFile, err)
	}

	if raw, err = l.readDocument(fsys, FoodFile, "", false); err != nil {
		return nil, err
	}
	if data.Food, err = parseFood(raw); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, FoodFile, err)
	}

	if raw, err = l.readDocument(fsys, RobotFile, "", false); err != nil {
		return nil, err
	}
	if data.Harvesters, err = parseHarvesters(raw); err != nil {
		return nil, fmt.Errorf(ErrMsgParseFileFailed, RobotFile, err)
	}

	return New(data)
}

// readDocument returns the named file as JSON, converting YAML when needed.
// A missing optional file yields nil bytes and no error.
func (l *Loader) readDocument(fsys fs.FS, base, schemaName string, required bool) ([]byte, error) {
	for _, ext := range fileExtensions {
		name := base + ext
		content, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf(ErrMsgReadFileFailed, name, err)
		}
		if ext != ".json" {
			if content, err = YAMLToJSON(content); err != nil {
				return nil, fmt.Errorf(ErrMsgParseFileFailed, name, err)
			}
		}
		if schemaName != "" {
			if err := l.schemaValidator.ValidateBytes(content, schemaName); err != nil {
				return nil, fmt.Errorf(ErrMsgSchemaFailed, name, errors.Join(domain.ErrInvalidCatalog, err))
			}
		}
		return content, nil
	}
	if required {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, base+".json", fs.ErrNotExist)
	}
	return nil, nil
}

// YAMLToJSON re-encodes a YAML document as JSON so both formats share one
// parser and one schema.
func YAMLToJSON(content []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

type seedAttrs struct {
	Seasonal bool    `json:"seasonal"`
	Icon     string  `json:"icon"`
	Price    float64 `json:"price"`
	USDT     float64 `json:"usdt"`
	InStock  bool    `json:"in_stock"`
}

type tierFields struct {
	GrowTime  float64 `json:"grow_time"`
	BioPoints float64 `json:"bio_points"`
}

func parseSeeds(raw []byte) ([]domain.SeedDef, error) {
	var file struct {
		Seeds map[string]json.RawMessage `json:"seeds"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	seeds := make([]domain.SeedDef, 0, len(file.Seeds))
	for name, body := range file.Seeds {
		var attrs seedAttrs
		if err := json.Unmarshal(body, &attrs); err != nil {
			return nil, fmt.Errorf("seed %q: %w", name, err)
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, fmt.Errorf("seed %q: %w", name, err)
		}

		def := domain.SeedDef{
			Name:     name,
			Tiers:    make(map[domain.Rarity]domain.SeedEntry, len(domain.Rarities)),
			Seasonal: attrs.Seasonal,
			Icon:     attrs.Icon,
			Price:    attrs.Price,
			USDT:     attrs.USDT,
			InStock:  attrs.InStock,
		}
		for _, r := range domain.Rarities {
			tierRaw, ok := fields[string(r)]
			if !ok {
				continue
			}
			var tier tierFields
			if err := json.Unmarshal(tierRaw, &tier); err != nil {
				return nil, fmt.Errorf("seed %q %s: %w", name, r, err)
			}
			def.Tiers[r] = domain.SeedEntry{Name: name, Rarity: r, GrowTime: tier.GrowTime, YieldPoints: tier.BioPoints}
		}
		seeds = append(seeds, def)
	}
	return seeds, nil
}

func parsePlots(raw []byte) ([]domain.PlotEntry, error) {
	var file struct {
		Plots map[string]domain.PlotEntry `json:"plots"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	plots := make([]domain.PlotEntry, 0, len(file.Plots))
	for name, p := range file.Plots {
		p.Name = name
		plots = append(plots, p)
	}
	return plots, nil
}

func parseLamps(raw []byte) ([]domain.LampEntry, error) {
	var file struct {
		Lamps map[string]domain.LampEntry `json:"lamps"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	lamps := make([]domain.LampEntry, 0, len(file.Lamps))
	for name, l := range file.Lamps {
		l.Name = name
		lamps = append(lamps, l)
	}
	return lamps, nil
}

func parseAnimals(raw []byte) ([]domain.AnimalCategory, error) {
	if raw == nil {
		return nil, nil
	}
	var file struct {
		Animals map[string]map[string]json.RawMessage `json:"animals"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	categories := make([]domain.AnimalCategory, 0, len(file.Animals))
	for catName, fields := range file.Animals {
		cat := domain.AnimalCategory{Name: catName}
		for key, body := range fields {
			if key == keyIcon {
				if err := json.Unmarshal(body, &cat.Icon); err != nil {
					return nil, fmt.Errorf("category %q icon: %w", catName, err)
				}
				continue
			}
			if !bytes.HasPrefix(bytes.TrimSpace(body), []byte("{")) {
				continue
			}
			var animal domain.AnimalEntry
			if err := json.Unmarshal(body, &animal); err != nil {
				return nil, fmt.Errorf("animal %q: %w", key, err)
			}
			animal.Name, animal.Category = key, catName
			cat.Animals = append(cat.Animals, animal)
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

func parseProducts(raw []byte) ([]domain.ProductEntry, error) {
	if raw == nil {
		return nil, nil
	}
	var file struct {
		Products map[string]map[string]tierFields `json:"products"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	var products []domain.ProductEntry
	for productType, tiers := range file.Products {
		for rarityName, tier := range tiers {
			rarity, err := domain.ParseRarity(rarityName)
			if err != nil {
				return nil, fmt.Errorf(ErrFmtUnknownProductRarity, domain.ErrInvalidCatalog, productType, rarityName)
			}
			products = append(products, domain.ProductEntry{
				Type:      productType,
				Rarity:    rarity,
				GrowTime:  tier.GrowTime,
				BioPoints: tier.BioPoints,
			})
		}
	}
	return products, nil
}

func parseFood(raw []byte) ([]domain.FoodRecipe, error) {
	if raw == nil {
		return nil, nil
	}
	var file struct {
		Food map[string]domain.FoodRecipe `json:"food"`
	}
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	food := make([]domain.FoodRecipe, 0, len(file.Food))
	for category, recipe := range file.Food {
		recipe.Category = category
		food = append(food, recipe)
	}
	return food, nil
}

func parseHarvesters(raw []byte) ([]domain.HarvesterEntry, error) {
	if raw == nil {
		return nil, nil
	}
	var file map[string]map[string]domain.HarvesterEntry
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	harvesters := make([]domain.HarvesterEntry, 0, len(file[keyHarvesters]))
	for name, h := range file[keyHarvesters] {
		h.Name = name
		harvesters = append(harvesters, h)
	}
	return harvesters, nil
}
