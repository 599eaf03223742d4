package catalog

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

func TestLoadDir_Valid(t *testing.T) {
	cat, err := NewLoader().LoadDir("testdata/valid")
	require.NoError(t, err)

	assert.Equal(t, []string{"Pumpkin", "Strawberry"}, cat.SeedNames())
	assert.Equal(t, []string{"Cardboard", "Wooden", "Stone"}, cat.PlotNames())
	assert.Equal(t, []string{"Common", "Rare"}, cat.LampNames())
	assert.Equal(t, []string{"Chick", "Hen", "Golden Hen"}, cat.AnimalNames())

	pumpkin, err := cat.Seed("Pumpkin")
	require.NoError(t, err)
	assert.True(t, pumpkin.Seasonal)
	assert.Equal(t, 250.0, pumpkin.Price)
	assert.Equal(t, 320.0, pumpkin.Tiers[domain.RarityLegendary].YieldPoints)
	assert.Equal(t, 20.0, pumpkin.Tiers[domain.RarityLegendary].GrowTime)

	wooden, err := cat.PlotEntry("Wooden")
	require.NoError(t, err)
	assert.Equal(t, 2, wooden.Multiplier)
	assert.Equal(t, 5.0, wooden.USDT)

	hen, err := cat.AnimalEntry("Hen")
	require.NoError(t, err)
	assert.Equal(t, "Birds", hen.Category)
	assert.Equal(t, "eggs", hen.Produces)

	categories := cat.AnimalCategories()
	require.Len(t, categories, 1)
	assert.Equal(t, "🐔", categories[0].Icon)

	assert.Len(t, cat.Products(), 2)
	food, ok := cat.Food("Birds")
	require.True(t, ok)
	assert.Equal(t, 2, food.Yield)
	assert.Len(t, food.Recipe, 2)
	assert.Len(t, cat.Harvesters(), 2)
	assert.NotEmpty(t, cat.Digest())
}

func TestLoadDir_DigestStable(t *testing.T) {
	first, err := NewLoader().LoadDir("testdata/valid")
	require.NoError(t, err)
	second, err := NewLoader().LoadDir("testdata/valid")
	require.NoError(t, err)

	assert.Equal(t, first.Digest(), second.Digest())
}

func TestLoadDir_YAML(t *testing.T) {
	cat, err := NewLoader().LoadDir("testdata/yaml")
	require.NoError(t, err)

	entry, err := cat.SeedEntry("Carrot", domain.RarityEpic)
	require.NoError(t, err)
	assert.Equal(t, 16.0, entry.YieldPoints)
	assert.Equal(t, []string{"Cardboard"}, cat.PlotNames())
	assert.Empty(t, cat.AnimalNames())
}

func TestLoadDir_SchemaRejectsZeroGrowTime(t *testing.T) {
	_, err := NewLoader().LoadDir("testdata/badgrow")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	assert.Contains(t, err.Error(), "seed_data.json")
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	fsys := fstest.MapFS{
		"seed_data.json": {Data: []byte(`{"seeds": {"A": {
			"Common": {"grow_time": 1, "bio_points": 1},
			"Uncommon": {"grow_time": 1, "bio_points": 1},
			"Rare": {"grow_time": 1, "bio_points": 1},
			"Epic": {"grow_time": 1, "bio_points": 1},
			"Legendary": {"grow_time": 1, "bio_points": 1}}}}`)},
	}

	_, err := NewLoader().Load(fsys)

	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "plot_data.json")
}

func TestLoad_MalformedJSON(t *testing.T) {
	fsys := fstest.MapFS{"seed_data.json": {Data: []byte(`{"seeds": `)}}

	_, err := NewLoader().Load(fsys)

	assert.Error(t, err)
}

func TestLoad_UnknownProductRarity(t *testing.T) {
	fsys := fstest.MapFS{
		"seed_data.yaml":    {Data: []byte("seeds:\n  A:\n    Common: {grow_time: 1, bio_points: 1}\n    Uncommon: {grow_time: 1, bio_points: 1}\n    Rare: {grow_time: 1, bio_points: 1}\n    Epic: {grow_time: 1, bio_points: 1}\n    Legendary: {grow_time: 1, bio_points: 1}\n")},
		"plot_data.yaml":    {Data: []byte("plots:\n  P: {multiplier: 1}\n")},
		"lamp_data.yaml":    {Data: []byte("lamps: {}\n")},
		"product_data.json": {Data: []byte(`{"products": {"milk": {"Mythic": {"grow_time": 1, "bio_points": 1}}}}`)},
	}

	_, err := NewLoader().Load(fsys)

	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}
