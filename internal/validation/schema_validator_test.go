package validation

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlotPlanner_Go/configs/schemas"
)

func testSchemas() fstest.MapFS {
	return fstest.MapFS{
		"person.schema.json": {Data: []byte(`{
			"$schema": "http://json-schema.org/draft-07/schema#",
			"type": "object",
			"properties": {
				"name": {"type": "string"},
				"age": {"type": "integer", "minimum": 0}
			},
			"required": ["name"]
		}`)},
		"status.schema.json": {Data: []byte(`{
			"$schema": "http://json-schema.org/draft-07/schema#",
			"type": "object",
			"properties": {
				"status": {"type": "string", "enum": ["active", "inactive"]}
			},
			"required": ["status"]
		}`)},
	}
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidator(testSchemas())

	tests := []struct {
		name     string
		data     string
		schema   string
		errorMsg string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`, schema: "person.schema.json"},
		{name: "optional field omitted", data: `{"name": "Jane"}`, schema: "person.schema.json"},
		{name: "missing required field", data: `{"age": 25}`, schema: "person.schema.json", errorMsg: "required"},
		{name: "wrong type", data: `{"name": "John", "age": "thirty"}`, schema: "person.schema.json", errorMsg: "/age"},
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, schema: "person.schema.json", errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, schema: "person.schema.json", errorMsg: "parse JSON"},
		{name: "valid enum", data: `{"status": "active"}`, schema: "status.schema.json"},
		{name: "invalid enum", data: `{"status": "paused"}`, schema: "status.schema.json", errorMsg: "enum"},
		{name: "unknown schema", data: `{}`, schema: "missing.schema.json", errorMsg: "failed to load schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), tt.schema)
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_ValidateDocument(t *testing.T) {
	v := NewSchemaValidator(testSchemas())

	assert.NoError(t, v.ValidateDocument(map[string]any{"name": "Ann", "age": 3.0}, "person.schema.json"))
	assert.Error(t, v.ValidateDocument(map[string]any{"age": 3.0}, "person.schema.json"))
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator(testSchemas()).(*validator)

	require.NoError(t, v.ValidateBytes([]byte(`{"name": "a"}`), "person.schema.json"))
	require.NoError(t, v.ValidateBytes([]byte(`{"name": "b"}`), "person.schema.json"))

	assert.Len(t, v.schemas, 1)
}

func TestSchemaValidator_EmbeddedCatalogSchemas(t *testing.T) {
	v := NewSchemaValidator(schemas.FS)

	tests := []struct {
		name    string
		schema  string
		data    string
		wantErr bool
	}{
		{
			name:   "seed file",
			schema: schemas.Seeds,
			data: `{"seeds": {"Strawberry": {
				"Common": {"grow_time": 2, "bio_points": 1},
				"Uncommon": {"grow_time": 2, "bio_points": 2},
				"Rare": {"grow_time": 2, "bio_points": 3},
				"Epic": {"grow_time": 2, "bio_points": 7},
				"Legendary": {"grow_time": 2, "bio_points": 13},
				"seasonal": false, "icon": "s"}}}`,
		},
		{
			name:    "seed missing a rarity",
			schema:  schemas.Seeds,
			data:    `{"seeds": {"Strawberry": {"Common": {"grow_time": 2, "bio_points": 1}}}}`,
			wantErr: true,
		},
		{
			name:    "seed with zero grow time",
			schema:  schemas.Seeds,
			data:    `{"seeds": {"X": {"Common": {"grow_time": 0, "bio_points": 1}, "Uncommon": {"grow_time": 1, "bio_points": 1}, "Rare": {"grow_time": 1, "bio_points": 1}, "Epic": {"grow_time": 1, "bio_points": 1}, "Legendary": {"grow_time": 1, "bio_points": 1}}}}`,
			wantErr: true,
		},
		{name: "plot file", schema: schemas.Plots, data: `{"plots": {"Cardboard": {"multiplier": 1}}}`},
		{name: "plot multiplier not a power of two", schema: schemas.Plots, data: `{"plots": {"Odd": {"multiplier": 3}}}`, wantErr: true},
		{name: "lamp file", schema: schemas.Lamps, data: `{"lamps": {"Common": {"time_reduce": 3, "chance": 3}}}`},
		{name: "lamp removes all time", schema: schemas.Lamps, data: `{"lamps": {"Sun": {"time_reduce": 100}}}`, wantErr: true},
		{name: "animal file", schema: schemas.Animals, data: `{"animals": {"Birds": {"icon": "b", "Chicken": {"grow_time": 60, "products": 1}}}}`},
		{name: "profile export", schema: schemas.Profile, data: `{"seeds": {"Strawberry_Common": 2}, "strategy_var": "bp_per_minute", "excluded_seeds": []}`},
		{name: "profile unknown strategy", schema: schemas.Profile, data: `{"strategy_var": "fastest"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), tt.schema)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
