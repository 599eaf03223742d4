// Package schemas embeds the JSON schemas for the catalog data files.
package schemas

import "embed"

// FS holds every *.schema.json in this directory.
//
//go:embed *.schema.json
var FS embed.FS

// Schema file names
const (
	Seeds   = "seeds.schema.json"
	Plots   = "plots.schema.json"
	Lamps   = "lamps.schema.json"
	Animals = "animals.schema.json"
	Profile = "profile.schema.json"
)
