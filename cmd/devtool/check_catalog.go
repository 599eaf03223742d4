package main

import (
	"fmt"

	"github.com/osse101/PlotPlanner_Go/internal/catalog"
	"github.com/osse101/PlotPlanner_Go/internal/config"
)

type CheckCatalogCommand struct{}

func (c *CheckCatalogCommand) Name() string {
	return "check-catalog"
}

func (c *CheckCatalogCommand) Description() string {
	return "Validate the catalog data files [dir]"
}

func (c *CheckCatalogCommand) Run(args []string) error {
	dir := config.DefaultDataDir
	if len(args) > 0 {
		dir = args[0]
	}
	PrintHeader(fmt.Sprintf("Validating catalog in %s...", dir))

	cat, err := catalog.NewLoader().LoadDir(dir)
	if err != nil {
		return fmt.Errorf("catalog is invalid: %w", err)
	}

	PrintInfo("Seeds:   %d", len(cat.SeedNames()))
	PrintInfo("Plots:   %d", len(cat.PlotNames()))
	PrintInfo("Lamps:   %d", len(cat.LampNames()))
	PrintInfo("Animals: %d", len(cat.AnimalNames()))
	PrintInfo("Digest:  %s", cat.Digest())
	PrintSuccess("Catalog OK")
	return nil
}
