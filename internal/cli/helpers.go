package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osse101/PlotPlanner_Go/internal/catalog"
	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/logger"
	"github.com/osse101/PlotPlanner_Go/internal/planner"
	"github.com/osse101/PlotPlanner_Go/internal/profile"
)

func initLogging(w io.Writer, level string) {
	cfg := logger.NewConfig(level, "text", "planner-cli", "", "cli", false)
	logger.InitLoggerWithWriter(cfg, w)
}

// loadCatalog reads the data directory. The CLI has no fallback: a missing
// or invalid directory is an error.
func loadCatalog(dir string) (*catalog.Store, error) {
	cat, err := catalog.NewLoader().LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", dir, err)
	}
	return catalog.NewStaticStore(cat), nil
}

// fileProfile serves one exported profile document to the planner. It is
// read-only: the CLI never writes the file back.
type fileProfile struct {
	profile domain.Profile
}

func readProfileFile(path string) (*fileProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	data, err := profile.NewDecoder().Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &fileProfile{profile: domain.Profile{Name: profileNameFromPath(path), Data: data}}, nil
}

// profileNameFromPath turns "exports/farm_My_Farm.json" into "My Farm"
func profileNameFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return domain.ProfileNameFromKey(base)
}

func (f *fileProfile) Load(_ context.Context, _ string) (*domain.Profile, error) {
	p := f.profile.Clone()
	return &p, nil
}

func (f *fileProfile) ScheduleSave(_ context.Context, _ *domain.Profile) error {
	return nil
}

// openPlanner builds a planner over the data directory and one profile file
func openPlanner(profilePath string) (planner.Service, *fileProfile, error) {
	if profilePath == "" {
		return nil, nil, fmt.Errorf("--profile flag is required")
	}
	catalogs, err := loadCatalog(dataDir)
	if err != nil {
		return nil, nil, err
	}
	prof, err := readProfileFile(profilePath)
	if err != nil {
		return nil, nil, err
	}
	svc := planner.NewService(catalogs, prof, planner.Options{})
	return svc, prof, nil
}
