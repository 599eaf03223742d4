package profile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/osse101/PlotPlanner_Go/internal/catalog"
	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/logger"
	"github.com/osse101/PlotPlanner_Go/internal/metrics"
	"github.com/osse101/PlotPlanner_Go/internal/repository"
)

// Service defines the interface for farm profile operations
type Service interface {
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, name string) (*domain.Profile, error)
	Save(ctx context.Context, profile *domain.Profile) error
	ScheduleSave(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, name string) error
	Export(ctx context.Context, name string) ([]byte, error)
	Import(ctx context.Context, name string, raw []byte) (*domain.Profile, error)
	GetSettings(ctx context.Context) (*domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) (*domain.Settings, error)
	Flush(ctx context.Context) error
}

// CatalogSource yields the catalog currently in effect
type CatalogSource interface {
	Current() *catalog.Catalog
}

// Autosaver debounces and performs profile writes
type Autosaver interface {
	Schedule(ctx context.Context, profile domain.Profile)
	SaveNow(ctx context.Context, profile domain.Profile, trigger string) error
	PendingProfile(name string) (domain.Profile, bool)
	Cancel(name string)
	Flush(ctx context.Context) error
}

type service struct {
	repo      repository.Profile
	catalogs  CatalogSource
	autosaver Autosaver
	decoder   *Decoder
}

// NewService creates a new profile service
func NewService(repo repository.Profile, catalogs CatalogSource, autosaver Autosaver) Service {
	return &service{
		repo:      repo,
		catalogs:  catalogs,
		autosaver: autosaver,
		decoder:   NewDecoder(),
	}
}

// ValidateName trims name and rejects names that cannot be stored
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf(ErrFmtNameEmpty, domain.ErrInvalidProfileName)
	}
	if len(name) > MaxProfileNameLength {
		return "", fmt.Errorf(ErrFmtNameTooLong, domain.ErrInvalidProfileName, MaxProfileNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) || r == '/' || r == '\\' {
			return "", fmt.Errorf(ErrFmtNameBadChars, domain.ErrInvalidProfileName, name)
		}
	}
	return name, nil
}

func isDefault(name string) bool {
	return domain.ProfileKey(name) == domain.ProfileKey(domain.DefaultProfileName)
}

// List returns the default profile first, then every other stored profile by name
func (s *service) List(ctx context.Context) ([]string, error) {
	stored, err := s.repo.ListProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}

	names := []string{domain.DefaultProfileName}
	others := make([]string, 0, len(stored))
	for _, name := range stored {
		if !isDefault(name) {
			others = append(others, name)
		}
	}
	sort.Strings(others)
	return append(names, others...), nil
}

// Load returns the named profile with a zero entry for every catalog item.
// A profile that was never saved loads as an empty farm.
func (s *service) Load(ctx context.Context, name string) (*domain.Profile, error) {
	log := logger.FromContext(ctx)
	name, err := ValidateName(name)
	if err != nil {
		return nil, err
	}

	stored, err := s.current(ctx, name)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		log.Debug(LogMsgProfileCreated, "profile", name)
		stored = &domain.Profile{Name: name}
	case err != nil:
		return nil, err
	}

	profile := s.withCatalogDefaults(*stored)
	log.Debug(LogMsgProfileLoaded, "profile", profile.Name)
	return &profile, nil
}

// current prefers an unsaved snapshot over the stored copy
func (s *service) current(ctx context.Context, name string) (*domain.Profile, error) {
	if pending, ok := s.autosaver.PendingProfile(name); ok {
		return &pending, nil
	}
	stored, err := s.repo.GetProfile(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	return stored, nil
}

func (s *service) withCatalogDefaults(stored domain.Profile) domain.Profile {
	base := s.catalogs.Current().EmptyInventory()
	out := stored.Clone()
	out.Data.Seeds = overlay(base.Seeds, domain.CanonicalSeedCounts(stored.Data.Seeds))
	out.Data.Plots = overlay(base.Plots, stored.Data.Plots)
	out.Data.Lamps = overlay(base.Lamps, stored.Data.Lamps)
	out.Data.Animals = overlay(base.Animals, stored.Data.Animals)
	out.Data.ExcludedSeeds = domain.CanonicalExclusions(out.Data.ExcludedSeeds)
	if out.Data.ExcludedSeeds == nil {
		out.Data.ExcludedSeeds = []string{}
	}
	if out.Data.SortVar == "" {
		out.Data.SortVar = domain.DefaultSortVar
	}
	objective, err := domain.ParseObjective(out.Data.StrategyVar)
	if err != nil {
		objective = domain.DefaultObjective
	}
	out.Data.StrategyVar = objective.Legacy()
	return out
}

// overlay copies stored values over the zeroed base; unknown keys are kept
func overlay(base, stored map[string]int) map[string]int {
	for k, v := range stored {
		base[k] = v
	}
	return base
}

// Save writes the profile now and remembers it as the last opened farm
func (s *service) Save(ctx context.Context, profile *domain.Profile) error {
	name, err := ValidateName(profile.Name)
	if err != nil {
		return err
	}
	profile.Name = name

	if err := s.autosaver.SaveNow(ctx, *profile, metrics.TriggerExplicit); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	s.rememberLastFarm(ctx, profile)
	logger.FromContext(ctx).Info(LogMsgProfileSaved, "profile", name)
	return nil
}

// ScheduleSave queues a debounced write of the profile
func (s *service) ScheduleSave(ctx context.Context, profile *domain.Profile) error {
	name, err := ValidateName(profile.Name)
	if err != nil {
		return err
	}
	profile.Name = name
	s.autosaver.Schedule(ctx, *profile)
	return nil
}

func (s *service) rememberLastFarm(ctx context.Context, profile *domain.Profile) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgFailedToUpdateSettings, "error", err)
		return
	}
	settings.LastFarm = profile.Name
	if profile.Data.SortVar != "" {
		settings.SortVar = profile.Data.SortVar
	}
	if profile.Data.StrategyVar != "" {
		settings.StrategyVar = profile.Data.StrategyVar
	}
	if err := s.repo.SaveSettings(ctx, *settings); err != nil {
		logger.FromContext(ctx).Warn(LogMsgFailedToUpdateSettings, "error", err)
	}
}

// Delete removes a stored profile. The default profile cannot be deleted.
func (s *service) Delete(ctx context.Context, name string) error {
	name, err := ValidateName(name)
	if err != nil {
		return err
	}
	if isDefault(name) {
		return domain.ErrDefaultProfileProtected
	}

	s.autosaver.Cancel(name)
	if err := s.repo.DeleteProfile(ctx, name); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	logger.FromContext(ctx).Info(LogMsgProfileDeleted, "profile", name)
	return nil
}

// Export returns the profile in the export format. It fails with
// domain.ErrNoProfileData when nothing was ever saved under name.
func (s *service) Export(ctx context.Context, name string) ([]byte, error) {
	name, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	stored, err := s.current(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil, domain.ErrNoProfileData
		}
		return nil, err
	}
	return Encode(stored.Data)
}

// Import parses an exported document and stores it under name, replacing
// any profile already there
func (s *service) Import(ctx context.Context, name string, raw []byte) (*domain.Profile, error) {
	name, err := ValidateName(name)
	if err != nil {
		return nil, err
	}
	data, err := s.decoder.Decode(raw)
	if err != nil {
		return nil, err
	}

	profile := domain.Profile{Name: name, Data: data}
	if objective, err := domain.ParseObjective(data.StrategyVar); err == nil {
		profile.Data.StrategyVar = objective.Legacy()
	}
	if err := s.autosaver.SaveNow(ctx, profile, metrics.TriggerImport); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}

	logger.FromContext(ctx).Info(LogMsgProfileImported, "profile", name)
	loaded := s.withCatalogDefaults(profile)
	return &loaded, nil
}

// GetSettings returns the stored settings or the first-launch defaults
func (s *service) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			defaults := domain.DefaultSettings()
			return &defaults, nil
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	return settings, nil
}

// SaveSettings normalises and stores the settings
func (s *service) SaveSettings(ctx context.Context, settings domain.Settings) (*domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if strings.TrimSpace(settings.LastFarm) == "" {
		settings.LastFarm = defaults.LastFarm
	}
	name, err := ValidateName(settings.LastFarm)
	if err != nil {
		return nil, err
	}
	settings.LastFarm = name
	if settings.SortVar == "" {
		settings.SortVar = defaults.SortVar
	}
	if settings.StrategyVar == "" {
		settings.StrategyVar = defaults.StrategyVar
	}
	objective, err := domain.ParseObjective(settings.StrategyVar)
	if err != nil {
		return nil, err
	}
	settings.StrategyVar = objective.Legacy()

	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDatabaseError, err)
	}
	return &settings, nil
}

// Flush writes every pending snapshot
func (s *service) Flush(ctx context.Context) error {
	return s.autosaver.Flush(ctx)
}
