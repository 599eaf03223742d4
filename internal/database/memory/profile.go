// Package memory provides an in-process repository.Profile used when no
// database is configured and by tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/repository"
)

// ProfileRepository keeps profiles as serialized JSON keyed by storage key,
// so callers never share maps with the store.
type ProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]storedProfile
	settings *domain.Settings
	now      func() time.Time
}

type storedProfile struct {
	data      []byte
	updatedAt time.Time
}

// NewProfileRepository creates an empty in-memory repository
func NewProfileRepository() repository.Profile {
	return newProfileRepository()
}

func newProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		profiles: make(map[string]storedProfile),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *ProfileRepository) ListProfiles(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.profiles))
	for key := range r.profiles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = domain.ProfileNameFromKey(key)
	}
	return names, nil
}

func (r *ProfileRepository) GetProfile(_ context.Context, name string) (*domain.Profile, error) {
	key := domain.ProfileKey(name)

	r.mu.RLock()
	stored, ok := r.profiles[key]
	r.mu.RUnlock()
	if !ok {
		return nil, domain.ErrProfileNotFound
	}

	profile := &domain.Profile{Name: domain.ProfileNameFromKey(key), UpdatedAt: stored.updatedAt}
	if err := json.Unmarshal(stored.data, &profile.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidProfileData, err)
	}
	return profile, nil
}

func (r *ProfileRepository) SaveProfile(_ context.Context, profile *domain.Profile) error {
	raw, err := json.Marshal(profile.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidProfileData, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	r.profiles[domain.ProfileKey(profile.Name)] = storedProfile{data: raw, updatedAt: now}
	profile.UpdatedAt = now
	return nil
}

func (r *ProfileRepository) DeleteProfile(_ context.Context, name string) error {
	key := domain.ProfileKey(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[key]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.profiles, key)
	if r.settings != nil && r.settings.LastFarm == name {
		r.settings.LastFarm = domain.DefaultProfileName
	}
	return nil
}

func (r *ProfileRepository) GetSettings(_ context.Context) (*domain.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.settings == nil {
		return nil, domain.ErrSettingsNotFound
	}
	s := *r.settings
	return &s, nil
}

func (r *ProfileRepository) SaveSettings(_ context.Context, settings domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = &settings
	return nil
}
