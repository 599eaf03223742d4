package repository

import (
	"context"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// Profile defines the interface for farm profile persistence.
// Profiles are addressed by display name; implementations store them under
// domain.ProfileKey so names differing only by spaces and underscores collide.
type Profile interface {
	ListProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*domain.Profile, error)
	SaveProfile(ctx context.Context, profile *domain.Profile) error
	DeleteProfile(ctx context.Context, name string) error
	GetSettings(ctx context.Context) (*domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
