package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgCatalogEntryNotFound = "catalog entry not found"
	ErrMsgInvalidGrowTime      = "grow time must be positive"
	ErrMsgInvalidLampReduction = "lamp reduction must be in [0, 1)"
	ErrMsgInvalidMultiplier    = "plot multiplier must be positive"
	ErrMsgInvalidCatalog       = "invalid catalog data"

	// Inventory errors
	ErrMsgDuplicateSeedInstance = "duplicate seed instance id"
	ErrMsgInvalidObjective      = "invalid objective"
	ErrMsgInvalidRarity         = "invalid rarity"
	ErrMsgInvalidSeedKey        = "invalid seed key"
	ErrMsgInvalidItemKind       = "invalid item kind"
	ErrMsgInvalidQuantity       = "quantity"

	// Profile errors
	ErrMsgProfileNotFound           = "profile not found"
	ErrMsgDefaultProfileProtected   = "default profile cannot be deleted"
	ErrMsgInvalidProfileName        = "invalid profile name"
	ErrMsgNoProfileData             = "no data to export"
	ErrMsgInvalidProfileData        = "invalid profile data"
	ErrMsgSettingsNotFound          = "settings not found"
	ErrMsgProfileStorageUnavailable = "profile storage unavailable"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Catalog errors
	ErrCatalogEntryNotFound = errors.New(ErrMsgCatalogEntryNotFound)
	ErrInvalidGrowTime      = errors.New(ErrMsgInvalidGrowTime)
	ErrInvalidLampReduction = errors.New(ErrMsgInvalidLampReduction)
	ErrInvalidMultiplier    = errors.New(ErrMsgInvalidMultiplier)
	ErrInvalidCatalog       = errors.New(ErrMsgInvalidCatalog)

	// Inventory errors
	ErrDuplicateSeedInstance = errors.New(ErrMsgDuplicateSeedInstance)
	ErrInvalidObjective      = errors.New(ErrMsgInvalidObjective)
	ErrInvalidRarity         = errors.New(ErrMsgInvalidRarity)
	ErrInvalidSeedKey        = errors.New(ErrMsgInvalidSeedKey)
	ErrInvalidItemKind       = errors.New(ErrMsgInvalidItemKind)

	// Profile errors
	ErrProfileNotFound         = errors.New(ErrMsgProfileNotFound)
	ErrDefaultProfileProtected = errors.New(ErrMsgDefaultProfileProtected)
	ErrInvalidProfileName      = errors.New(ErrMsgInvalidProfileName)
	ErrNoProfileData           = errors.New(ErrMsgNoProfileData)
	ErrInvalidProfileData      = errors.New(ErrMsgInvalidProfileData)
	ErrSettingsNotFound        = errors.New(ErrMsgSettingsNotFound)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// CatalogError reports an inventory key with no usable catalog entry.
// Suggestion holds the closest known name, if any.
type CatalogError struct {
	Kind       ItemKind
	Key        string
	Suggestion string
	Err        error
}

func (e *CatalogError) Error() string {
	msg := fmt.Sprintf("%s: %s %q", e.Err, e.Kind, e.Key)
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}
