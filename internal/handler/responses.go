package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and sends the mapped response.
// Catalog lookups that missed carry their "did you mean" suggestion.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "operation", opName, "error", err)
	} else {
		log.Warn(LogMsgServiceError, "operation", opName, "error", err)
	}

	resp := ErrorResponse{Error: msg}
	var catErr *domain.CatalogError
	if errors.As(err, &catErr) {
		resp.Suggestion = catErr.Suggestion
	}
	respondJSON(w, status, resp)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."

	// Catalog messages
	ErrMsgCatalogEntryNotFoundError = "Item is not in the catalog"
	ErrMsgInvalidCatalogError       = "Catalog data is invalid"

	// Inventory messages
	ErrMsgInvalidObjectiveError = "Objective must be rate or batch"
	ErrMsgInvalidRarityError    = "Unknown rarity"
	ErrMsgInvalidSeedKeyError   = "Seed must be written as Name_Rarity"
	ErrMsgInvalidItemKindError  = "Kind must be seed, plot, lamp or animal"
	ErrMsgDuplicateSeedError    = "The same seed is listed twice"

	// Profile messages
	ErrMsgProfileNotFoundError      = "Profile not found"
	ErrMsgDefaultProfileError       = "The Default profile cannot be deleted"
	ErrMsgInvalidProfileNameError   = "Invalid profile name"
	ErrMsgNoProfileDataError        = "No profile data"
	ErrMsgInvalidProfileDataError   = "Profile document is not valid"
	ErrMsgRequestTooLargeError      = "Request body too large"
	ErrMsgInvalidInputError         = "Invalid input"
	ErrMsgCatalogConfigurationError = "Catalog entry has invalid attributes"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge, ErrMsgRequestTooLargeError
	case errors.Is(err, domain.ErrCatalogEntryNotFound):
		return http.StatusUnprocessableEntity, ErrMsgCatalogEntryNotFoundError
	case errors.Is(err, domain.ErrInvalidGrowTime),
		errors.Is(err, domain.ErrInvalidLampReduction),
		errors.Is(err, domain.ErrInvalidMultiplier):
		return http.StatusUnprocessableEntity, ErrMsgCatalogConfigurationError
	case errors.Is(err, domain.ErrDuplicateSeedInstance):
		return http.StatusBadRequest, ErrMsgDuplicateSeedError
	case errors.Is(err, domain.ErrInvalidObjective):
		return http.StatusBadRequest, ErrMsgInvalidObjectiveError
	case errors.Is(err, domain.ErrInvalidRarity):
		return http.StatusBadRequest, ErrMsgInvalidRarityError
	case errors.Is(err, domain.ErrInvalidSeedKey):
		return http.StatusBadRequest, ErrMsgInvalidSeedKeyError
	case errors.Is(err, domain.ErrInvalidItemKind):
		return http.StatusBadRequest, ErrMsgInvalidItemKindError
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFoundError
	case errors.Is(err, domain.ErrDefaultProfileProtected):
		return http.StatusConflict, ErrMsgDefaultProfileError
	case errors.Is(err, domain.ErrInvalidProfileName):
		return http.StatusBadRequest, ErrMsgInvalidProfileNameError
	case errors.Is(err, domain.ErrNoProfileData):
		return http.StatusNotFound, ErrMsgNoProfileDataError
	case errors.Is(err, domain.ErrInvalidProfileData):
		return http.StatusBadRequest, ErrMsgInvalidProfileDataError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidCatalog):
		return http.StatusInternalServerError, ErrMsgInvalidCatalogError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// Default to a generic message so internal details never leak
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
