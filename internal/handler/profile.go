package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/logger"
	"github.com/osse101/PlotPlanner_Go/internal/profile"
)

// ProfileListResponse lists stored profile names, Default first
type ProfileListResponse struct {
	Profiles []string `json:"profiles"`
}

// SettingsRequest updates the planner-wide preferences
type SettingsRequest struct {
	LastFarm    string `json:"last_farm" validate:"max=100"`
	SortVar     string `json:"sort_var" validate:"max=50"`
	StrategyVar string `json:"strategy_var" validate:"omitempty,objective"`
}

// ProfileHandler serves farm profile storage
type ProfileHandler struct {
	profiles profile.Service
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles profile.Service) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// HandleList lists profile names
// @Summary List profiles
// @Tags profiles
// @Produce json
// @Success 200 {object} ProfileListResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/profiles [get]
func (h *ProfileHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	names, err := h.profiles.List(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgListProfilesFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, ProfileListResponse{Profiles: names})
}

// HandleGet loads a profile. Unsaved names load as an empty farm.
// @Summary Get profile
// @Tags profiles
// @Produce json
// @Param name path string true "Profile name"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{name} [get]
func (h *ProfileHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}
	p, err := h.profiles.Load(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, ErrMsgLoadProfileFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleSave replaces a profile with the posted document and writes it now
// @Summary Save profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param name path string true "Profile name"
// @Param request body domain.ProfileData true "Profile document"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{name} [put]
func (h *ProfileHandler) HandleSave(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}
	var data domain.ProfileData
	if err := DecodeAndValidateRequest(r, w, &data, "Save profile"); err != nil {
		return
	}
	if data.StrategyVar != "" {
		objective, err := domain.ParseObjective(data.StrategyVar)
		if err != nil {
			respondServiceError(w, r, ErrMsgSaveProfileFailed, err)
			return
		}
		data.StrategyVar = objective.Legacy()
	}

	p := &domain.Profile{Name: name, Data: data}
	if err := h.profiles.Save(r.Context(), p); err != nil {
		respondServiceError(w, r, ErrMsgSaveProfileFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgProfileSavedSuccess, Data: p})
}

// HandleDelete removes a profile
// @Summary Delete profile
// @Tags profiles
// @Produce json
// @Param name path string true "Profile name"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Default profile"
// @Router /api/v1/profiles/{name} [delete]
func (h *ProfileHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}
	if err := h.profiles.Delete(r.Context(), name); err != nil {
		respondServiceError(w, r, ErrMsgDeleteProfileFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProfileDeletedSuccess})
}

// HandleExport downloads the stored profile document
// @Summary Export profile
// @Tags profiles
// @Produce json
// @Param name path string true "Profile name"
// @Success 200 {object} domain.ProfileData
// @Failure 404 {object} ErrorResponse "Nothing stored"
// @Router /api/v1/profiles/{name}/export [get]
func (h *ProfileHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}
	raw, err := h.profiles.Export(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, ErrMsgExportProfileFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgProfileExported, "profile", name, "bytes", len(raw))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", domain.ProfileKey(name)+".json"))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// HandleImport stores an exported JSON or YAML document under name
// @Summary Import profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param name path string true "Profile name to store under"
// @Param request body domain.ProfileData true "Exported profile document"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /api/v1/profiles/{name}/import [post]
func (h *ProfileHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		respondServiceError(w, r, ErrMsgReadImportFailed, err)
		return
	}

	p, err := h.profiles.Import(r.Context(), name, raw)
	if err != nil {
		respondServiceError(w, r, ErrMsgImportProfileFailed, err)
		return
	}
	respondJSON(w, http.StatusCreated, DataResponse{Message: MsgProfileImportedSuccess, Data: p})
}

// HandleGetSettings returns the planner-wide preferences
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} domain.Settings
// @Router /api/v1/settings [get]
func (h *ProfileHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.profiles.GetSettings(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetSettingsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, settings)
}

// HandleSaveSettings stores the planner-wide preferences
// @Summary Save settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body SettingsRequest true "Settings"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/settings [put]
func (h *ProfileHandler) HandleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Save settings"); err != nil {
		return
	}
	saved, err := h.profiles.SaveSettings(r.Context(), domain.Settings{
		LastFarm:    req.LastFarm,
		SortVar:     req.SortVar,
		StrategyVar: req.StrategyVar,
	})
	if err != nil {
		respondServiceError(w, r, ErrMsgSaveSettingsFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, DataResponse{Message: MsgSettingsSavedSuccess, Data: saved})
}
