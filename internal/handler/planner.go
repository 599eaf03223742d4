package handler

import (
	"net/http"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/logger"
	"github.com/osse101/PlotPlanner_Go/internal/planner"
)

// SetQuantityRequest sets one owned quantity. Negative values are stored as zero.
type SetQuantityRequest struct {
	Kind     string `json:"kind" validate:"required,itemkind"`
	Key      string `json:"key" validate:"required,max=100"`
	Quantity int    `json:"quantity"`
}

// ToggleExclusionRequest names the seed instance to exclude or re-include
type ToggleExclusionRequest struct {
	SeedID string `json:"seed_id" validate:"required,seedinstance"`
}

// SetObjectiveRequest switches what the strategy maximises
type SetObjectiveRequest struct {
	Objective string `json:"objective" validate:"required,objective"`
}

// PlannerHandler serves strategy views and edits of a stored profile
type PlannerHandler struct {
	planner planner.Service
}

// NewPlannerHandler creates a new planner handler
func NewPlannerHandler(svc planner.Service) *PlannerHandler {
	return &PlannerHandler{planner: svc}
}

// HandleStrategy computes the strategy for a profile
// @Summary Profile strategy
// @Tags planner
// @Produce json
// @Param name path string true "Profile name"
// @Success 200 {object} domain.StrategyReport
// @Failure 422 {object} ErrorResponse "Item missing from the catalog"
// @Router /api/v1/profiles/{name}/strategy [get]
func (h *PlannerHandler) HandleStrategy(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}
	report, err := h.planner.ProfileReport(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, ErrMsgComputeStrategyFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// HandleSetQuantity sets an owned quantity and returns the new strategy
// @Summary Set quantity
// @Tags planner
// @Accept json
// @Produce json
// @Param name path string true "Profile name"
// @Param request body SetQuantityRequest true "Quantity"
// @Success 200 {object} domain.StrategyReport
// @Failure 400 {object} ValidationErrorResponse
// @Failure 422 {object} ErrorResponse "Item missing from the catalog"
// @Router /api/v1/profiles/{name}/quantity [post]
func (h *PlannerHandler) HandleSetQuantity(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}
	var req SetQuantityRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set quantity"); err != nil {
		return
	}
	logger.FromContext(r.Context()).Debug(LogMsgQuantityRequested,
		"profile", name, "kind", req.Kind, "key", req.Key, "quantity", req.Quantity)

	report, err := h.planner.SetQuantity(r.Context(), name, domain.ItemKind(req.Kind), req.Key, req.Quantity)
	if err != nil {
		respondServiceError(w, r, ErrMsgSetQuantityFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// HandleToggleExclusion excludes a seed instance from planting, or re-includes it
// @Summary Toggle seed exclusion
// @Tags planner
// @Accept json
// @Produce json
// @Param name path string true "Profile name"
// @Param request body ToggleExclusionRequest true "Seed instance"
// @Success 200 {object} domain.StrategyReport
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/profiles/{name}/exclusions [post]
func (h *PlannerHandler) HandleToggleExclusion(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}
	var req ToggleExclusionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Toggle exclusion"); err != nil {
		return
	}
	report, err := h.planner.ToggleExclusion(r.Context(), name, domain.SeedInstanceID(req.SeedID))
	if err != nil {
		respondServiceError(w, r, ErrMsgToggleExclusionFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// HandleSetObjective switches the profile's objective
// @Summary Set objective
// @Tags planner
// @Accept json
// @Produce json
// @Param name path string true "Profile name"
// @Param request body SetObjectiveRequest true "Objective"
// @Success 200 {object} domain.StrategyReport
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/profiles/{name}/objective [put]
func (h *PlannerHandler) HandleSetObjective(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}
	var req SetObjectiveRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set objective"); err != nil {
		return
	}
	report, err := h.planner.SetObjective(r.Context(), name, req.Objective)
	if err != nil {
		respondServiceError(w, r, ErrMsgSetObjectiveFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// HandleValue returns owned counts, worth and the naive production rate
// @Summary Inventory value
// @Tags planner
// @Produce json
// @Param name path string true "Profile name"
// @Success 200 {object} domain.Totals
// @Router /api/v1/profiles/{name}/value [get]
func (h *PlannerHandler) HandleValue(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}
	totals, err := h.planner.Value(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, ErrMsgValueFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, totals)
}

// HandleUpgrades plans merging a seed up through the rarities
// @Summary Seed upgrade plan
// @Tags planner
// @Produce json
// @Param name path string true "Profile name"
// @Param seed path string true "Seed name"
// @Success 200 {object} domain.UpgradePlan
// @Failure 422 {object} ErrorResponse "Seed missing from the catalog"
// @Router /api/v1/profiles/{name}/upgrades/{seed} [get]
func (h *PlannerHandler) HandleUpgrades(w http.ResponseWriter, r *http.Request) {
	name, ok := GetPathParam(r, w, "name")
	if !ok {
		return
	}
	seed, ok := GetPathParam(r, w, "seed")
	if !ok {
		return
	}
	plan, err := h.planner.Upgrades(r.Context(), name, seed)
	if err != nil {
		respondServiceError(w, r, ErrMsgUpgradesFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, plan)
}
