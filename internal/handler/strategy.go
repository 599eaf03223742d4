package handler

import (
	"net/http"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/logger"
	"github.com/osse101/PlotPlanner_Go/internal/planner"
)

// StrategyRequest is an inventory snapshot to plan for
type StrategyRequest struct {
	Seeds     map[string]int `json:"seeds"`
	Plots     map[string]int `json:"plots"`
	Lamps     map[string]int `json:"lamps"`
	Objective string         `json:"objective" validate:"omitempty,objective"`
	Excluded  []string       `json:"excluded_seeds" validate:"omitempty,dive,seedinstance"`
}

func (req StrategyRequest) inventory() domain.Inventory {
	inv := domain.NewInventory()
	for k, v := range req.Seeds {
		inv.Seeds[k] = v
	}
	for k, v := range req.Plots {
		inv.Plots[k] = v
	}
	for k, v := range req.Lamps {
		inv.Lamps[k] = v
	}
	if objective, err := domain.ParseObjective(req.Objective); err == nil {
		inv.Objective = objective
	}
	inv.Excluded = append([]string(nil), req.Excluded...)
	return inv
}

// HandleComputeStrategy plans an ad-hoc inventory without touching any profile
// @Summary Compute strategy
// @Description Assign seeds to plots and bind lamps for the posted inventory
// @Tags strategy
// @Accept json
// @Produce json
// @Param request body StrategyRequest true "Inventory snapshot"
// @Success 200 {object} domain.StrategyReport
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Item missing from the catalog"
// @Router /api/v1/strategy [post]
func HandleComputeStrategy(svc planner.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req StrategyRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Compute strategy"); err != nil {
			return
		}

		report, err := svc.Compute(r.Context(), req.inventory())
		if err != nil {
			respondServiceError(w, r, ErrMsgComputeStrategyFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgStrategyComputed,
			"objective", report.Result.Objective,
			"assignments", len(report.Result.Assignments))
		respondJSON(w, http.StatusOK, report)
	}
}
