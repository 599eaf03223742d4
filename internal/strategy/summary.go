package strategy

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// Reporter projects strategy results into display-ready summaries.
type Reporter struct {
	printer *message.Printer
}

// NewReporter creates a reporter that formats numbers for English readers.
func NewReporter() *Reporter {
	return &Reporter{printer: message.NewPrinter(language.English)}
}

// Summarize converts a result into a SummaryView. Durations shown to users are
// rounded up to whole minutes; the underlying figures are left untouched.
func (r *Reporter) Summarize(result *domain.StrategyResult) domain.SummaryView {
	view := domain.SummaryView{
		Objective:         result.Objective,
		PlotsUsed:         fmt.Sprintf(usedOfFormat, result.UsedPlotCount, result.TotalPlotCount),
		SeedsUsed:         fmt.Sprintf(usedOfFormat, result.UsedSeedCount, result.TotalSeedCount),
		UsedPlotCount:     result.UsedPlotCount,
		TotalPlotCount:    result.TotalPlotCount,
		UsedSeedCount:     result.UsedSeedCount,
		TotalSeedCount:    result.TotalSeedCount,
		UnusedSeedCount:   len(result.Unused),
		ExcludedSeedCount: len(result.Excluded),
		TotalYield:        result.TotalYield,
		TotalYieldText:    r.printer.Sprintf(yieldFormat, result.TotalYield),
		TotalYieldRate:    result.TotalYieldRate,
		YieldRateText:     r.printer.Sprintf(yieldRateFormat, result.TotalYieldRate),
		Assignments:       make([]domain.AssignmentView, 0, len(result.Assignments)),
	}

	if result.Objective == domain.ObjectiveRate {
		view.Title = domain.RateTitle
		view.Description = domain.RateDescription
		view.CycleLabel = domain.RateCycleLabel
	} else {
		view.Title = domain.BatchTitle
		view.Description = domain.BatchDescription
		view.CycleLabel = domain.BatchCycleLabel
	}

	if len(result.Assignments) > 0 {
		view.CycleMinutes = CeilMinutes(result.CycleTime)
		view.CycleText = FormatDuration(result.CycleTime)
	}

	for _, a := range result.Assignments {
		row := domain.AssignmentView{
			SeedID:        a.SeedID,
			SeedName:      a.SeedName,
			Rarity:        a.Rarity,
			PlotKind:      a.PlotKind,
			Cycles:        a.Cycles,
			YieldText:     r.printer.Sprintf("%.0f", a.EffectiveYield),
			YieldRateText: r.printer.Sprintf("%.1f", a.YieldRate),
			TimeMinutes:   CeilMinutes(a.AdjustedGrowTime),
			TimeText:      FormatDuration(a.AdjustedGrowTime),
		}
		if a.HasLamp() {
			row.LampPercent = int(math.Round(a.AppliedTimeReduction * 100))
			row.BaseTimeText = FormatDuration(a.GrowTime)
		}
		view.Assignments = append(view.Assignments, row)
	}
	return view
}

// Report computes nothing new; it pairs a result with its summary.
func (r *Reporter) Report(result *domain.StrategyResult) *domain.StrategyReport {
	return &domain.StrategyReport{Result: result, Summary: r.Summarize(result)}
}

// CeilMinutes rounds a duration in minutes up to a whole minute.
func CeilMinutes(minutes float64) int {
	return int(math.Ceil(minutes))
}

// FormatDuration renders minutes as "45m", "2h" or "2h 5m", rounding up first.
func FormatDuration(minutes float64) string {
	rounded := CeilMinutes(minutes)
	if rounded < minutesPerHour {
		return fmt.Sprintf("%dm", rounded)
	}
	hours, rest := rounded/minutesPerHour, rounded%minutesPerHour
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, rest)
}
