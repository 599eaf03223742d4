package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

var (
	printer = message.NewPrinter(language.English)
	title   = cases.Title(language.English)
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printReport(w io.Writer, name string, report *domain.StrategyReport) error {
	s := report.Summary
	fmt.Fprintf(w, "\n=== %s: %s ===\n", name, s.Title)
	fmt.Fprintf(w, "%s\n\n", s.Description)
	fmt.Fprintf(w, "Plots used:  %s\n", s.PlotsUsed)
	fmt.Fprintf(w, "Seeds used:  %s\n", s.SeedsUsed)
	fmt.Fprintf(w, "Total yield: %s\n", s.TotalYieldText)
	fmt.Fprintf(w, "Yield rate:  %s\n", s.YieldRateText)
	if s.CycleText != "" {
		fmt.Fprintf(w, "%s: %s\n", s.CycleLabel, s.CycleText)
	}

	if len(s.Assignments) == 0 {
		fmt.Fprintln(w, "\nNothing to plant.")
		return nil
	}

	fmt.Fprintln(w)
	tw := newTable(w)
	fmt.Fprintln(tw, "SEED\tRARITY\tPLOT\tCYCLES\tYIELD\tRATE\tTIME\tLAMP")
	for _, a := range s.Assignments {
		lamp := "-"
		if a.LampPercent > 0 {
			lamp = fmt.Sprintf("%d%%", a.LampPercent)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t%s\n",
			a.SeedName, a.Rarity, a.PlotKind, a.Cycles, a.YieldText, a.YieldRateText, a.TimeText, lamp)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if report.Result != nil && len(report.Result.StaleExclusions) > 0 {
		fmt.Fprintf(w, "\nExcluded seeds no longer owned: %v\n", report.Result.StaleExclusions)
	}
	return nil
}

func printTotals(w io.Writer, name string, t *domain.Totals) {
	fmt.Fprintf(w, "\n=== %s ===\n", name)
	printer.Fprintf(w, "Seeds:       %d\n", t.Seeds)
	printer.Fprintf(w, "Plots:       %d\n", t.Plots)
	printer.Fprintf(w, "Lamps:       %d\n", t.Lamps)
	printer.Fprintf(w, "Animals:     %d\n", t.Animals)
	printer.Fprintf(w, "Lamp bonus:  %.2f\n", t.LampBonus)
	printer.Fprintf(w, "BP / minute: %.2f\n", t.YieldPerMin)
	printer.Fprintf(w, "Value:       %.0f BP\n", t.TotalValue)
	printer.Fprintf(w, "Investment:  %.0f BP\n", t.Investment)
}

func printUpgradePlan(w io.Writer, plan *domain.UpgradePlan) error {
	fmt.Fprintf(w, "\n=== Upgrades for %s ===\n", plan.Seed)
	if plan.Acquire != nil {
		printer.Fprintf(w, "Not owned. A %s needs %d commons (%.0f BP).\n",
			plan.Acquire.Target, plan.Acquire.CommonsNeeded, plan.Acquire.Cost)
	}
	if len(plan.Steps) == 0 {
		fmt.Fprintln(w, "Nothing left to upgrade.")
		return nil
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "FROM\tTO\tCOMMONS\tCOST\tUSDT")
	for _, step := range plan.Steps {
		printer.Fprintf(tw, "%s\t%s\t%d\t%.0f\t%.2f\n", step.From, step.Target, step.CommonsNeeded, step.Cost, step.CostUSDT)
	}
	return tw.Flush()
}

func printShop(w io.Writer, category string, items []domain.ShopItem) error {
	fmt.Fprintf(w, "\n=== Shop: %s ===\n", title.String(category))
	if len(items) == 0 {
		fmt.Fprintln(w, "No items.")
		return nil
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "CATEGORY\tNAME\tPRICE\tUSDT\tIN STOCK")
	for _, item := range items {
		stock := "no"
		if item.InStock {
			stock = "yes"
		}
		printer.Fprintf(tw, "%s\t%s\t%.0f\t%.2f\t%s\n", item.Category, item.Name, item.Price, item.USDT, stock)
	}
	return tw.Flush()
}
