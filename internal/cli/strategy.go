package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
)

// NewStrategyCommand creates the strategy command
func NewStrategyCommand() *cobra.Command {
	var profilePath, objective string

	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Plan which seeds go on which plots",
		Long: `Compute the plot assignment and lamp bindings for an exported profile.

The objective defaults to the one stored in the profile.

Examples:
  planner strategy --profile farm_Default.json
  planner strategy --profile farm_Default.json --objective rate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, prof, err := openPlanner(profilePath)
			if err != nil {
				return err
			}

			ctx := context.Background()
			inv := prof.profile.Inventory()
			if objective != "" {
				if inv.Objective, err = domain.ParseObjective(objective); err != nil {
					return err
				}
			}

			report, err := svc.Compute(ctx, inv)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), prof.profile.Name, report)
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "Exported profile file (JSON or YAML)")
	cmd.Flags().StringVar(&objective, "objective", "", "rate or batch")

	return cmd
}
