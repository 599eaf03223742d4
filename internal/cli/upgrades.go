package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewUpgradesCommand creates the upgrades command
func NewUpgradesCommand() *cobra.Command {
	var profilePath, seed string

	cmd := &cobra.Command{
		Use:   "upgrades",
		Short: "Show what merging a seed up each rarity costs",
		Long: `Show the commons needed to reach each higher rarity of a seed, counting
what the profile already owns.

Examples:
  planner upgrades --profile farm_Default.json --seed Strawberry`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == "" {
				return fmt.Errorf("--seed flag is required")
			}
			svc, prof, err := openPlanner(profilePath)
			if err != nil {
				return err
			}
			plan, err := svc.Upgrades(context.Background(), prof.profile.Name, seed)
			if err != nil {
				return err
			}
			return printUpgradePlan(cmd.OutOrStdout(), plan)
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "Exported profile file (JSON or YAML)")
	cmd.Flags().StringVar(&seed, "seed", "", "Seed name")

	return cmd
}
