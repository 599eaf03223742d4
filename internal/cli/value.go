package cli

import (
	"context"

	"github.com/spf13/cobra"
)

// NewValueCommand creates the value command
func NewValueCommand() *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Count and value a profile's inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, prof, err := openPlanner(profilePath)
			if err != nil {
				return err
			}
			totals, err := svc.Value(context.Background(), prof.profile.Name)
			if err != nil {
				return err
			}
			printTotals(cmd.OutOrStdout(), prof.profile.Name, totals)
			return nil
		},
	}

	cmd.Flags().StringVar(&profilePath, "profile", "", "Exported profile file (JSON or YAML)")

	return cmd
}
