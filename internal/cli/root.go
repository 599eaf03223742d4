// Package cli implements the planner command line tool. It reads the same
// catalog data directory and profile exports as the HTTP service.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	dataDir  string
	logLevel string
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "planner",
		Short: "Plot planner - plan seeds, plots and lamps from the command line",
		Long: `Plot planner computes the best plot assignment for an exported farm
profile, values the inventory and lists the shop.

Examples:
  planner strategy --data data --profile farm_Default.json
  planner strategy --profile farm_Default.json --objective rate
  planner value --profile farm_Default.json
  planner upgrades --profile farm_Default.json --seed Strawberry
  planner shop --category Plots --sort price --desc`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging(cmd.ErrOrStderr(), logLevel)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", getDefaultDataDir(),
		"Directory holding the catalog data files")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"Log level (debug, info, warn, error)")

	rootCmd.AddCommand(NewStrategyCommand())
	rootCmd.AddCommand(NewValueCommand())
	rootCmd.AddCommand(NewUpgradesCommand())
	rootCmd.AddCommand(NewShopCommand())

	return rootCmd
}

// getDefaultDataDir returns DATA_DIR or "data"
func getDefaultDataDir() string {
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		return dir
	}
	return "data"
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
