// @title        Trading Simulation Platform API
// @version      1.0
// @description  Screens and actions of the trading simulation training platform.
// @BasePath     /
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tradesim",
		Short: "Trading simulation training platform",
		Long: `tradesim serves the trading simulation training platform.

Facilitators create and run market scenarios; participants trade against
simulated quotes; both review and export the final leaderboard.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newExportCmd(),
		newRoutesCmd(),
	)
	return rootCmd
}
