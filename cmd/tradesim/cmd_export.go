package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tradesim/platform/internal/export"
	"github.com/tradesim/platform/internal/fixtures"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the final leaderboard as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			data, err := fixtures.Load()
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			return export.WriteLeaderboardCSV(w, data.FinalLeaderboard)
		},
	}
	cmd.Flags().StringP("out", "o", "", "Output file (default stdout, "+export.Filename+" is the name the server suggests)")
	return cmd
}
