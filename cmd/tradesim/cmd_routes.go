package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tradesim/platform/internal/core/nav"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the navigation guard table",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprint(tw, "PATH\tCLASS")
			for _, s := range nav.States() {
				fmt.Fprintf(tw, "\t%s", s)
			}
			fmt.Fprintln(tw)

			for _, r := range nav.Routes() {
				fmt.Fprintf(tw, "%s\t%s", r.Path, r.Class)
				for _, s := range nav.States() {
					fmt.Fprintf(tw, "\t%s", r.Decisions[s])
				}
				fmt.Fprintln(tw)
			}
			fmt.Fprintf(tw, "%s\t%s\t-> %s\t-> %s\t-> %s\n", "*", nav.ClassUnknown, nav.PathRoot, nav.PathRoot, nav.PathRoot)
			return tw.Flush()
		},
	}
}
