package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print registry-wide totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats, err := c.app.Stats()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Packages:  %d\n", stats.TotalPackages)
			_, _ = fmt.Fprintf(out, "Versions:  %d\n", stats.TotalVersions)
			_, _ = fmt.Fprintf(out, "Artifacts: %d\n", stats.TotalArtifacts)
			return nil
		},
	}
}
