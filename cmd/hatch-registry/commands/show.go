package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <repository> <package> [version]",
		Short: "Print the reconstructed metadata of a package version",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			version := ""
			if len(args) == 3 {
				version = args[2]
			}
			meta, err := c.app.Show(args[0], args[1], version)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			enc := json.NewEncoder(&buf)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			if err := enc.Encode(meta); err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), buf.String())
			return nil
		},
	}
}
