package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Manage individual package versions",
	}
	cmd.AddCommand(c.newVersionAddCmd())
	cmd.AddCommand(c.newVersionRemoveCmd())
	return cmd
}

func (c *CLI) newVersionAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <repository> <package-dir>",
		Short: "Add a new version of an existing package",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := c.app.AddVersion(args[0], args[1])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added version %s to %q\n", record.Version, args[0])
			return nil
		},
	}
}

func (c *CLI) newVersionRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <repository> <package> <version>",
		Short: "Remove a single version of a package",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.RemoveVersion(args[0], args[1], args[2]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %s from %q\n", args[1], args[2], args[0])
			return nil
		},
	}
}
