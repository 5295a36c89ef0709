package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newRepoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo",
		Short: "Manage repositories",
	}
	cmd.AddCommand(c.newRepoAddCmd())
	cmd.AddCommand(c.newRepoRemoveCmd())
	cmd.AddCommand(c.newRepoIndexCmd())
	return cmd
}

func (c *CLI) newRepoAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a repository to the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url, _ := cmd.Flags().GetString("url")
			if err := c.app.AddRepository(args[0], url); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added repository %q\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringP("url", "u", "", "URL of the repository")
	return cmd
}

func (c *CLI) newRepoRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a repository and all its packages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.RemoveRepository(args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed repository %q\n", args[0])
			return nil
		},
	}
}

func (c *CLI) newRepoIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index <name> <package-dir>...",
		Short: "Validate and register a batch of package directories",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.IndexRepository(cmd.Context(), args[0], args[1:]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Indexed %d package(s) into %q\n", len(args)-1, args[0])
			return nil
		},
	}
}
