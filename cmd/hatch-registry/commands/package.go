package commands

import (
	"fmt"

	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"github.com/spf13/cobra"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "package",
		Aliases: []string{"pkg"},
		Short:   "Manage packages and their versions",
	}
	cmd.AddCommand(c.newPackageAddCmd())
	cmd.AddCommand(c.newPackageRemoveCmd())
	cmd.AddCommand(c.newPackageUpdateCmd())
	return cmd
}

func (c *CLI) newPackageAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <repository> <package-dir>",
		Short: "Add a package, or a new version of an existing package",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.AddPackage(args[0], args[1]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %q\n", args[1], args[0])
			return nil
		},
	}
}

func (c *CLI) newPackageRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <repository> <package>",
		Short: "Remove a package, or a single version of it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, _ := cmd.Flags().GetString("version")
			if version != "" {
				if err := c.app.RemoveVersion(args[0], args[1], version); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %s from %q\n", args[1], version, args[0])
				return nil
			}
			if err := c.app.RemovePackage(args[0], args[1]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %q\n", args[1], args[0])
			return nil
		},
	}
	cmd.Flags().StringP("version", "v", "", "Remove only the given version")
	return cmd
}

func (c *CLI) newPackageUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <repository> <package>",
		Short: "Update package-level metadata",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.PackagePatch
			if cmd.Flags().Changed("description") {
				description, _ := cmd.Flags().GetString("description")
				patch.Description = &description
			}
			if cmd.Flags().Changed("tags") {
				tags, _ := cmd.Flags().GetStringSlice("tags")
				patch.Tags = tags
			}
			if err := c.app.UpdatePackage(args[0], args[1], patch); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s in %q\n", args[1], args[0])
			return nil
		},
	}
	cmd.Flags().StringP("description", "d", "", "New package description")
	cmd.Flags().StringSliceP("tags", "t", nil, "Replacement tag list")
	return cmd
}
