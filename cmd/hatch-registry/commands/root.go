// Package commands implements the CLI commands for the hatch-registry tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/crackingshells/hatch-registry/internal/build"
	"github.com/crackingshells/hatch-registry/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for hatch-registry.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	AddRepository(name, url string) error
	RemoveRepository(name string) error
	IndexRepository(ctx context.Context, repo string, dirs []string) error
	AddPackage(repo, dir string) error
	AddVersion(repo, dir string) (*domain.VersionRecord, error)
	RemovePackage(repo, name string) error
	RemoveVersion(repo, pkg, version string) error
	UpdatePackage(repo, name string, patch domain.PackagePatch) error
	Show(repo, pkg, version string) (domain.PackageMetadata, error)
	Stats() (domain.Stats, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "hatch-registry",
		Short:         "A differential metadata registry for Hatch packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRepoCmd())
	rootCmd.AddCommand(c.newPackageCmd())
	rootCmd.AddCommand(c.newVersionCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newStatsCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
