// Package commands implements the CLI commands for the bedrock bootstrapper.
package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bedrock-fem/bedrock/internal/app"
	"github.com/bedrock-fem/bedrock/internal/build"
)

// CLI represents the command line interface for bedrock.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "bedrock",
		Short:         "Install and update the Bedrock finite element framework",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.PersistentFlags().String("log", "", "Mirror all output to the given log file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Raise log verbosity")

	// --verbose owns the -v shorthand, so it must be registered before the
	// default version flag claims it.
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newInstallCmd())
	rootCmd.AddCommand(c.newUpdateCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newVersionCmd())

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
