// Package commands implements the CLI commands for progbuild.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/progbuild/internal/app"
	"go.trai.ch/progbuild/internal/build"
	"go.trai.ch/progbuild/internal/core/ports"
)

// CLI represents the command line interface for progbuild.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// Application represents the application logic interface.
type Application interface {
	BuildProgram(ctx context.Context, location string, opts app.BuildOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "progbuild",
		Short:         "Build guest programs from a host build script",
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

	rootCmd.PersistentFlags().Bool("json", false, "Write diagnostics to stderr as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		asJSON, _ := cmd.Flags().GetBool("json")
		if l, ok := c.logger.(jsonLogger); ok {
			l.SetJSON(asJSON)
		}
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// WithLogger sets the logger whose output format the --json flag controls.
func (c *CLI) WithLogger(l ports.Logger) *CLI {
	c.logger = l
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
