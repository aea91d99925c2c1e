// Package commands implements the CLI commands for the emforge build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/emforge/internal/adapters/config"
	"go.trai.ch/emforge/internal/build"
	"go.trai.ch/emforge/internal/core/domain"
)

// CLI represents the command line interface for emforge.
type CLI struct {
	app      Application
	defaults DefaultsLoader
	rootCmd  *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, cfg domain.BuildConfiguration) (*domain.Outcome, error)
	Watch(ctx context.Context, cfg domain.BuildConfiguration) error
	Clean(ctx context.Context, outputDir string) error
}

// DefaultsLoader loads the optional emforge.yaml defaults file.
type DefaultsLoader interface {
	Load(cwd string) (*config.Defaults, error)
}

// Options customize CLI construction.
type Options struct {
	// OnVerbose is called when the --verbose flag is set, before any
	// command runs.
	OnVerbose func()
}

// New creates a new CLI instance with the given app.
func New(a Application, defaults DefaultsLoader, opts Options) *CLI {
	rootCmd := &cobra.Command{
		Use:           "emforge",
		Short:         "Compile C++ projects to WebAssembly with Emscripten",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && opts.OnVerbose != nil {
				opts.OnVerbose()
			}
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug output")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:      a,
		defaults: defaults,
		rootCmd:  rootCmd,
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
