// Package commands implements the CLI commands for cxpack.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cxpack/internal/app"
	"go.trai.ch/cxpack/internal/build"
)

// CLI represents the command line interface for cxpack.
type CLI struct {
	app     Application
	logs    LogSettings
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, configPath string, opts app.RunOptions) (string, error)
	Verify(ctx context.Context, opts app.VerifyOptions) (*app.VerifyReport, error)
}

// LogSettings is the part of the logger controlled by global flags.
type LogSettings interface {
	SetVerbose(verbose bool)
	SetJSON(enable bool)
}

// Option configures a CLI.
type Option func(*CLI)

// WithLogSettings lets --verbose and --log-json reconfigure the logger.
func WithLogSettings(ls LogSettings) Option {
	return func(c *CLI) {
		c.logs = ls
	}
}

// New creates a new CLI instance with the given app.
func New(a Application, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cxpack",
		Short:         "Assemble provisioning packages from web application builds",
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

	rootCmd.PersistentFlags().StringP("config", "c", ".", "Path to cxpack.yaml or the directory containing it")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if c.logs == nil {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("log-json")
		c.logs.SetVerbose(verbose)
		c.logs.SetJSON(jsonLogs)
	}

	rootCmd.AddCommand(c.newPackageCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
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
