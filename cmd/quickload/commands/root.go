// Package commands implements the CLI commands for the quickload tool.
package commands

import (
	"context"
	"io"

	"github.com/scriptdeck/quickload/internal/app"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for quickload.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "quickload",
		Short:         "A compiled-module cache for embedded script hosts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Parsed before bootstrap in main; declared here so help and validation
	// know about it.
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (overrides QUICKLOAD_CONFIG)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newGetCmd())
	rootCmd.AddCommand(c.newWarmCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newLsCmd())
	rootCmd.AddCommand(c.newStatsCmd())
	rootCmd.AddCommand(c.newFlushCmd())
	rootCmd.AddCommand(c.newClearCmd())
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

// SetOutput redirects command output and errors.
func (c *CLI) SetOutput(stdout, stderr io.Writer) {
	c.rootCmd.SetOut(stdout)
	c.rootCmd.SetErr(stderr)
}
