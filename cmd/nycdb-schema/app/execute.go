package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/toolness/nycdb-fun/internal/cmd/globals"
)

// Execute runs the nycdb-schema CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "nycdb-schema",
		Short:   "NYC-DB schema documentation generator",
		Version: a.version,
		Long: `nycdb-schema documents the schema of an NYC-DB database.

It combines the NYC-DB dataset manifest, column descriptions published on
NYC Open Data and the live PostgreSQL catalog into one Markdown document.
The manifest and metadata documents are cached in a local data directory
and reused on later runs.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "data",
		Title: "Data Commands:",
	})

	a.flags = globals.AddFlags(rootCmd)

	rootCmd.SetVersionTemplate("nycdb-schema {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(_ *cobra.Command, _ []string) error {
	// An explicit --config replaces the configuration loaded at startup.
	if a.flags.ConfigFile != "" && a.flags.ConfigFile != a.config.ConfigFile {
		config, err := LoadConfigFile(a.flags.ConfigFile)
		if err != nil {
			return err
		}
		a.config = config
	}

	a.config.UpdateFromFlags(a.flags)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
