package app

import (
	"github.com/spf13/cobra"

	"github.com/toolness/nycdb-fun/cmd/nycdb-schema/cmd/docs"
	"github.com/toolness/nycdb-fun/cmd/nycdb-schema/cmd/fetch"
	"github.com/toolness/nycdb-fun/cmd/nycdb-schema/cmd/tables"
	"github.com/toolness/nycdb-fun/cmd/nycdb-schema/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(docs.NewCommand(a))
	rootCmd.AddCommand(tables.NewCommand(a))

	// Data commands
	rootCmd.AddCommand(fetch.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
