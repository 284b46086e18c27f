// Package tables provides the command that lists documented tables.
package tables

import (
	"github.com/spf13/cobra"

	"github.com/toolness/nycdb-fun/cmd/application"
	"github.com/toolness/nycdb-fun/internal/cmd/globals"
	"github.com/toolness/nycdb-fun/internal/cmd/output"
	"github.com/toolness/nycdb-fun/internal/cmd/table"
)

// NewCommand creates the tables command.
func NewCommand(app application.Application) *cobra.Command {
	var sources *globals.SourceFlags

	cmd := &cobra.Command{
		Use:     "tables",
		GroupID: "core",
		Aliases: []string{"ls"},
		Short:   "List reconciled tables",
		Long: `Tables lists every table confirmed by the live catalog with its dataset,
column counts and description source. Tables no dataset declares are
listed last without a dataset.`,
		Example: `  nycdb-schema tables
  nycdb-schema tables -o wide
  nycdb-schema tables -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := app.Reconcile(cmd.Context(), sources)
			if err != nil {
				return err
			}

			format := output.DetectFormat(app.OutputFormat())
			return output.FormatSummaries(cmd.OutOrStdout(), table.Summarize(res), format)
		},
	}

	sources = globals.AddSourceFlags(cmd)

	return cmd
}
