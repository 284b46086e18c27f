// Package fetch provides the command that fills the data directory cache.
package fetch

import (
	"github.com/spf13/cobra"

	"github.com/toolness/nycdb-fun/cmd/application"
	"github.com/toolness/nycdb-fun/internal/cmd/globals"
	"github.com/toolness/nycdb-fun/internal/cmd/output"
	"github.com/toolness/nycdb-fun/internal/cmd/table"
	"github.com/toolness/nycdb-fun/internal/sources/socrata"
	"github.com/toolness/nycdb-fun/pkg/logging"
)

// File statuses reported by the fetch command.
const (
	StatusCached     = "cached"
	StatusDownloaded = "downloaded"
	StatusMissing    = "missing"
	StatusSkipped    = "skipped"
)

// FileStatus is the cache state of one manifest file.
type FileStatus struct {
	Dataset string `json:"dataset" yaml:"dataset"`
	File    string `json:"file" yaml:"file"`
	Status  string `json:"status" yaml:"status"`
}

// Flags holds flags for the fetch command.
type Flags struct {
	DryRun  bool
	Sources *globals.SourceFlags
}

// NewCommand creates the fetch command.
func NewCommand(app application.Application) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "fetch",
		GroupID: "data",
		Short:   "Download the manifest and NYC Open Data metadata",
		Long: `Fetch downloads the dataset manifest and the NYC Open Data view document of
every manifest file hosted on the portal into the data directory. Documents
already in the data directory are kept; delete them to download again.

Files hosted elsewhere are skipped. Use --dry-run to report what would be
downloaded without touching the network.`,
		Example: `  nycdb-schema fetch
  nycdb-schema fetch --data-dir /var/cache/nycdb --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := Run(cmd, app, flags)
			if err != nil {
				return err
			}
			format := output.DetectFormat(app.OutputFormat())
			return output.Write(cmd.OutOrStdout(), format, statusTable(statuses), statuses)
		},
	}

	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false,
		"report cache state without downloading")
	flags.Sources = globals.AddSourceFlags(cmd)

	return cmd
}

func statusTable(statuses []FileStatus) table.Data {
	data := table.Data{
		Headers:         []string{"Dataset", "File", "Status"},
		ColumnAlignment: []table.Align{table.AlignLeft, table.AlignLeft, table.AlignLeft},
	}
	for _, s := range statuses {
		data.Rows = append(data.Rows, []string{s.Dataset, s.File, output.Label(s.Status)})
	}
	return data
}

// Run fills the cache and reports the state of every manifest file.
func Run(cmd *cobra.Command, app application.Application, flags *Flags) ([]FileStatus, error) {
	ctx := logging.WithLogger(cmd.Context(), app.Logger())

	m, err := app.Manifest(ctx, flags.Sources)
	if err != nil {
		return nil, err
	}
	src := app.Metadata(flags.Sources)

	statuses := make([]FileStatus, 0, m.FileCount())
	counts := map[string]int{}
	for _, ds := range m.Datasets {
		for _, file := range ds.Files {
			status := StatusSkipped
			switch {
			case !src.Match(file):
			case src.Cached(file):
				status = StatusCached
			case flags.DryRun:
				status = StatusMissing
			default:
				if _, err := src.Fetch(logging.WithDataset(ctx, ds.Name), file); err != nil {
					return nil, err
				}
				status = StatusDownloaded
			}
			counts[status]++
			statuses = append(statuses, FileStatus{
				Dataset: ds.Name,
				File:    socrata.CacheName(file),
				Status:  status,
			})
		}
	}

	app.Logger().Info().
		Int(StatusCached, counts[StatusCached]).
		Int(StatusDownloaded, counts[StatusDownloaded]).
		Int(StatusMissing, counts[StatusMissing]).
		Int(StatusSkipped, counts[StatusSkipped]).
		Msg("Fetch complete")

	return statuses, nil
}
