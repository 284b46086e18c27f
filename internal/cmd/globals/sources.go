package globals

import "github.com/spf13/cobra"

// SourceFlags override where metadata is read from.
type SourceFlags struct {
	DataDir     string
	ManifestURL string
	Schema      string
}

// AddSourceFlags adds source flags to a command. Empty values leave the
// configured defaults in place.
func AddSourceFlags(cmd *cobra.Command) *SourceFlags {
	flags := &SourceFlags{}

	cmd.Flags().StringVar(&flags.DataDir, "data-dir", "",
		"directory caching the manifest and metadata documents")
	cmd.Flags().StringVar(&flags.ManifestURL, "manifest-url", "",
		"URL of the NYC-DB datasets.yml manifest")
	cmd.Flags().StringVar(&flags.Schema, "schema", "",
		"database schema to document")

	return flags
}
