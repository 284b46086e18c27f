package output

import (
	"io"

	"github.com/toolness/nycdb-fun/internal/cmd/table"
)

// FormatSummaries writes table summaries in format.
func FormatSummaries(w io.Writer, summaries []table.Summary, format Format) error {
	if summaries == nil {
		summaries = []table.Summary{}
	}
	rows := table.SummariesToTableData(summaries, format == FormatWide)
	return Write(w, format, rows, summaries)
}
