// Package table converts reconciled schema metadata into table rows for
// CLI output.
package table

import (
	"strconv"

	"github.com/toolness/nycdb-fun/pkg/reconcile"
	"github.com/toolness/nycdb-fun/pkg/schema"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Summary is one documented table as listed by the tables command.
type Summary struct {
	Dataset           string `json:"dataset" yaml:"dataset"`
	Table             string `json:"table" yaml:"table"`
	VerboseName       string `json:"verbose_name,omitempty" yaml:"verbose_name,omitempty"`
	Columns           int    `json:"columns" yaml:"columns"`
	ArrayColumns      int    `json:"array_columns" yaml:"array_columns"`
	DescriptionSource string `json:"description_source,omitempty" yaml:"description_source,omitempty"`
}

// Summarize lists every reconciled table: tables grouped by dataset in
// manifest order first, then tables that belong to no dataset.
func Summarize(res *reconcile.Result) []Summary {
	var out []Summary
	for _, ds := range res.Datasets() {
		for _, t := range ds.Tables {
			out = append(out, summarize(t))
		}
	}
	for _, t := range res.Unassigned() {
		out = append(out, summarize(t))
	}
	return out
}

func summarize(t *schema.TableMeta) Summary {
	s := Summary{
		Dataset:     t.Dataset,
		Table:       t.Name,
		VerboseName: t.VerboseName,
		Columns:     t.Len(),
	}
	if t.Description != "" {
		s.DescriptionSource = t.DescriptionSource
	}
	for _, c := range t.Columns() {
		if c.DataType.IsArray() {
			s.ArrayColumns++
		}
	}
	return s
}

// SummariesToTableData converts summaries to table format. Wide output adds
// the verbose name and description source.
func SummariesToTableData(summaries []Summary, wide bool) Data {
	headers := []string{"Dataset", "Table", "Columns", "Arrays"}
	align := []Align{AlignLeft, AlignLeft, AlignRight, AlignRight}
	if wide {
		headers = append(headers, "Name", "Description Source")
		align = append(align, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		row := []string{
			orDash(s.Dataset),
			s.Table,
			strconv.Itoa(s.Columns),
			strconv.Itoa(s.ArrayColumns),
		}
		if wide {
			row = append(row, orDash(s.VerboseName), orDash(s.DescriptionSource))
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
