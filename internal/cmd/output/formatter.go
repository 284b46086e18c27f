// Package output writes command results as a table or as JSON or YAML.
package output

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/toolness/nycdb-fun/internal/cmd/table"
	"github.com/toolness/nycdb-fun/pkg/errors"
)

// Format selects how results are written.
type Format string

// Supported formats. Wide is the table format with extra columns.
const (
	FormatTable Format = "table"
	FormatWide  Format = "wide"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// IsTable reports whether f is written as rows and columns.
func (f Format) IsTable() bool {
	return f == FormatTable || f == FormatWide || f == ""
}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	switch f {
	case FormatTable, FormatWide, FormatJSON, FormatYAML, "":
		return f, nil
	}
	return "", errors.NewValidationError("format", s, "must be one of table, wide, json, yaml")
}

// DetectFormat returns explicit when set, otherwise a table on a terminal
// and JSON when stdout is redirected.
func DetectFormat(explicit string) Format {
	if explicit != "" {
		return Format(strings.ToLower(explicit))
	}
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return FormatTable
	}
	return FormatJSON
}

// Write writes rows for table formats and value for structured formats.
func Write(w io.Writer, format Format, rows table.Data, value any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	case FormatYAML:
		data, err := yaml.MarshalWithOptions(value, yaml.Indent(2), yaml.IndentSequence(false))
		if err != nil {
			return errors.WrapParse("yaml", "output", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return writeTable(w, rows)
	}
}

// Label turns a lower-case status word into a table cell, "cached" into
// "Cached".
func Label(s string) string {
	return cases.Title(language.English).String(s)
}

func writeTable(w io.Writer, data table.Data) error {
	var cfg tablewriter.Config
	if len(data.ColumnAlignment) > 0 {
		align := make([]tw.Align, len(data.ColumnAlignment))
		for i, a := range data.ColumnAlignment {
			align[i] = twAlign(a)
		}
		cfg.Header.Alignment = tw.CellAlignment{PerColumn: align}
		cfg.Row.Alignment = tw.CellAlignment{PerColumn: align}
	}

	t := tablewriter.NewTable(w, tablewriter.WithConfig(cfg))
	if len(data.Headers) > 0 {
		t.Header(cells(data.Headers)...)
	}
	for _, row := range data.Rows {
		if err := t.Append(cells(row)...); err != nil {
			return err
		}
	}
	return t.Render()
}

func twAlign(a table.Align) tw.Align {
	switch a {
	case table.AlignLeft:
		return tw.AlignLeft
	case table.AlignCenter:
		return tw.AlignCenter
	case table.AlignRight:
		return tw.AlignRight
	}
	return tw.Skip
}

func cells(row []string) []any {
	out := make([]any, len(row))
	for i, c := range row {
		out[i] = c
	}
	return out
}
