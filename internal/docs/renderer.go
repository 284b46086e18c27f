// Package docs renders reconciled schema metadata as a Markdown document.
package docs

import (
	"fmt"
	"io"

	"github.com/toolness/nycdb-fun/pkg/constants"
	"github.com/toolness/nycdb-fun/pkg/errors"
	"github.com/toolness/nycdb-fun/pkg/schema"
)

// Document text.
const (
	Title         = "NYC-DB schema documentation"
	GeneratedNote = "This documentation was automatically generated from the NYC-DB dataset manifest, NYC Open Data metadata and the live database catalog."
	NullableNote  = "Columns are nullable unless otherwise stated."
	ColumnsLeadIn = "This table has the following columns:"
	ContentsTitle = "Contents"
)

const (
	quotePrefix        = "> "
	bulletPrefix       = "* "
	bulletContinuation = "  "
	columnQuotePrefix  = "  > "
)

// Renderer writes schema documentation.
type Renderer struct {
	// Index adds a table of contents linking every dataset and table.
	Index bool
	// Width is the wrap width for prose; zero selects the default.
	Width int
}

// NewRenderer returns a renderer with default settings.
func NewRenderer() *Renderer {
	return &Renderer{Width: constants.DefaultWrapWidth}
}

func (r *Renderer) width() int {
	if r.Width <= 0 {
		return constants.DefaultWrapWidth
	}
	return max(r.Width, constants.MinWrapWidth)
}

// DatasetHeading returns the heading of a dataset section.
func DatasetHeading(name string) string {
	return "Dataset " + Code(name)
}

// TableHeading returns the heading of a table section.
func TableHeading(name string) string {
	return "Table " + Code(name)
}

// Render writes the document for datasets to w. Nothing is written if any
// table fails to render.
func (r *Renderer) Render(w io.Writer, datasets []schema.DatasetMeta) error {
	b := NewMarkdownBuilderBuffer()

	b.H1(Title)
	b.Paragraph(Wrap(GeneratedNote, r.width(), "", "")...)
	b.Paragraph(Wrap(NullableNote, r.width(), "", "")...)

	if r.Index {
		r.renderIndex(b, datasets)
	}

	for _, ds := range datasets {
		b.H2(DatasetHeading(ds.Name))
		for _, t := range ds.Tables {
			if err := r.renderTable(b, t); err != nil {
				return err
			}
		}
	}

	if err := b.Build(); err != nil {
		return errors.WrapIO("render", "markdown", err)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.WrapIO("write", "documentation", err)
	}
	return nil
}

func (r *Renderer) renderIndex(b *MarkdownBuilder, datasets []schema.DatasetMeta) {
	b.H2(ContentsTitle)
	for _, ds := range datasets {
		heading := DatasetHeading(ds.Name)
		b.PlainText(bulletPrefix + Link(heading, "#"+Anchor(heading)))
		for _, t := range ds.Tables {
			heading := TableHeading(t.Name)
			b.PlainText(bulletContinuation + bulletPrefix + Link(heading, "#"+Anchor(heading)))
		}
	}
	b.Blank()
}

func (r *Renderer) renderTable(b *MarkdownBuilder, t *schema.TableMeta) error {
	b.H3(TableHeading(t.Name))

	if t.Description != "" {
		b.Paragraph(Attribution(t))
		b.Paragraph(Wrap(t.Description, r.width(), quotePrefix, quotePrefix)...)
	}

	b.Paragraph(Wrap(ColumnsLeadIn, r.width(), "", "")...)

	for _, c := range t.Columns() {
		summary, err := ColumnSummary(t.Name, c)
		if err != nil {
			return err
		}
		b.Lines(Wrap(summary, r.width(), bulletPrefix, bulletContinuation))
		if c.Description != "" {
			b.Blank()
			b.Lines(Wrap(c.Description, r.width(), columnQuotePrefix, columnQuotePrefix))
			b.Blank()
		}
	}
	b.Blank()
	return nil
}

// Attribution names where a table description came from, linking to the
// source page when one is known.
func Attribution(t *schema.TableMeta) string {
	source := t.DescriptionSource
	if source == "" {
		source = "the data provider"
	}
	if t.SourceURL != "" {
		source = Link(source, t.SourceURL)
	}
	return fmt.Sprintf("From %s:", source)
}

// ColumnSummary describes a column in one sentence, for example
// "`bbl` - A required text value.". An array column without a resolved
// element type is an inconsistency error.
func ColumnSummary(table string, c *schema.ColumnMeta) (string, error) {
	typ, err := typeLabel(table, c)
	if err != nil {
		return "", err
	}

	var phrase string
	if c.IsNullable {
		phrase = article(typ) + " " + typ
	} else {
		phrase = "A required " + typ
	}
	return fmt.Sprintf("%s - %s value.", Code(c.Name), phrase), nil
}

func typeLabel(table string, c *schema.ColumnMeta) (string, error) {
	if !c.DataType.IsValid() {
		return "", errors.NewInconsistencyError("render", table, c.Name,
			fmt.Sprintf("column has no recognized type %q", c.DataType))
	}
	if !c.DataType.IsArray() {
		return c.DataType.Display(), nil
	}
	if c.DataSubtype == "" || !c.DataSubtype.IsValid() || c.DataSubtype.IsArray() {
		return "", errors.NewInconsistencyError("render", table, c.Name, "array column has no element type")
	}
	return c.DataSubtype.Display() + " " + schema.TypeArray.Display(), nil
}

func article(word string) string {
	if word == "" {
		return "A"
	}
	switch word[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "An"
	}
	return "A"
}
