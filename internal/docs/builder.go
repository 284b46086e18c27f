package docs

import (
	"strings"

	md "github.com/nao1215/markdown"
)

// MarkdownBuilder wraps the markdown package with the line-oriented
// helpers the schema document needs. Output is buffered until Build.
type MarkdownBuilder struct {
	md     *md.Markdown
	buffer *strings.Builder
}

// NewMarkdownBuilderBuffer creates a new markdown builder with internal buffer
func NewMarkdownBuilderBuffer() *MarkdownBuilder {
	buffer := &strings.Builder{}
	return &MarkdownBuilder{
		md:     md.NewMarkdown(buffer),
		buffer: buffer,
	}
}

// String returns the buffered content
func (m *MarkdownBuilder) String() string {
	return m.buffer.String()
}

// H1 creates a level 1 header followed by a blank line
func (m *MarkdownBuilder) H1(text string) *MarkdownBuilder {
	m.md.H1(text)
	return m.Blank()
}

// H2 creates a level 2 header followed by a blank line
func (m *MarkdownBuilder) H2(text string) *MarkdownBuilder {
	m.md.H2(text)
	return m.Blank()
}

// H3 creates a level 3 header followed by a blank line
func (m *MarkdownBuilder) H3(text string) *MarkdownBuilder {
	m.md.H3(text)
	return m.Blank()
}

// PlainText adds one line of text
func (m *MarkdownBuilder) PlainText(text string) *MarkdownBuilder {
	m.md.PlainText(text)
	return m
}

// Lines adds each line as-is
func (m *MarkdownBuilder) Lines(lines []string) *MarkdownBuilder {
	for _, line := range lines {
		m.md.PlainText(line)
	}
	return m
}

// Blank adds an empty line
func (m *MarkdownBuilder) Blank() *MarkdownBuilder {
	m.md.PlainText("")
	return m
}

// Paragraph adds lines followed by a blank line
func (m *MarkdownBuilder) Paragraph(lines ...string) *MarkdownBuilder {
	return m.Lines(lines).Blank()
}

// Build finalizes the markdown document
func (m *MarkdownBuilder) Build() error {
	return m.md.Build()
}

// Link returns a markdown link
func Link(text, url string) string {
	return md.Link(text, url)
}

// Code returns inline code
func Code(text string) string {
	return md.Code(text)
}
