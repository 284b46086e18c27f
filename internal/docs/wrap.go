package docs

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// Wrap fills text to width columns. The first line is prefixed with first
// and the rest with rest. Lines break only at whitespace; hyphenated and
// overlong words are kept whole. Runs of whitespace collapse to one space.
func Wrap(text string, width int, first, rest string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	limit := width - max(len(first), len(rest))
	if limit < 1 {
		limit = 1
	}

	wrapped := wordwrap.WrapString(strings.Join(words, " "), uint(limit))
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		prefix := rest
		if i == 0 {
			prefix = first
		}
		lines[i] = prefix + strings.TrimRight(line, " ")
	}
	return lines
}
