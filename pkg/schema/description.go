package schema

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeDescription trims surrounding whitespace, composes the text into
// NFC form, and appends a period to non-empty text that lacks one.
func NormalizeDescription(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))
	if s == "" || strings.HasSuffix(s, ".") {
		return s
	}
	return s + "."
}
