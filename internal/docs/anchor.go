package docs

import "strings"

// Anchor returns the in-page link target of a heading: lower-cased, with
// spaces replaced by "-" and backticks removed.
func Anchor(heading string) string {
	a := strings.ToLower(heading)
	a = strings.ReplaceAll(a, " ", "-")
	return strings.ReplaceAll(a, "`", "")
}
