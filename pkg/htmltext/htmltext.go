// Package htmltext converts small HTML fragments into clean display text.
//
// It is deliberately not an HTML parser: the input is treated as opaque
// text with angle-bracket tags, which is all the speiseplan template needs.
package htmltext

import (
	"regexp"
	"strings"
)

var (
	// lineBreakPattern matches <br>, <br/> and <br /> in any case.
	lineBreakPattern = regexp.MustCompile(`(?i)<br\s*/?>`)

	// tagPattern matches any remaining angle-bracket delimited tag.
	tagPattern = regexp.MustCompile(`<[^>]+>`)
)

// Normalize collapses every run of whitespace (including non-breaking
// spaces) into a single ASCII space and trims the ends.
// It is idempotent and total: any input yields a valid, possibly empty,
// string.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripTags converts an HTML fragment to plain text. Line-break tags become
// newlines first so adjacent cells don't run together, then all remaining
// tags are removed and the result is normalized.
func StripTags(fragment string) string {
	s := lineBreakPattern.ReplaceAllString(fragment, "\n")
	s = tagPattern.ReplaceAllString(s, "")
	return Normalize(s)
}
