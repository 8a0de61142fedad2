// Package normalize prepares document text for summarization by collapsing
// whitespace runs into single spaces.
package normalize

import (
	"strings"
	"unicode"
)

// Collapse replaces every maximal run of whitespace, including newlines and
// tabs, with a single space. It is pure, total, and idempotent.
func Collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return b.String()
}
