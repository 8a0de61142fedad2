package clause

import (
	"regexp"
	"strings"
)

// headingPattern matches "1. Title", "2.3. Title", "4.5.6. Title" style
// clause headings: a dotted run of integers, a closing period, whitespace,
// then the title running to the end of the line. Numeric text that happens
// to fit the shape, like a date "12. 2024", is recognized too; precision
// beyond the pattern is out of scope.
var headingPattern = regexp.MustCompile(`(\d+(\.\d+)*)\.\s+([^\n]+)`)

// Extract scans text for numbered clause headings and returns them as a Set,
// in the order they appear. It never fails; text without headings yields an
// empty set. Extraction works on the raw text so that line breaks still
// delimit titles.
func Extract(text string) *Set {
	matches := headingPattern.FindAllStringSubmatch(text, -1)
	clauses := make([]Clause, 0, len(matches))
	for _, m := range matches {
		clauses = append(clauses, Clause{
			ID:    m[1],
			Title: strings.TrimSpace(m[3]),
		})
	}
	return NewSet(clauses)
}
