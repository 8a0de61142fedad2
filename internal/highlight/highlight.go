// Package highlight wraps entity mentions in a markup span so the report can
// style them.
package highlight

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const spanFormat = `<span class="highlight">%s</span>`

// Apply wraps every whole-word, case-sensitive occurrence of each surface
// string in a highlight span. Surfaces are substituted sequentially in the
// order given; a surface that also occurs inside an earlier substitution's
// markup is rewritten again, which matches how the report has always been
// rendered and is accepted as-is.
func Apply(text string, surfaces []string) string {
	out := text
	for _, surface := range surfaces {
		if surface == "" {
			continue
		}
		out = wrapWholeWord(out, surface)
	}
	return out
}

// wrapWholeWord rewrites every occurrence of surface that sits between word
// boundaries, scanning left to right without overlap. The surface is written
// into the span verbatim, never through a replacement template, so dollar
// signs and the like survive untouched.
func wrapWholeWord(text, surface string) string {
	var b strings.Builder
	start := 0
	for {
		rel := strings.Index(text[start:], surface)
		if rel < 0 {
			break
		}
		i := start + rel
		end := i + len(surface)
		b.WriteString(text[start:i])
		if hasBoundary(text, i) && hasBoundary(text, end) {
			fmt.Fprintf(&b, spanFormat, surface)
		} else {
			b.WriteString(surface)
		}
		start = end
	}
	b.WriteString(text[start:])
	return b.String()
}

// hasBoundary reports whether a word boundary sits at byte offset pos: the
// runes on either side disagree about being word runes, with the ends of the
// text counting as non-word. Word runes are letters, digits, and underscore,
// for any script, not just ASCII.
func hasBoundary(text string, pos int) bool {
	beforeWord := false
	if pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:pos])
		beforeWord = isWordRune(r)
	}
	afterWord := false
	if pos < len(text) {
		r, _ := utf8.DecodeRuneInString(text[pos:])
		afterWord = isWordRune(r)
	}
	return beforeWord != afterWord
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
