package markdown

import (
	"html"
	"regexp"
	"strings"
)

// HTML is pre-sanitized markup built exclusively from hard-coded tags plus
// escaped content. It is the only value that may bypass text escaping in a
// rendering layer; plain strings must never be reinterpreted as markup.
type HTML string

// String returns the markup as a plain string for insertion.
func (h HTML) String() string { return string(h) }

var (
	boldPattern   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*\n]+)\*`)
	bulletPattern = regexp.MustCompile(`(?m)^\* (.+)$`)
)

// Escape HTML-escapes raw text so literal angle brackets and ampersands
// cannot inject markup.
func Escape(text string) string {
	return html.EscapeString(text)
}

// Render converts a constrained inline markdown subset into safe markup.
// It never fails; malformed input degrades to literal text.
//
// The input is escaped first, then a fixed whitelist of transforms applies in
// order, each consuming the previous transform's output: **bold** spans,
// *italic* spans, per-line "* " bullet prefixes, and newlines to <br>. Bold
// resolves before italic so leftover single markers are never reprocessed as
// halves of a bold pair.
func Render(text string) HTML {
	out := Escape(text)
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = applyItalic(out)
	out = bulletPattern.ReplaceAllString(out, "• $1")
	out = strings.ReplaceAll(out, "\n", "<br>")
	return HTML(out)
}

// applyItalic wraps *...* spans not adjacent to another '*'. Adjacency is
// checked on the match boundaries, which regexp alone cannot express without
// consuming the neighbor characters.
func applyItalic(s string) string {
	matches := italicPattern.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if start > 0 && s[start-1] == '*' {
			continue
		}
		if end < len(s) && s[end] == '*' {
			continue
		}
		b.WriteString(s[last:start])
		b.WriteString("<em>")
		b.WriteString(s[m[2]:m[3]])
		b.WriteString("</em>")
		last = end
	}
	b.WriteString(s[last:])
	return b.String()
}
