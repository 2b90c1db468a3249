package askdoc

import (
	"strings"

	"pkt.systems/askdoc/internal/markdown"
	"pkt.systems/askdoc/schema"
)

// RenderHTML converts a timeline message into safe display markup for HTML
// surfaces. Assistant messages get the inline markdown treatment (bold,
// italic, bullets, line breaks); user and system text is escaped verbatim
// with only line breaks converted.
func RenderHTML(msg schema.Message) string {
	if msg.Kind == schema.MessageAssistant {
		return markdown.Render(msg.Content).String()
	}
	escaped := markdown.Escape(msg.Content)
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
