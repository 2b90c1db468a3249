package format

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"pkt.systems/askdoc/schema"
)

// PlainRenderer formats conversation state as terminal lines. Role labels are
// colored through fatih/color, which degrades to plain text when the output
// is not a TTY.
type PlainRenderer struct {
	user      func(format string, a ...interface{}) string
	assistant func(format string, a ...interface{}) string
	system    func(format string, a ...interface{}) string
	dim       func(format string, a ...interface{}) string
}

// NewPlainRenderer returns a renderer with the default role colors.
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{
		user:      color.New(color.FgCyan, color.Bold).SprintfFunc(),
		assistant: color.New(color.FgGreen).SprintfFunc(),
		system:    color.New(color.FgYellow).SprintfFunc(),
		dim:       color.New(color.Faint).SprintfFunc(),
	}
}

// FormatMessage converts a timeline entry into user-facing lines. Sources are
// appended only when sourcesVisible is set; unknown source types are printed
// as-is.
func (p *PlainRenderer) FormatMessage(msg schema.Message, sourcesVisible bool) []string {
	label := p.label(msg.Kind)
	body := splitLines(msg.Content)
	if len(body) == 0 {
		body = []string{""}
	}
	lines := make([]string, 0, len(body)+len(msg.Sources)+1)
	lines = append(lines, label+" "+body[0])
	indent := strings.Repeat(" ", labelWidth(msg.Kind))
	for _, line := range body[1:] {
		lines = append(lines, indent+line)
	}
	if sourcesVisible && len(msg.Sources) > 0 {
		lines = append(lines, p.dim("%ssources:", indent))
		for _, src := range msg.Sources {
			lines = append(lines, p.dim("%s- page %d (%s): %s", indent, src.Page, src.Type, src.Content))
		}
	}
	return lines
}

// FormatDocument renders a one-line summary of the active document.
func (p *PlainRenderer) FormatDocument(doc schema.DocumentHandle) string {
	return p.system("%s", fmt.Sprintf("%s: %d pages, %d tables, %d images",
		doc.Filename, doc.Pages, doc.Tables, doc.Images))
}

// FormatStatus renders the busy indicator, or "" when the session is idle.
func (p *PlainRenderer) FormatStatus(status schema.StatusEvent) string {
	switch {
	case status.UploadInFlight && status.QueryInFlight:
		return p.dim("working...")
	case status.UploadInFlight:
		return p.dim("uploading...")
	case status.QueryInFlight:
		return p.dim("thinking...")
	default:
		return ""
	}
}

func (p *PlainRenderer) label(kind schema.MessageKind) string {
	switch kind {
	case schema.MessageUser:
		return p.user("you>")
	case schema.MessageAssistant:
		return p.assistant("doc>")
	case schema.MessageSystem:
		return p.system("sys>")
	default:
		return p.system("%s>", string(kind))
	}
}

func labelWidth(kind schema.MessageKind) int {
	switch kind {
	case schema.MessageUser, schema.MessageAssistant, schema.MessageSystem:
		return 5
	default:
		return len(string(kind)) + 2
	}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
