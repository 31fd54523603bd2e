package views

import (
	"bytes"
	"html/template"
	"time"

	"clementus360/ai-helper-web/config"

	"github.com/yuin/goldmark"
)

// renderMarkdown converts message content to HTML. Raw HTML in the source
// is omitted by goldmark's default renderer.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		config.Logger.Warn("Failed to render markdown:", err)
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 3:04PM")
}
