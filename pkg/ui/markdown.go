package ui

import (
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders markdown for the terminal. Any format other than
// FormatTerminal returns content unchanged, as does a glamour failure.
func RenderMarkdown(content string, format Format, width int) string {
	if format != FormatTerminal {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
