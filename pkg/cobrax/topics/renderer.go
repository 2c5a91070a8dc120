package topics

import "github.com/charmbracelet/glamour"

// Renderer formats topic content for display
type Renderer interface {
	// Render takes raw content and the file extension it came from
	Render(content string, ext string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (PlainRenderer) Render(content string, _ string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour
type GlamourRenderer struct {
	Width int // 0 leaves glamour's default
}

// Render converts markdown to terminal output. Anything else, or any
// glamour failure, falls back to the raw content.
func (r GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
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
