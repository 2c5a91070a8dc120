// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/agentkit/pkg/style"
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/arthur-debert/agentkit/pkg/ui/text"
	"github.com/pterm/pterm"
)

type styler struct{}

func (styler) Title(s string) string { return style.TitleStyle.Render(s) }
func (styler) Muted(s string) string { return style.MutedStyle.Render(s) }
func (styler) Path(s string) string  { return style.PathStyle.Render(s) }
func (styler) Error(s string) string { return style.ErrorStyle.Render(s) }

func (styler) Status(status types.SyncStatus) string {
	return style.StatusLabel(status)
}

func (styler) Name(category types.Category, s string) string {
	return style.CategoryStyle(category).Render(s)
}

func (styler) Indicator(enabled, broken bool) string {
	switch {
	case broken:
		return style.BrokenIndicator
	case enabled:
		return style.EnabledIndicator
	default:
		return style.DisabledIndicator
	}
}

// Renderer provides rich terminal output. Layout is shared with the text
// renderer; only decoration differs.
type Renderer struct {
	output io.Writer
	layout *text.Renderer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output: w,
		layout: text.NewStyled(w, styler{}),
	}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	return r.layout.RenderResult(result)
}

// RenderError renders an error with the pterm error prefix
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "%s %s\n", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
	return err2
}

// RenderMessage renders a simple message with the pterm info prefix
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", pterm.Info.Prefix.Text, pterm.Info.MessageStyle.Sprint(msg))
	return err
}
