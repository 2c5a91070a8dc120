// Package ui renders command results for people and scripts.
//
// Three formats are supported: terminal (colors, pterm prefixes), text
// (plain, for pipes and NO_COLOR) and JSON. Interactive prompting lives in
// the prompt subpackage.
package ui

import (
	"io"

	"github.com/arthur-debert/agentkit/pkg/errors"
	"github.com/arthur-debert/agentkit/pkg/ui/json"
	"github.com/arthur-debert/agentkit/pkg/ui/terminal"
	"github.com/arthur-debert/agentkit/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
// It provides methods for rendering different types of data and messages.
type Renderer interface {
	// RenderResult renders a command result
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		// Buffers and pipes get plain text
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
