package style

import (
	"github.com/arthur-debert/agentkit/pkg/types"
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Indicators
var (
	EnabledIndicator  = SuccessStyle.Render("●")
	DisabledIndicator = MutedStyle.Render("○")
	BrokenIndicator   = ErrorStyle.Render("✗")
)

// CategoryStyle returns the style used for names of a category
func CategoryStyle(category types.Category) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch category {
	case types.CategoryAgents:
		return base.Foreground(AgentColor)
	case types.CategoryCommands:
		return base.Foreground(CommandColor)
	case types.CategorySkills:
		return base.Foreground(SkillColor)
	case types.CategoryArchitecture:
		return base.Foreground(ArchitectureColor)
	default:
		return base
	}
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
