package style

import (
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

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)

	CommandStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)
)

// Registry styles
var (
	NodeStyle = lipgloss.NewStyle().
			Foreground(NodeColor).
			Bold(true)

	TargetStyle = lipgloss.NewStyle().
			Foreground(TargetColor).
			Bold(true)
)

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
