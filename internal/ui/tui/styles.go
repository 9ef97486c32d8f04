package tui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.AdaptiveColor{Light: "#8257E5", Dark: "#9F75FF"}
	mutedColor  = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"}

	paddingStyle = lipgloss.NewStyle().Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accentColor).
			Padding(0, 1)

	playerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	titleStyle       = lipgloss.NewStyle().Bold(true)
	membersStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	placeholderStyle = lipgloss.NewStyle().Italic(true).Foreground(mutedColor)
	timeStyle        = lipgloss.NewStyle().Foreground(mutedColor)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#E83F5B"))

	controlStyle         = lipgloss.NewStyle().Padding(0, 1)
	controlActiveStyle   = controlStyle.Foreground(accentColor).Bold(true)
	controlDisabledStyle = controlStyle.Faint(true)
)
