package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary = lipgloss.Color("4")
	ColorAccent  = lipgloss.Color("6")
	ColorActive  = lipgloss.Color("2")
	ColorMuted   = lipgloss.Color("8")
	ColorDanger  = lipgloss.Color("1")

	// Title styles
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)

	// Help text
	HelpStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger)
)
