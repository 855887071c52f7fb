package labels

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	nameStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	activeMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	countStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
