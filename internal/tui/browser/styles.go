package browser

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	cursorStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	titleStyle         = lipgloss.NewStyle()
	selectedTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	dateStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	labelStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	activeLabelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("5")).Padding(0, 1)
	mutedStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	queryStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	searchPromptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	loadingStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Padding(1, 2)
	linkStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Underline(true)

	detailTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	detailBoxStyle   = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("4")).
				Padding(1, 2)
)
