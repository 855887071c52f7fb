package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nota/internal/filter"
	"nota/internal/logs"
	"nota/internal/notes"
	"nota/internal/tui/browser"
	"nota/internal/tui/labels"
	"nota/internal/tui/messages"
)

// AppModel is the root model that loads the note set and dispatches to
// child views.
type AppModel struct {
	src   notes.DataSource
	eng   *filter.Engine
	state *filter.Latest

	currentView ViewType
	browserView browser.Model
	labelsView  labels.Model

	loadErr  error
	showHelp bool
	width    int
	height   int
	ready    bool
}

// NewAppModel creates the root application model. The note set is fetched
// asynchronously from Init; until it arrives the browser shows a loading
// placeholder and interactions are no-ops.
func NewAppModel(src notes.DataSource, minScore int) AppModel {
	state := &filter.Latest{}
	eng := filter.NewEngine(filter.NewFuzzyMatcher(minScore), state)

	return AppModel{
		src:         src,
		eng:         eng,
		state:       state,
		currentView: ViewBrowser,
		browserView: browser.NewModel(eng, state),
		labelsView:  labels.NewModel(eng),
	}
}

func (m AppModel) Init() tea.Cmd {
	src := m.src
	return func() tea.Msg {
		ns, err := src.FetchAll()
		if err != nil {
			return messages.LoadFailedMsg{Err: err}
		}
		return messages.NotesLoadedMsg{Notes: ns}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // status bar
		m.browserView.SetSize(msg.Width, contentHeight)
		m.labelsView.SetSize(msg.Width, contentHeight)
		return m, nil

	case messages.NotesLoadedMsg:
		m.eng.Load(msg.Notes)
		m.browserView.Refresh()
		logs.Logger.Printf("Loaded %d notes, %d labels", m.eng.Count(), len(m.eng.Labels()))
		return m, nil

	case messages.LoadFailedMsg:
		m.loadErr = msg.Err
		logs.Logger.Printf("Error loading notes: %v", msg.Err)
		return m, nil

	case messages.ToggleLabelMsg:
		m.eng.ToggleLabel(msg.Label)
		m.browserView.Refresh()
		return m, nil

	case messages.SwitchViewMsg:
		m.currentView = msg.View
		return m, nil

	case tea.KeyMsg:
		// ctrl+c always quits.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key.
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// While the browser search input is focused, it gets every key.
		if !(m.currentView == ViewBrowser && m.browserView.IsTyping()) {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewBrowser:
		m.browserView, cmd = m.browserView.Update(msg)
	case ViewLabels:
		m.labelsView, cmd = m.labelsView.Update(msg)
	}
	return m, cmd
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var content, hints string
	if m.loadErr != nil {
		content = ErrorStyle.Render("Could not load notes: " + m.loadErr.Error())
		hints = "q:quit"
	} else {
		switch m.currentView {
		case ViewBrowser:
			content = m.browserView.View()
			hints = m.browserView.HintText()
		case ViewLabels:
			content = m.labelsView.View()
			hints = m.labelsView.HintText()
		}
	}

	statusBar := StatusBarStyle.Width(m.width).Render(
		HelpStyle.Render(hints + "  |  ?:help  q:quit"),
	)

	contentHeight := m.height - lipgloss.Height(statusBar)
	content = lipgloss.NewStyle().Height(contentHeight).Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m AppModel) renderHelpOverlay() string {
	helpBoxStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)

	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	line := func(key, desc string) string {
		return "  " + keyStyle.Width(10).Render(key) + descStyle.Render(desc)
	}

	var content string
	content += sectionStyle.Render("Nota - Keyboard Shortcuts") + "\n\n"

	content += sectionStyle.Render("Browser") + "\n"
	content += line("j / k", "Navigate notes") + "\n"
	content += line("/", "Fuzzy search (live)") + "\n"
	content += line("l", "Label list") + "\n"
	content += line("enter", "Note details") + "\n"
	content += line("esc", "Clear label, then query") + "\n"
	content += line("g / G", "First / last note") + "\n\n"

	content += sectionStyle.Render("Labels") + "\n"
	content += line("enter", "Toggle label filter") + "\n"
	content += line("esc", "Back to browser") + "\n\n"

	content += sectionStyle.Render("Global") + "\n"
	content += line("?", "Show this help") + "\n"
	content += line("q", "Quit") + "\n"
	content += line("ctrl+c", "Force quit") + "\n\n"

	content += HelpStyle.Render("Press any key to close")

	box := helpBoxStyle.Render(content)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
