package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"nota/internal/filter"
	"nota/internal/tui/messages"
)

// Model is the note list view: a scrollable, fuzzy-searchable list of notes
// narrowed by the engine's active label.
type Model struct {
	eng   *filter.Engine
	state *filter.Latest

	cursor       int
	scrollOffset int

	searchActive bool
	searchTyping bool
	searchInput  textinput.Model

	showDetail bool

	width  int
	height int
}

// NewModel creates the browser view over a shared engine and render sink.
func NewModel(eng *filter.Engine, state *filter.Latest) Model {
	return Model{eng: eng, state: state}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.ensureCursorVisible()
}

// Refresh clamps the cursor after the engine's results changed elsewhere
// (initial load, label toggled from the labels view).
func (m *Model) Refresh() {
	m.clampCursor()
}

// IsTyping reports whether keystrokes belong to the search input.
func (m Model) IsTyping() bool {
	return m.searchTyping
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.searchTyping {
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Until the note set arrives, every interaction is a no-op.
	if !m.eng.Ready() {
		return m, nil
	}

	if m.showDetail {
		return m.updateDetail(keyMsg)
	}
	if m.searchTyping {
		return m.updateSearchTyping(keyMsg)
	}
	return m.updateList(keyMsg)
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)

	case "k", "up":
		m.moveCursor(-1)

	case "g":
		m.cursor = 0
		m.ensureCursorVisible()

	case "G":
		m.cursor = len(m.state.Results) - 1
		m.clampCursor()

	case "/":
		m.searchActive = true
		m.searchTyping = true
		m.searchInput = textinput.New()
		m.searchInput.Placeholder = "type to filter..."
		m.searchInput.CharLimit = 256
		m.searchInput.Width = 40
		m.searchInput.SetValue(m.eng.Query())
		return m, m.searchInput.Focus()

	case "l":
		return m, messages.SwitchView(messages.ViewLabels)

	case "enter":
		if len(m.state.Results) > 0 {
			m.showDetail = true
		}

	case "esc":
		// Peel filters off one at a time: label first, then query.
		if m.eng.ActiveLabel() != "" {
			m.eng.ToggleLabel(m.eng.ActiveLabel())
			m.clampCursor()
		} else if m.eng.Query() != "" {
			m.eng.SetQuery("")
			m.searchActive = false
			m.clampCursor()
		}
	}

	return m, nil
}

func (m Model) updateSearchTyping(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchTyping = false
		m.searchInput.Blur()
		if m.eng.Query() == "" {
			m.searchActive = false
		}
		return m, nil

	case "esc":
		m.searchTyping = false
		m.searchActive = false
		m.searchInput.Blur()
		m.eng.SetQuery("")
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Live filter on every keystroke.
	m.eng.SetQuery(m.searchInput.Value())
	m.cursor = 0
	m.scrollOffset = 0
	return m, cmd
}

func (m Model) updateDetail(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.showDetail = false
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	}
	return m, nil
}

// HintText returns the hint line for the current mode.
func (m Model) HintText() string {
	if m.searchTyping {
		return "type to filter  enter:confirm  esc:clear"
	}
	if m.showDetail {
		return "j/k:next/prev note  esc:close"
	}
	return "j/k:navigate  /:search  l:labels  enter:details  esc:clear filter"
}

func (m Model) View() string {
	if !m.eng.Ready() {
		return loadingStyle.Render("Loading notes...")
	}

	if m.showDetail {
		return m.renderDetail()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if m.searchActive || m.searchTyping {
		b.WriteString(searchPromptStyle.Render("/") + m.searchInput.View())
		b.WriteString("\n")
	}

	results := m.state.Results
	if len(results) == 0 {
		b.WriteString(emptyStyle.Render("No notes found."))
		return b.String()
	}

	visible := m.visibleRows()
	end := m.scrollOffset + visible
	if end > len(results) {
		end = len(results)
	}

	for i := m.scrollOffset; i < end; i++ {
		b.WriteString(m.renderRow(i, i == m.cursor))
		b.WriteString("\n")
	}

	if end < len(results) {
		b.WriteString(emptyStyle.Render(fmt.Sprintf("... %d more", len(results)-end)))
	}

	return b.String()
}

func (m Model) renderHeader() string {
	parts := []string{
		headerStyle.Render(fmt.Sprintf("%d/%d notes", len(m.state.Results), m.eng.Count())),
	}
	if q := m.eng.Query(); q != "" && !m.searchActive {
		parts = append(parts, mutedStyle.Render("search: ")+queryStyle.Render(q))
	}
	if l := m.eng.ActiveLabel(); l != "" {
		parts = append(parts, activeLabelStyle.Render(l))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderRow(i int, selected bool) string {
	n := m.state.Results[i]

	prefix := "  "
	title := titleStyle.Render(n.Title)
	if selected {
		prefix = cursorStyle.Render("> ")
		title = selectedTitleStyle.Render(n.Title)
	}

	line := prefix + title
	for _, l := range n.Labels {
		if l == m.eng.ActiveLabel() {
			line += " " + activeLabelStyle.Render(l)
		} else {
			line += " " + labelStyle.Render(l)
		}
	}
	if date := n.FormatDate(); date != "" {
		line += "  " + dateStyle.Render(date)
	}

	if n.Preview != "" && m.width > 0 {
		room := m.width - lipgloss.Width(line) - 5
		if room > 10 {
			// Truncate by display cells so wide and multibyte runes never
			// split or overrun the row budget.
			preview := runewidth.Truncate(n.Preview, room, "...")
			line += "  " + mutedStyle.Render(preview)
		}
	}

	return line
}

func (m Model) renderDetail() string {
	n := m.state.Results[m.cursor]

	var b strings.Builder
	b.WriteString(detailTitleStyle.Render(n.Title) + "\n")
	if date := n.FormatDate(); date != "" {
		b.WriteString(dateStyle.Render(date) + "\n")
	}
	if len(n.Labels) > 0 {
		chips := make([]string, len(n.Labels))
		for i, l := range n.Labels {
			chips[i] = labelStyle.Render(l)
		}
		b.WriteString(strings.Join(chips, " ") + "\n")
	}
	b.WriteString("\n")

	preview := n.Preview
	if preview == "" {
		preview = "(no preview)"
	}
	b.WriteString(lipgloss.NewStyle().Width(min(m.width-8, 72)).Render(preview))
	b.WriteString("\n\n")
	b.WriteString(linkStyle.Render(n.Link()))

	box := detailBoxStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.state.Results) {
		m.cursor = len(m.state.Results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.showDetail && len(m.state.Results) == 0 {
		m.showDetail = false
	}
	m.ensureCursorVisible()
}

// visibleRows returns how many note lines fit in the viewport. The header
// uses one line, the search line one more when active.
func (m *Model) visibleRows() int {
	used := 2
	if m.searchActive || m.searchTyping {
		used++
	}
	visible := m.height - used
	if visible < 1 {
		visible = 1
	}
	return visible
}

func (m *Model) ensureCursorVisible() {
	visible := m.visibleRows()
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	}
	if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}
