package labels

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"nota/internal/filter"
	"nota/internal/tui/messages"
)

// Model lists the label universe with note counts. Selecting a label
// toggles it as the single active filter and returns to the browser.
type Model struct {
	eng *filter.Engine

	cursor int
	width  int
	height int
}

// NewModel creates the labels view over a shared engine.
func NewModel(eng *filter.Engine) Model {
	return Model{eng: eng}
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	labels := m.eng.Labels()

	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(labels)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "enter", " ":
		if m.cursor < len(labels) {
			label := labels[m.cursor]
			return m, tea.Batch(
				func() tea.Msg { return messages.ToggleLabelMsg{Label: label} },
				messages.SwitchView(messages.ViewBrowser),
			)
		}

	case "esc", "l":
		return m, messages.SwitchView(messages.ViewBrowser)
	}

	return m, nil
}

// HintText returns the hint line for this view.
func (m Model) HintText() string {
	return "j/k:navigate  enter:toggle label  esc:back"
}

func (m Model) View() string {
	labels := m.eng.Labels()

	var b strings.Builder
	b.WriteString(headerStyle.Render("Labels"))
	b.WriteString("\n\n")

	if len(labels) == 0 {
		b.WriteString(emptyStyle.Render("No labels."))
		return b.String()
	}

	for i, l := range labels {
		prefix := "  "
		name := nameStyle.Render(l)
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
			name = selectedStyle.Render(l)
		}
		if l == m.eng.ActiveLabel() {
			name += " " + activeMarkStyle.Render("(active)")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, name, countStyle.Render(fmt.Sprintf("%d", m.eng.CountByLabel(l)))))
	}

	return b.String()
}
