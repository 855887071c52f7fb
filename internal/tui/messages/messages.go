package messages

import (
	tea "github.com/charmbracelet/bubbletea"

	"nota/internal/notes"
)

// ViewType represents the different views in the application.
type ViewType int

const (
	ViewBrowser ViewType = iota
	ViewLabels
)

// SwitchViewMsg is sent by child views to switch to a different view.
type SwitchViewMsg struct {
	View ViewType
}

// NotesLoadedMsg is sent when the data source has delivered the note set.
type NotesLoadedMsg struct {
	Notes []notes.Note
}

// LoadFailedMsg is sent when the data source failed.
type LoadFailedMsg struct {
	Err error
}

// ToggleLabelMsg requests toggling the active label on the filter engine.
type ToggleLabelMsg struct {
	Label string
}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}
