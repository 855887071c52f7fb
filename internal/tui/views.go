package tui

import "nota/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewBrowser = messages.ViewBrowser
	ViewLabels  = messages.ViewLabels
)

type SwitchViewMsg = messages.SwitchViewMsg
type NotesLoadedMsg = messages.NotesLoadedMsg
type LoadFailedMsg = messages.LoadFailedMsg
type ToggleLabelMsg = messages.ToggleLabelMsg
