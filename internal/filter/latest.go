package filter

import "nota/internal/notes"

// Latest is a Renderer that retains the most recent engine output. Callers
// that poll after driving the engine (the CLI, the TUI event loop) read the
// fields directly.
type Latest struct {
	Labels  []string
	Results []notes.Note
}

func (l *Latest) LabelsChanged(labels []string) {
	l.Labels = labels
}

func (l *Latest) ResultsChanged(ns []notes.Note) {
	l.Results = ns
}
