package filter

import (
	"sort"

	"nota/internal/notes"
)

// Matcher ranks notes against a query, best match first, returning indices
// into the note slice. Injected so the matching algorithm can be swapped or
// stubbed in tests.
type Matcher interface {
	Rank(query string, notes []notes.Note) []int
}

// Renderer consumes engine output. LabelsChanged fires once per Load,
// ResultsChanged after every recompute, including the initial unfiltered
// render and the empty case.
type Renderer interface {
	LabelsChanged(labels []string)
	ResultsChanged(notes []notes.Note)
}

// Engine holds the full note set and the current filter state (query,
// active label) and computes the subset of notes to display. The displayed
// list is always a pure function of the note set and the filter state.
type Engine struct {
	matcher  Matcher
	renderer Renderer

	notes       []notes.Note
	labels      []string
	query       string
	activeLabel string
	results     []notes.Note
	loaded      bool
}

// NewEngine creates an engine with the given matcher and renderer. The
// renderer may be nil when the caller reads results directly.
func NewEngine(matcher Matcher, renderer Renderer) *Engine {
	return &Engine{matcher: matcher, renderer: renderer}
}

// Load replaces the note set wholesale, resets the filter state, rebuilds
// the label universe, and triggers an initial unfiltered render.
func (e *Engine) Load(ns []notes.Note) {
	e.notes = ns
	e.query = ""
	e.activeLabel = ""
	e.labels = distinctLabels(ns)
	e.loaded = true

	if e.renderer != nil {
		e.renderer.LabelsChanged(e.labels)
	}
	e.Recompute()
}

// SetQuery updates the search query and recomputes. Any string is accepted.
func (e *Engine) SetQuery(q string) {
	e.query = q
	e.Recompute()
}

// ToggleLabel clears the active label if it equals label, otherwise makes
// label the sole active label. Recomputes either way.
func (e *Engine) ToggleLabel(label string) {
	if e.activeLabel == label {
		e.activeLabel = ""
	} else {
		e.activeLabel = label
	}
	e.Recompute()
}

// Recompute derives the displayed list: fuzzy-ranked candidates when a
// query is present (original order otherwise), narrowed to the active label
// while preserving relative order. The result may be empty; that is a valid
// state, not an error.
func (e *Engine) Recompute() []notes.Note {
	var candidates []notes.Note
	if e.query == "" {
		candidates = e.notes
	} else {
		for _, idx := range e.matcher.Rank(e.query, e.notes) {
			candidates = append(candidates, e.notes[idx])
		}
	}

	if e.activeLabel != "" {
		var narrowed []notes.Note
		for _, n := range candidates {
			if n.HasLabel(e.activeLabel) {
				narrowed = append(narrowed, n)
			}
		}
		candidates = narrowed
	}

	e.results = candidates
	if e.renderer != nil {
		e.renderer.ResultsChanged(e.results)
	}
	return e.results
}

// Labels returns the label universe: the sorted distinct labels across the
// note set. Rebuilt only on Load, never by SetQuery or ToggleLabel.
func (e *Engine) Labels() []string {
	return e.labels
}

// Results returns the list from the most recent recompute.
func (e *Engine) Results() []notes.Note {
	return e.results
}

// Query returns the current search query.
func (e *Engine) Query() string {
	return e.query
}

// ActiveLabel returns the active label, or "" when no label filter applies.
func (e *Engine) ActiveLabel() string {
	return e.activeLabel
}

// Ready reports whether a note set has been loaded. Until then filtering
// operations run against an empty set and render nothing.
func (e *Engine) Ready() bool {
	return e.loaded
}

// Count returns the size of the full note set.
func (e *Engine) Count() int {
	return len(e.notes)
}

// CountByLabel returns how many notes carry the given label.
func (e *Engine) CountByLabel(label string) int {
	count := 0
	for _, n := range e.notes {
		if n.HasLabel(label) {
			count++
		}
	}
	return count
}

func distinctLabels(ns []notes.Note) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, n := range ns {
		for _, l := range n.Labels {
			if !seen[l] {
				seen[l] = true
				labels = append(labels, l)
			}
		}
	}
	sort.Strings(labels)
	return labels
}
