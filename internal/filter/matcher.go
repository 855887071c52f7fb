package filter

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"nota/internal/notes"
)

// DefaultMinScore admits every match the fuzzy library produces. Raising it
// trades recall for precision; exact substring matches always qualify
// regardless of the threshold.
const DefaultMinScore = -10000

// FuzzyMatcher ranks notes with sahilm/fuzzy over title and preview text.
// Ordering is by match score, best first; the library sorts stably, so ties
// keep the original note order.
type FuzzyMatcher struct {
	MinScore int
}

// NewFuzzyMatcher creates a matcher with the given score threshold.
func NewFuzzyMatcher(minScore int) *FuzzyMatcher {
	return &FuzzyMatcher{MinScore: minScore}
}

// noteCorpus adapts a note slice to fuzzy.Source.
type noteCorpus []notes.Note

func (c noteCorpus) String(i int) string {
	return c[i].Title + " " + c[i].Preview
}

func (c noteCorpus) Len() int {
	return len(c)
}

// Rank returns indices of matching notes, best match first.
func (m *FuzzyMatcher) Rank(query string, ns []notes.Note) []int {
	corpus := noteCorpus(ns)
	matches := fuzzy.FindFrom(query, corpus)

	needle := strings.ToLower(query)
	result := make([]int, 0, len(matches))
	for _, match := range matches {
		if match.Score < m.MinScore && !strings.Contains(strings.ToLower(corpus.String(match.Index)), needle) {
			continue
		}
		result = append(result, match.Index)
	}
	return result
}
