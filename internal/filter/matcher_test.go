package filter

import (
	"testing"

	"nota/internal/notes"
)

func TestFuzzyMatcherToleratesCase(t *testing.T) {
	ns := []notes.Note{
		{Title: "Alpha", Preview: "first note"},
		{Title: "Beta", Preview: "second note"},
	}
	got := NewFuzzyMatcher(DefaultMinScore).Rank("ALPHA", ns)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("expected [0], got %v", got)
	}
}

func TestFuzzyMatcherSearchesPreviewText(t *testing.T) {
	ns := []notes.Note{
		{Title: "Untitled", Preview: "thoughts on quaternions"},
		{Title: "Other", Preview: "nothing relevant"},
	}
	got := NewFuzzyMatcher(DefaultMinScore).Rank("quaternions", ns)
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("expected the preview match at index 0, got %v", got)
	}
}

func TestFuzzyMatcherRanksTighterMatchFirst(t *testing.T) {
	ns := []notes.Note{
		{Title: "miscellaneous links", Preview: ""},
		{Title: "mls", Preview: ""},
	}
	got := NewFuzzyMatcher(DefaultMinScore).Rank("mls", ns)
	if len(got) == 0 {
		t.Fatal("expected matches")
	}
	if got[0] != 1 {
		t.Errorf("expected the exact title to rank first, got %v", got)
	}
}

func TestThresholdDropsWeakMatchesButKeepsSubstrings(t *testing.T) {
	ns := []notes.Note{
		{Title: "plan", Preview: ""},
		{Title: "p l x a y n", Preview: ""},
	}
	got := NewFuzzyMatcher(0).Rank("plan", ns)

	for _, idx := range got {
		if idx == 0 {
			return
		}
	}
	t.Errorf("expected the substring match to survive the threshold, got %v", got)
}

func TestEmptyCorpus(t *testing.T) {
	if got := NewFuzzyMatcher(DefaultMinScore).Rank("anything", nil); len(got) != 0 {
		t.Errorf("expected no matches on an empty corpus, got %v", got)
	}
}
