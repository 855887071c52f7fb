package notes

import (
	"testing"
	"time"
)

func TestLinkUsesFolderAsPathSegment(t *testing.T) {
	n := Note{Title: "Graph Layouts", Folder: "graph-layouts"}
	if got := n.Link(); got != "notes/graph-layouts/" {
		t.Errorf("Link: expected notes/graph-layouts/, got %q", got)
	}
}

func TestHasLabel(t *testing.T) {
	n := Note{Title: "A", Labels: []string{"math", "drafts"}}
	if !n.HasLabel("math") {
		t.Error("expected HasLabel(math) to be true")
	}
	if n.HasLabel("Math") {
		t.Error("labels are case-sensitive, HasLabel(Math) should be false")
	}
	if n.HasLabel("") {
		t.Error("HasLabel(\"\") should be false for a labeled note")
	}
}

func TestFormatDateRendersCalendarDateOnly(t *testing.T) {
	ts := time.Date(2026, time.March, 14, 15, 9, 2, 0, time.Local).Unix()
	n := Note{Title: "A", Timestamp: &ts}
	if got := n.FormatDate(); got != "Mar 14, 2026" {
		t.Errorf("FormatDate: expected Mar 14, 2026, got %q", got)
	}
}

func TestFormatDateEmptyWhenNoTimestamp(t *testing.T) {
	n := Note{Title: "A"}
	if n.HasDate() {
		t.Error("expected HasDate to be false")
	}
	if got := n.FormatDate(); got != "" {
		t.Errorf("FormatDate: expected empty string, got %q", got)
	}
}
