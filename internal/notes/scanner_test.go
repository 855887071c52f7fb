package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func writeNote(t *testing.T, dir, folder, content string) {
	t.Helper()
	noteDir := filepath.Join(dir, folder)
	if err := os.MkdirAll(noteDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(noteDir, "main.md"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDirSourceReadsRegisteredNotes(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "notes.json"), []byte(`[
		{"title": "Graph Layouts", "folder": "graph-layouts", "labels": ["math"]},
		{"title": "Trip Notes", "folder": "trip", "labels": ["travel", "drafts"]}
	]`), 0644)
	writeNote(t, dir, "graph-layouts", "---\ndate: 2026-01-05\n---\n\n# Graph Layouts\n\nForce-directed layouts in practice.\n")
	writeNote(t, dir, "trip", "---\ndate: 2026-02-10\n---\n\nPacking list and itinerary.\n")

	got, err := NewDirSource(dir).FetchAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(got))
	}

	// Newest first.
	if got[0].Title != "Trip Notes" || got[1].Title != "Graph Layouts" {
		t.Errorf("expected [Trip Notes, Graph Layouts], got [%s, %s]", got[0].Title, got[1].Title)
	}
	if got[1].Preview != "Force-directed layouts in practice." {
		t.Errorf("unexpected preview: %q", got[1].Preview)
	}
	if !got[0].HasLabel("travel") || !got[0].HasLabel("drafts") {
		t.Error("expected registry labels to carry over")
	}
	if got[0].Link() != "notes/trip/" {
		t.Errorf("unexpected link: %q", got[0].Link())
	}
}

func TestDirSourceSkipsMissingFolders(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "notes.json"), []byte(`[
		{"title": "Exists", "folder": "exists", "labels": []},
		{"title": "Gone", "folder": "gone", "labels": []}
	]`), 0644)
	writeNote(t, dir, "exists", "Some body text.\n")

	got, err := NewDirSource(dir).FetchAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Exists" {
		t.Fatalf("expected only the existing note, got %d notes", len(got))
	}
}

func TestDirSourceMissingRegistry(t *testing.T) {
	if _, err := NewDirSource(t.TempDir()).FetchAll(); err == nil {
		t.Fatal("expected an error when notes.json is absent")
	}
}

func TestFrontmatterTitleOverridesRegistry(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "notes.json"), []byte(`[
		{"title": "Registry Title", "folder": "a", "labels": []}
	]`), 0644)
	writeNote(t, dir, "a", "---\ntitle: Frontmatter Title\n---\n\nBody.\n")

	got, err := NewDirSource(dir).FetchAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Title != "Frontmatter Title" {
		t.Errorf("expected frontmatter title to win, got %q", got[0].Title)
	}
}

func TestExtractPreviewSkipsHeadingsAndTruncatesAtWordBoundary(t *testing.T) {
	md := "# Heading\n\n" + strings.Repeat("word ", 60) + "\n"
	got := extractPreview([]byte(md), 50)

	if strings.Contains(got, "Heading") {
		t.Errorf("preview should not contain heading text: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected truncated preview to end with ..., got %q", got)
	}
	if len(got) > 50+len("...") {
		t.Errorf("preview too long (%d): %q", len(got), got)
	}
	if strings.Contains(strings.TrimSuffix(got, "..."), "wor ") {
		t.Errorf("expected truncation at a word boundary: %q", got)
	}
}

func TestExtractPreviewTruncatesMultibyteTextOnRuneBoundary(t *testing.T) {
	md := strings.Repeat("日本語の文章", 20) + "\n"
	got := extractPreview([]byte(md), 10)

	if !utf8.ValidString(got) {
		t.Fatalf("preview is not valid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected truncated preview to end with ..., got %q", got)
	}
	if n := utf8.RuneCountInString(strings.TrimSuffix(got, "...")); n != 10 {
		t.Errorf("expected a 10-rune cut for spaceless text, got %d runes: %q", n, got)
	}
}

func TestExtractPreviewCollapsesWhitespace(t *testing.T) {
	got := extractPreview([]byte("First line\ncontinues here.\n\nSecond paragraph.\n"), 200)
	want := "First line continues here. Second paragraph."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
