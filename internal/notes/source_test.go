package notes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSourcePreservesDatasetOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes-data.json")
	os.WriteFile(path, []byte(`[
		{"title": "Beta", "preview": "second", "folder": "beta", "labels": ["y"], "timestamp": 1700000000},
		{"title": "Alpha", "preview": "first", "folder": "alpha", "labels": ["x"], "timestamp": null}
	]`), 0644)

	got, err := NewFileSource(path).FetchAll()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(got))
	}
	if got[0].Title != "Beta" || got[1].Title != "Alpha" {
		t.Errorf("expected file order [Beta Alpha], got [%s %s]", got[0].Title, got[1].Title)
	}
	if got[0].Timestamp == nil || *got[0].Timestamp != 1700000000 {
		t.Error("expected Beta to keep its timestamp")
	}
	if got[1].Timestamp != nil {
		t.Error("expected Alpha to have a nil timestamp for JSON null")
	}
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.json")).FetchAll()
	if err == nil {
		t.Fatal("expected an error for a missing dataset file")
	}
}

func TestParseDatasetRejectsMalformedPayloads(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"not an array", `{"title": "Alpha"}`},
		{"missing title", `[{"preview": "p", "folder": "a", "labels": []}]`},
		{"missing folder", `[{"title": "Alpha", "preview": "p", "labels": []}]`},
		{"non-string labels", `[{"title": "Alpha", "folder": "a", "labels": [1, 2]}]`},
		{"string timestamp", `[{"title": "Alpha", "folder": "a", "labels": [], "timestamp": "yesterday"}]`},
	}

	for _, tc := range cases {
		if _, err := ParseDataset([]byte(tc.payload)); err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}

func TestParseDatasetEmptyArray(t *testing.T) {
	got, err := ParseDataset([]byte(`[]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no notes, got %d", len(got))
	}
}
