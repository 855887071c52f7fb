package notes

import (
	"encoding/json"
	"fmt"
	"os"
)

// DataSource provides the full note list once. Implementations may fail;
// the caller decides how to surface that (there is no partial-success state
// for a note browser).
type DataSource interface {
	FetchAll() ([]Note, error)
}

// FileSource reads a precomputed notes dataset from a JSON file. The file
// holds an array of notes in display order:
//
//	[{"title": ..., "preview": ..., "folder": ..., "labels": [...], "timestamp": ...}]
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for the given dataset path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// FetchAll loads and validates the dataset. It fails fast on a malformed
// payload rather than silently degrading.
func (s *FileSource) FetchAll() ([]Note, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading notes data: %w", err)
	}
	return ParseDataset(data)
}

// ParseDataset decodes and validates a notes dataset payload. The payload
// must be a JSON array; every entry needs a non-empty title and folder,
// string labels, and an integer or null timestamp.
func ParseDataset(data []byte) ([]Note, error) {
	var parsed []Note
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parsing notes data: %w", err)
	}

	for i, n := range parsed {
		if n.Title == "" {
			return nil, fmt.Errorf("notes data entry %d: missing title", i)
		}
		if n.Folder == "" {
			return nil, fmt.Errorf("notes data entry %d (%q): missing folder", i, n.Title)
		}
	}

	return parsed, nil
}
