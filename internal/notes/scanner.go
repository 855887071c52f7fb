package notes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"nota/internal/logs"
)

// DefaultPreviewLength is the preview truncation limit used when a DirSource
// is created without an explicit length.
const DefaultPreviewLength = 200

const noteFileName = "main.md"

// registryEntry is one row of the notes.json registry at the root of a
// notes directory.
type registryEntry struct {
	Title  string   `json:"title"`
	Folder string   `json:"folder"`
	Labels []string `json:"labels"`
}

// DirSource builds the note list directly from a notes directory: a
// notes.json registry listing title/folder/labels, plus one subdirectory
// per note containing a main.md document. The markdown may carry YAML
// frontmatter overriding title and date.
type DirSource struct {
	Dir           string
	PreviewLength int
}

// NewDirSource creates a DirSource rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir, PreviewLength: DefaultPreviewLength}
}

// FetchAll reads the registry and every registered note folder. Entries
// whose folder is missing are skipped with a warning. The result is ordered
// newest first.
func (s *DirSource) FetchAll() ([]Note, error) {
	registryPath := filepath.Join(s.Dir, "notes.json")
	data, err := os.ReadFile(registryPath)
	if err != nil {
		return nil, fmt.Errorf("reading notes registry: %w", err)
	}

	var registry []registryEntry
	if err := json.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("parsing notes registry: %w", err)
	}

	previewLen := s.PreviewLength
	if previewLen <= 0 {
		previewLen = DefaultPreviewLength
	}

	var result []Note
	for i, entry := range registry {
		if entry.Title == "" || entry.Folder == "" {
			return nil, fmt.Errorf("notes registry entry %d: missing title or folder", i)
		}

		notePath := filepath.Join(s.Dir, entry.Folder, noteFileName)
		content, err := os.ReadFile(notePath)
		if err != nil {
			logs.Logger.Printf("Warning: skipping note %q: %v", entry.Folder, err)
			continue
		}

		note := parseNoteContent(content, previewLen)
		note.Folder = entry.Folder
		note.Labels = entry.Labels
		if note.Title == "" {
			note.Title = entry.Title
		}
		if note.Timestamp == nil {
			if info, err := os.Stat(notePath); err == nil {
				ts := info.ModTime().Unix()
				note.Timestamp = &ts
			}
		}

		result = append(result, note)
	}

	// Newest first, matching how the dataset file is produced.
	sort.SliceStable(result, func(i, j int) bool {
		var ti, tj int64
		if result[i].Timestamp != nil {
			ti = *result[i].Timestamp
		}
		if result[j].Timestamp != nil {
			tj = *result[j].Timestamp
		}
		return ti > tj
	})

	return result, nil
}

type noteFrontmatter struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
}

// parseNoteContent extracts title, date, and a plain-text preview from a
// markdown note, consuming YAML frontmatter when present.
func parseNoteContent(content []byte, previewLen int) Note {
	fm, body := splitFrontmatter(content)

	var note Note
	note.Title = fm.Title
	if fm.Date != "" {
		if parsed, err := time.Parse("2006-01-02", fm.Date); err == nil {
			ts := parsed.Unix()
			note.Timestamp = &ts
		}
	}

	note.Preview = extractPreview(body, previewLen)
	return note
}

func splitFrontmatter(content []byte) (noteFrontmatter, []byte) {
	var fm noteFrontmatter

	lines := bytes.Split(content, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return fm, content
	}

	var fmEnd int
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			fmEnd = i
			break
		}
	}
	if fmEnd == 0 {
		return fm, content
	}

	fmBytes := bytes.Join(lines[1:fmEnd], []byte("\n"))
	if err := yaml.Unmarshal(fmBytes, &fm); err != nil {
		return noteFrontmatter{}, content
	}

	return fm, bytes.Join(lines[fmEnd+1:], []byte("\n"))
}

var spaceRun = regexp.MustCompile(`\s+`)

// extractPreview walks the markdown AST collecting body text, skipping
// headings and code, and truncates at a word boundary.
func extractPreview(markdown []byte, maxLen int) string {
	reader := text.NewReader(markdown)
	parser := goldmark.DefaultParser()
	doc := parser.Parse(reader)

	var preview strings.Builder
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindHeading, ast.KindCodeBlock, ast.KindFencedCodeBlock:
			return ast.WalkSkipChildren, nil
		case ast.KindText:
			if preview.Len() > maxLen {
				return ast.WalkStop, nil
			}
			// Separator after every leaf; the whitespace collapse below
			// normalizes the joins.
			preview.Write(n.(*ast.Text).Segment.Value(markdown))
			preview.WriteString(" ")
		}

		return ast.WalkContinue, nil
	})

	out := strings.TrimSpace(spaceRun.ReplaceAllString(preview.String(), " "))
	if runes := []rune(out); len(runes) > maxLen {
		// Rune-based cut so multibyte text never splits mid-character.
		cut := string(runes[:maxLen])
		if idx := strings.LastIndex(cut, " "); idx > 0 {
			cut = cut[:idx]
		}
		out = cut + "..."
	}
	return out
}
