package notes

import "time"

// Note is a single browsable item. Notes are immutable once loaded; a
// re-fetch replaces the whole set rather than patching it.
type Note struct {
	Title     string   `json:"title"`
	Preview   string   `json:"preview"`
	Folder    string   `json:"folder"`
	Labels    []string `json:"labels"`
	Timestamp *int64   `json:"timestamp"` // seconds since epoch, nil means no date
}

// Link returns the relative link to the note's page. Folder is an opaque
// path segment provided by the data source; it is not escaped here.
func (n Note) Link() string {
	return "notes/" + n.Folder + "/"
}

// HasLabel reports whether the note carries the given label.
func (n Note) HasLabel(label string) bool {
	for _, l := range n.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// HasDate reports whether the note has a timestamp.
func (n Note) HasDate() bool {
	return n.Timestamp != nil
}

// Date returns the note's timestamp as a local time. Zero when absent.
func (n Note) Date() time.Time {
	if n.Timestamp == nil {
		return time.Time{}
	}
	return time.Unix(*n.Timestamp, 0)
}

// FormatDate renders the note's date as a calendar date with no time
// component, or "" when the note has no timestamp.
func (n Note) FormatDate() string {
	if n.Timestamp == nil {
		return ""
	}
	return n.Date().Format("Jan 2, 2006")
}
