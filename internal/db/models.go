package db

import "time"

// TimeLayout is the fixed-width UTC layout used for date_added, so that
// lexical order of the stored text matches chronological order.
const TimeLayout = "2006-01-02T15:04:05.000000Z"

// Bookmark is one row of the bookmarks table.
type Bookmark struct {
	ID        int64   `db:"id" json:"id"`
	Title     string  `db:"title" json:"title"`
	URL       string  `db:"url" json:"url"`
	Notes     *string `db:"notes" json:"notes,omitempty"`
	DateAdded string  `db:"date_added" json:"date_added"`
}

// Added parses DateAdded.
func (b Bookmark) Added() (time.Time, error) {
	return time.Parse(TimeLayout, b.DateAdded)
}

// NotesOrEmpty returns the notes text, or "" when notes are NULL.
func (b Bookmark) NotesOrEmpty() string {
	if b.Notes == nil {
		return ""
	}
	return *b.Notes
}

// FormatTime renders t in TimeLayout after converting it to UTC.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
