package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/user/bark/internal/db"
)

// NoteWriter produces a short note describing a bookmarked page.
type NoteWriter interface {
	Summarize(ctx context.Context, title, url string) (string, error)
}

// Annotate fills in notes for bookmarks that have none. Each note is written
// through EditBookmark; a bookmark whose note cannot be produced is skipped.
type Annotate struct {
	store Storage
	notes NoteWriter
	edit  Command
}

func NewAnnotate(store Storage, notes NoteWriter) *Annotate {
	return &Annotate{store: store, notes: notes, edit: NewEditBookmark(store)}
}

func (c *Annotate) Execute(ctx context.Context, _ Data) (Result, error) {
	var all []db.Bookmark
	if err := c.store.Select(BookmarksTable, nil, OrderByID).Scan(ctx, &all); err != nil {
		return Result{}, err
	}

	var pending []db.Bookmark
	for _, b := range all {
		if b.NotesOrEmpty() == "" {
			pending = append(pending, b)
		}
	}

	annotated := 0
	for _, b := range pending {
		note, err := c.notes.Summarize(ctx, b.Title, b.URL)
		if err != nil {
			slog.Warn("annotate: summarize failed", "id", b.ID, "url", b.URL, "error", err)
			continue
		}
		if note == "" {
			slog.Warn("annotate: empty note", "id", b.ID, "url", b.URL)
			continue
		}

		_, err = c.edit.Execute(ctx, Data{"id": b.ID, "update": map[string]any{"notes": note}})
		if err != nil {
			return Result{}, fmt.Errorf("annotating bookmark %d: %w", b.ID, err)
		}
		annotated++
	}

	return Result{Message: fmt.Sprintf("Annotated %d of %d bookmarks", annotated, len(pending))}, nil
}
