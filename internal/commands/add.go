package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/user/bark/internal/db"
)

// AddBookmark inserts one bookmark.
//
// Input keys: title, url, notes (optional) and timestamp (optional). The
// caller is responsible for handing over a non-empty title and url; only
// the NOT NULL constraints of the table are enforced here.
type AddBookmark struct {
	store Storage
	now   func() time.Time
}

func NewAddBookmark(store Storage) *AddBookmark {
	return &AddBookmark{store: store, now: time.Now}
}

func (c *AddBookmark) Execute(ctx context.Context, data Data) (Result, error) {
	fields := db.Fields{}
	for _, k := range []string{"title", "url", "notes"} {
		if v, ok := data[k]; ok {
			fields[k] = v
		}
	}

	added, err := c.dateAdded(data["timestamp"])
	if err != nil {
		return Result{}, err
	}
	fields["date_added"] = added

	if _, err := c.store.Insert(ctx, BookmarksTable, fields); err != nil {
		return Result{}, err
	}

	return Result{Message: "Bookmark added!"}, nil
}

func (c *AddBookmark) dateAdded(ts any) (string, error) {
	switch t := ts.(type) {
	case nil:
		return db.FormatTime(c.now()), nil
	case time.Time:
		if t.IsZero() {
			return db.FormatTime(c.now()), nil
		}
		return db.FormatTime(t), nil
	case *time.Time:
		if t == nil || t.IsZero() {
			return db.FormatTime(c.now()), nil
		}
		return db.FormatTime(*t), nil
	case string:
		for _, layout := range []string{db.TimeLayout, time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return db.FormatTime(parsed), nil
			}
		}
		return "", fmt.Errorf("%w: timestamp %q", ErrInvalidInput, t)
	default:
		return "", fmt.Errorf("%w: unsupported timestamp type %T", ErrInvalidInput, ts)
	}
}
