package commands

import (
	"context"

	"github.com/user/bark/internal/db"
)

// BookmarkColumns is the bookmarks schema.
var BookmarkColumns = []db.Column{
	{Name: "id", Spec: "integer primary key autoincrement"},
	{Name: "title", Spec: "text not null"},
	{Name: "url", Spec: "text not null"},
	{Name: "notes", Spec: "text"},
	{Name: "date_added", Spec: "text not null"},
}

// CreateBookmarksTable declares the bookmarks table. Running it against an
// existing table is a no-op.
type CreateBookmarksTable struct {
	store Storage
}

func NewCreateBookmarksTable(store Storage) *CreateBookmarksTable {
	return &CreateBookmarksTable{store: store}
}

func (c *CreateBookmarksTable) Execute(ctx context.Context, _ Data) (Result, error) {
	if err := c.store.CreateTable(ctx, BookmarksTable, BookmarkColumns); err != nil {
		return Result{}, err
	}
	return Result{}, nil
}
