package commands

import (
	"context"

	"github.com/user/bark/internal/db"
)

const (
	OrderByDate  = "date_added"
	OrderByTitle = "title"
	OrderByID    = "id"
)

// ListBookmarks returns every bookmark sorted ascending by a column fixed
// at construction.
type ListBookmarks struct {
	store   Storage
	orderBy string
}

// NewListBookmarks sorts by orderBy, or by date added when it is empty.
func NewListBookmarks(store Storage, orderBy string) *ListBookmarks {
	if orderBy == "" {
		orderBy = OrderByDate
	}
	return &ListBookmarks{store: store, orderBy: orderBy}
}

func (c *ListBookmarks) OrderBy() string {
	return c.orderBy
}

func (c *ListBookmarks) Execute(ctx context.Context, _ Data) (Result, error) {
	var bookmarks []db.Bookmark
	if err := c.store.Select(BookmarksTable, nil, c.orderBy).Scan(ctx, &bookmarks); err != nil {
		return Result{}, err
	}
	if bookmarks == nil {
		bookmarks = []db.Bookmark{}
	}
	return Result{Bookmarks: bookmarks}, nil
}
