package commands

import (
	"context"
	"fmt"

	"github.com/user/bark/internal/db"
)

// DeleteBookmark removes the bookmark whose id is data["id"].
type DeleteBookmark struct {
	store Storage
}

func NewDeleteBookmark(store Storage) *DeleteBookmark {
	return &DeleteBookmark{store: store}
}

func (c *DeleteBookmark) Execute(ctx context.Context, data Data) (Result, error) {
	id, err := parseID(data["id"])
	if err != nil {
		return Result{}, err
	}

	n, err := c.store.Delete(ctx, BookmarksTable, db.Criteria{"id": id})
	if err != nil {
		return Result{}, err
	}
	if n == 0 {
		return Result{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	return Result{Message: "Bookmark deleted!"}, nil
}
