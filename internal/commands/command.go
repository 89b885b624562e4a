// Package commands holds the user-invokable bookmark operations. Every
// operation implements Command and talks to storage only through Storage.
package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/user/bark/internal/db"
)

// BookmarksTable is the table every bookmark command works on.
const BookmarksTable = "bookmarks"

// Data is the input map handed to Execute. Commands that take no input
// receive nil.
type Data map[string]any

// Result is what a command hands back to its caller: a status message, an
// ordered list of bookmarks, or a request to quit.
type Result struct {
	Message   string
	Bookmarks []db.Bookmark
	Quit      bool
}

// Command is the shared contract of every operation.
type Command interface {
	Execute(ctx context.Context, data Data) (Result, error)
}

// Storage is the subset of the store the commands rely on.
type Storage interface {
	CreateTable(ctx context.Context, name string, columns []db.Column) error
	Insert(ctx context.Context, table string, fields db.Fields) (int64, error)
	Select(table string, criteria db.Criteria, orderBy string) *db.Selection
	Update(ctx context.Context, table string, criteria db.Criteria, fields db.Fields) (int64, error)
	Delete(ctx context.Context, table string, criteria db.Criteria) (int64, error)
}

// parseID accepts the id forms callers produce: integers from code and
// numeric strings from prompts.
func parseID(v any) (int64, error) {
	switch id := v.(type) {
	case int:
		return int64(id), nil
	case int64:
		return id, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: id %q is not a number", ErrInvalidInput, id)
		}
		return n, nil
	case nil:
		return 0, fmt.Errorf("%w: missing id", ErrInvalidInput)
	default:
		return 0, fmt.Errorf("%w: unsupported id type %T", ErrInvalidInput, v)
	}
}
