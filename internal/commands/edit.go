package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/bark/internal/db"
)

// EditBookmark changes a single field of the bookmark with the given id.
//
// Input keys: id, and update holding exactly one field -> new value pair.
// An id that matches nothing yields ErrNotFound.
type EditBookmark struct {
	store Storage
}

func NewEditBookmark(store Storage) *EditBookmark {
	return &EditBookmark{store: store}
}

func (c *EditBookmark) Execute(ctx context.Context, data Data) (Result, error) {
	id, err := parseID(data["id"])
	if err != nil {
		return Result{}, err
	}
	fields, err := updateFields(data["update"])
	if err != nil {
		return Result{}, err
	}

	n, err := c.store.Update(ctx, BookmarksTable, db.Criteria{"id": id}, fields)
	if err != nil {
		return Result{}, err
	}
	if n == 0 {
		return Result{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	return Result{Message: "Bookmark updated!"}, nil
}

func updateFields(v any) (db.Fields, error) {
	fields := db.Fields{}
	switch u := v.(type) {
	case map[string]any:
		for k, val := range u {
			fields[strings.ToLower(strings.TrimSpace(k))] = val
		}
	case map[string]string:
		for k, val := range u {
			fields[strings.ToLower(strings.TrimSpace(k))] = val
		}
	case db.Fields:
		for k, val := range u {
			fields[strings.ToLower(strings.TrimSpace(k))] = val
		}
	case nil:
		return nil, fmt.Errorf("%w: missing update", ErrInvalidInput)
	default:
		return nil, fmt.Errorf("%w: unsupported update type %T", ErrInvalidInput, v)
	}

	if len(fields) != 1 {
		return nil, fmt.Errorf("%w: update must name exactly one field, got %d", ErrInvalidInput, len(fields))
	}
	for k := range fields {
		if rowIDAliases[k] {
			return nil, fmt.Errorf("%w: %s", ErrImmutableField, k)
		}
		if !editable(k) {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidInput, k)
		}
	}

	return fields, nil
}

// rowIDAliases all name the integer primary key in sqlite.
var rowIDAliases = map[string]bool{"id": true, "rowid": true, "oid": true, "_rowid_": true}

func editable(name string) bool {
	for _, c := range BookmarkColumns {
		if c.Name == name && !rowIDAliases[name] {
			return true
		}
	}
	return false
}
