package commands

import "errors"

var (
	// ErrNotFound is returned by Edit and Delete when no bookmark has the id.
	ErrNotFound = errors.New("bookmark not found")
	// ErrImport wraps any failure that aborts an import. Bookmarks added
	// before the failure stay in place.
	ErrImport         = errors.New("import failed")
	ErrInvalidInput   = errors.New("invalid input")
	ErrImmutableField = errors.New("field cannot be changed")
)
