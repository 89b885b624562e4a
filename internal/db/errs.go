package db

import "errors"

var (
	// ErrSchema is returned when a table cannot be created as requested,
	// either because the DDL was rejected or an existing table disagrees.
	ErrSchema = errors.New("schema error")
	// ErrStorage wraps failures of a row mutation, such as a NOT NULL
	// constraint or a missing table.
	ErrStorage = errors.New("storage error")

	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrNoFields          = errors.New("no fields to update")
)
