package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Selection is a lazy, restartable query over one table. Every iteration
// runs the query again, so the same Selection can be consumed many times.
type Selection struct {
	db    *sqlx.DB
	query string
	args  []any
	err   error
}

// Each calls fn once per matching row, in order. Iteration stops at the first
// error returned by fn.
func (s *Selection) Each(ctx context.Context, fn func(row map[string]any) error) error {
	if s.err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, s.err)
	}
	rows, err := s.db.QueryxContext(ctx, s.query, s.args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	defer rows.Close()

	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return fmt.Errorf("%w: scan: %w", ErrStorage, err)
		}
		if err := fn(row); err != nil {
			return err
		}
	}

	return rows.Err()
}

// Maps collects every row as a column map. An empty result is a nil slice.
func (s *Selection) Maps(ctx context.Context) ([]map[string]any, error) {
	var out []map[string]any
	err := s.Each(ctx, func(row map[string]any) error {
		out = append(out, row)
		return nil
	})
	return out, err
}

// Scan loads every row into dest, a pointer to a slice of structs with db tags.
func (s *Selection) Scan(ctx context.Context, dest any) error {
	if s.err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, s.err)
	}
	if err := s.db.SelectContext(ctx, dest, s.query, s.args...); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}
