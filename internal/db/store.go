package db

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultOrder is the column used when Select is not given one.
const DefaultOrder = "rowid"

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Column is one entry of a table definition, e.g. {"title", "text not null"}.
type Column struct {
	Name string
	Spec string
}

// Criteria maps column names to the value they must equal.
type Criteria map[string]any

// Fields maps column names to the value to write.
type Fields map[string]any

// Store is a schema-agnostic wrapper over a SQLite database. It owns the
// connection for its whole lifetime.
type Store struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the SQLite database at path.
func Open(path string) (*Store, error) {
	slog.Debug("opening database", "path", path)
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: on ping context", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for ad-hoc queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// CreateTable creates the table if it does not exist. An existing table with
// a different set of column names yields ErrSchema.
func (s *Store) CreateTable(ctx context.Context, name string, columns []Column) error {
	if err := checkIdent(name); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if len(columns) == 0 {
		return fmt.Errorf("%w: table %q has no columns", ErrSchema, name)
	}

	defs := make([]string, 0, len(columns))
	for _, c := range columns {
		if err := checkIdent(c.Name); err != nil {
			return fmt.Errorf("%w: %w", ErrSchema, err)
		}
		defs = append(defs, c.Name+" "+c.Spec)
	}

	existing, err := s.columnNames(ctx, name)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrSchema, name, err)
	}
	if len(existing) > 0 {
		if !sameColumns(existing, columns) {
			return fmt.Errorf("%w: table %s exists with columns %s",
				ErrSchema, name, strings.Join(existing, ", "))
		}
		slog.Debug("table already exists", "table", name)
		return nil
	}

	ddl := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", name, strings.Join(defs, ", "))
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("%w: %w", ErrSchema, err)
	}
	slog.Debug("table created", "table", name)

	return nil
}

func (s *Store) columnNames(ctx context.Context, table string) ([]string, error) {
	var names []string
	err := s.db.SelectContext(ctx, &names, `SELECT name FROM pragma_table_info(?)`, table)
	return names, err
}

func sameColumns(existing []string, want []Column) bool {
	if len(existing) != len(want) {
		return false
	}
	seen := make(map[string]bool, len(existing))
	for _, n := range existing {
		seen[strings.ToLower(n)] = true
	}
	for _, c := range want {
		if !seen[strings.ToLower(c.Name)] {
			return false
		}
	}
	return true
}

// Insert adds one row. Columns missing from fields take the store default.
// It returns the rowid of the new row.
func (s *Store) Insert(ctx context.Context, table string, fields Fields) (int64, error) {
	if err := checkIdent(table); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: insert into %s: %w", ErrStorage, table, ErrNoFields)
	}

	names := sortedKeys(fields)
	args := make([]any, 0, len(names))
	for _, n := range names {
		if err := checkIdent(n); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrStorage, err)
		}
		args = append(args, fields[n])
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(names, ", "), placeholders)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: insert into %s: %w", ErrStorage, table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: insert into %s: %w", ErrStorage, table, err)
	}
	slog.Debug("row inserted", "table", table, "rowid", id)

	return id, nil
}

// Select describes the rows of table matching criteria, sorted ascending by
// orderBy (DefaultOrder when empty). Nothing is read until the returned
// Selection is iterated.
func (s *Store) Select(table string, criteria Criteria, orderBy string) *Selection {
	if orderBy == "" {
		orderBy = DefaultOrder
	}
	sel := &Selection{db: s.db}

	if err := checkIdent(table); err != nil {
		sel.err = err
		return sel
	}
	if err := checkIdent(orderBy); err != nil {
		sel.err = err
		return sel
	}
	where, args, err := whereClause(criteria)
	if err != nil {
		sel.err = err
		return sel
	}

	sel.query = fmt.Sprintf("SELECT * FROM %s%s ORDER BY %s", table, where, orderBy)
	sel.args = args

	return sel
}

// Update sets fields on every row matching criteria and reports how many rows
// changed. Zero rows is not an error here.
func (s *Store) Update(ctx context.Context, table string, criteria Criteria, fields Fields) (int64, error) {
	if err := checkIdent(table); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: update %s: %w", ErrStorage, table, ErrNoFields)
	}

	names := sortedKeys(fields)
	sets := make([]string, 0, len(names))
	args := make([]any, 0, len(names)+len(criteria))
	for _, n := range names {
		if err := checkIdent(n); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrStorage, err)
		}
		sets = append(sets, n+" = ?")
		args = append(args, fields[n])
	}
	where, whereArgs, err := whereClause(criteria)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	args = append(args, whereArgs...)

	query := fmt.Sprintf("UPDATE %s SET %s%s", table, strings.Join(sets, ", "), where)

	return s.exec(ctx, "update", table, query, args)
}

// Delete removes every row matching criteria and reports how many were removed.
func (s *Store) Delete(ctx context.Context, table string, criteria Criteria) (int64, error) {
	if err := checkIdent(table); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	where, args, err := whereClause(criteria)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	query := fmt.Sprintf("DELETE FROM %s%s", table, where)

	return s.exec(ctx, "delete", table, query, args)
}

func (s *Store) exec(ctx context.Context, op, table, query string, args []any) (int64, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s: %w", ErrStorage, op, table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s: %w", ErrStorage, op, table, err)
	}
	slog.Debug("rows affected", "op", op, "table", table, "count", n)

	return n, nil
}

func whereClause(criteria Criteria) (string, []any, error) {
	if len(criteria) == 0 {
		return "", nil, nil
	}
	names := sortedKeys(criteria)
	conds := make([]string, 0, len(names))
	args := make([]any, 0, len(names))
	for _, n := range names {
		if err := checkIdent(n); err != nil {
			return "", nil, err
		}
		conds = append(conds, n+" = ?")
		args = append(args, criteria[n])
	}

	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

func checkIdent(name string) error {
	if !identRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}
	return nil
}

func sortedKeys[M ~map[string]any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
