package fwstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// tableSpec describes how one collection maps onto its SQLite table.
// The first entry of columns is always the primary key. ownerCol is empty
// for global (ownerless) tables.
type tableSpec[T any] struct {
	table    string
	ownerCol string
	columns  []string
	pk       func(*T) string
	scan     func(rowScanner) (T, error)
	args     func(*T) []any
}

// Collection provides typed access to a single synchronized table. One
// instance exists per collection on Store; all methods are safe for
// concurrent use because they delegate to database/sql.
type Collection[T any] struct {
	db *sql.DB

	spec       tableSpec[T]
	selectCols string
	upsertSQL  string
	insertSQL  string
}

func newCollection[T any](db *sql.DB, spec tableSpec[T]) *Collection[T] {
	cols := strings.Join(spec.columns, ", ")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(spec.columns)), ", ")

	// ON CONFLICT(pk) DO UPDATE over every non-key column.
	var sets []string
	for _, col := range spec.columns[1:] {
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", col, col))
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", spec.table, cols, placeholders)
	return &Collection[T]{
		db:         db,
		spec:       spec,
		selectCols: cols,
		upsertSQL: fmt.Sprintf("%s ON CONFLICT(%s) DO UPDATE SET %s",
			insert, spec.columns[0], strings.Join(sets, ", ")),
		insertSQL: fmt.Sprintf("%s ON CONFLICT(%s) DO NOTHING", insert, spec.columns[0]),
	}
}

// Table returns the underlying table name.
func (c *Collection[T]) Table() string { return c.spec.table }

// GetAll returns every row for the owner, or every row for global tables.
func (c *Collection[T]) GetAll(ctx context.Context, ownerID string) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", c.selectCols, c.spec.table)
	var args []any
	if c.spec.ownerCol != "" {
		query += fmt.Sprintf(" WHERE %s = ?", c.spec.ownerCol)
		args = append(args, ownerID)
	}

	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", c.spec.table, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		rec, err := c.spec.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s row: %w", c.spec.table, err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s rows: %w", c.spec.table, err)
	}
	return out, nil
}

// GetByID returns the row with the given primary key, or nil if absent.
func (c *Collection[T]) GetByID(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
		c.selectCols, c.spec.table, c.spec.columns[0])
	rec, err := c.spec.scan(c.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s by id: %w", c.spec.table, err)
	}
	return &rec, nil
}

// CountForOwner returns the number of rows belonging to the owner.
func (c *Collection[T]) CountForOwner(ctx context.Context, ownerID string) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", c.spec.table)
	var args []any
	if c.spec.ownerCol != "" {
		query += fmt.Sprintf(" WHERE %s = ?", c.spec.ownerCol)
		args = append(args, ownerID)
	}
	var n int
	if err := c.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count %s: %w", c.spec.table, err)
	}
	return n, nil
}

// Upsert inserts the record or fully replaces the existing row with the
// same primary key.
func (c *Collection[T]) Upsert(ctx context.Context, rec T) error {
	if _, err := c.db.ExecContext(ctx, c.upsertSQL, c.spec.args(&rec)...); err != nil {
		return fmt.Errorf("upsert %s %s: %w", c.spec.table, c.spec.pk(&rec), err)
	}
	return nil
}

// InsertIfAbsent inserts the record, or does nothing if a row with the
// same primary key already exists.
func (c *Collection[T]) InsertIfAbsent(ctx context.Context, rec T) error {
	if _, err := c.db.ExecContext(ctx, c.insertSQL, c.spec.args(&rec)...); err != nil {
		return fmt.Errorf("insert %s %s: %w", c.spec.table, c.spec.pk(&rec), err)
	}
	return nil
}

// DeleteAllForOwner removes every row belonging to the owner. It is a
// no-op for global tables (the catalog is never deleted on restore).
func (c *Collection[T]) DeleteAllForOwner(ctx context.Context, ownerID string) error {
	if c.spec.ownerCol == "" {
		return nil
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", c.spec.table, c.spec.ownerCol)
	if _, err := c.db.ExecContext(ctx, query, ownerID); err != nil {
		return fmt.Errorf("delete %s for owner: %w", c.spec.table, err)
	}
	return nil
}
