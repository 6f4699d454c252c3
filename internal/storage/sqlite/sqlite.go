// Package sqlite implements the dataset stores on an embedded SQLite
// database. The production database lives in memory with shared cache
// and is populated once at startup from a SQL dump; all stores are
// read-only after that point.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps *sql.DB for dependency injection into the stores.
type DB struct {
	*sql.DB
}

// MemoryDSN returns the DSN for a named in-memory database with shared
// cache, so every connection in the process sees the same data.
func MemoryDSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}

// Open opens the database and verifies the connection.
//
// The pool is pinned to a single connection: an in-memory database is
// destroyed when its last connection closes, and a single connection
// also serializes access, which is all the concurrency the read-only
// dataset needs.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &DB{DB: db}, nil
}

// Close closes the database, releasing the in-memory dataset.
func (d *DB) Close() error {
	return d.DB.Close()
}

// ExecScript executes a multi-statement SQL script (schema plus data)
// against the database.
func (d *DB) ExecScript(ctx context.Context, script string) error {
	if _, err := d.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("exec sql script: %w", err)
	}
	return nil
}

// isNotFoundError checks if error indicates no rows found.
func isNotFoundError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// dateRange returns the min and max date of a price table. The table
// name comes from the storage table constants, never from user input.
func dateRange(ctx context.Context, db *DB, table string) (string, string, error) {
	query := fmt.Sprintf(`SELECT MIN(date), MAX(date) FROM %s`, table)

	var start, end sql.NullString
	if err := db.QueryRowContext(ctx, query).Scan(&start, &end); err != nil {
		return "", "", fmt.Errorf("get date range: %w", err)
	}
	return start.String, end.String, nil
}
