package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"biopaxcore/pkg/biopax"
)

// SQLite implements Store on a local SQLite database with a single
// models table keyed by locator.
type SQLite struct {
	db   *sql.DB
	path string
}

// NewSQLite opens (and if needed creates) a SQLite-backed cache at path.
// An empty path defaults to biopaxcore.db in the working directory.
func NewSQLite(path string) (*SQLite, error) {
	if path == "" {
		path = "biopaxcore.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS models (
		locator TEXT PRIMARY KEY,
		snapshot BLOB NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	)`); err != nil {
		return nil, fmt.Errorf("create models table: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

func (s *SQLite) Driver() Driver { return DriverSQLite }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *SQLite) DB() *sql.DB { return s.db }

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Put(ctx context.Context, locator string, m *biopax.Model) error {
	snapshot, err := encode(m)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO models(locator, snapshot, updated_at)
		VALUES(?, ?, datetime('now'))
		ON CONFLICT(locator) DO UPDATE SET snapshot=excluded.snapshot, updated_at=excluded.updated_at`,
		locator, snapshot)
	if err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context, locator string) (*biopax.Model, bool, error) {
	var snapshot []byte
	err := s.db.QueryRowContext(ctx, `SELECT snapshot FROM models WHERE locator = ?`, locator).Scan(&snapshot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load snapshot: %w", err)
	}
	m, err := decode(locator, snapshot)
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}

func (s *SQLite) Delete(ctx context.Context, locator string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM models WHERE locator = ?`, locator)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLite) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT locator FROM models ORDER BY locator`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
