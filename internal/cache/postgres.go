package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"biopaxcore/pkg/biopax"
)

const (
	pgDriver = "pgx"
	// Default DSN targets a local instance; override via
	// BIOPAXCORE_CACHE_POSTGRES_DSN.
	defaultDSN = "postgres://localhost/biopaxcore?sslmode=disable"
)

// Postgres implements Store on a Postgres database, same table shape as
// the SQLite driver.
type Postgres struct {
	db *sql.DB
}

// NewPostgres opens a Postgres-backed cache using the provided DSN
// (falls back to defaultDSN) and ensures the models table exists.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := sql.Open(pgDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS models (
		locator TEXT PRIMARY KEY,
		snapshot BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return nil, fmt.Errorf("create models table: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (s *Postgres) Driver() Driver { return DriverPostgres }

// DB exposes the underlying sql.DB for integration testing hooks.
func (s *Postgres) DB() *sql.DB { return s.db }

// Close releases the database handle.
func (s *Postgres) Close() error { return s.db.Close() }

func (s *Postgres) Put(ctx context.Context, locator string, m *biopax.Model) error {
	snapshot, err := encode(m)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO models(locator, snapshot, updated_at)
		VALUES($1, $2, now())
		ON CONFLICT(locator) DO UPDATE SET snapshot=excluded.snapshot, updated_at=excluded.updated_at`,
		locator, snapshot)
	if err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

func (s *Postgres) Get(ctx context.Context, locator string) (*biopax.Model, bool, error) {
	var snapshot []byte
	err := s.db.QueryRowContext(ctx, `SELECT snapshot FROM models WHERE locator = $1`, locator).Scan(&snapshot)
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

func (s *Postgres) Delete(ctx context.Context, locator string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM models WHERE locator = $1`, locator)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Postgres) Keys(ctx context.Context) ([]string, error) {
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
