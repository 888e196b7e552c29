// Package cache stores parsed models keyed by locator so repeat requests
// skip fetching and parsing. Snapshots are the engine's own RDF/XML
// serialization, so a cached model survives reload with its semantics
// intact.
package cache

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"biopaxcore/internal/rdfxml"
	"biopaxcore/internal/resolve"
	"biopaxcore/pkg/biopax"
)

// Driver identifies a concrete cache backend.
type Driver string

const (
	// DriverMemory keeps snapshots in process memory (default, tests).
	DriverMemory Driver = "memory"
	// DriverSQLite stores snapshots in a local SQLite database.
	DriverSQLite Driver = "sqlite"
	// DriverPostgres stores snapshots in Postgres.
	DriverPostgres Driver = "postgres"
)

// Store caches parsed models by locator. Put overwrites any existing
// snapshot for the locator; a cache refresh is not an error.
type Store interface {
	Put(ctx context.Context, locator string, m *biopax.Model) error
	Get(ctx context.Context, locator string) (*biopax.Model, bool, error)
	Delete(ctx context.Context, locator string) (bool, error)
	Keys(ctx context.Context) ([]string, error)
	Driver() Driver
}

// Open selects a Store implementation using environment variables.
//
//	BIOPAXCORE_CACHE_DRIVER: memory|sqlite|postgres (default memory)
//	BIOPAXCORE_CACHE_SQLITE_PATH: database path when driver=sqlite
//	BIOPAXCORE_CACHE_POSTGRES_DSN: DSN when driver=postgres
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("BIOPAXCORE_CACHE_DRIVER")
	if driver == "" {
		driver = string(DriverMemory)
	}
	switch Driver(driver) {
	case DriverMemory:
		return NewMemory(), nil
	case DriverSQLite:
		return NewSQLite(os.Getenv("BIOPAXCORE_CACHE_SQLITE_PATH"))
	case DriverPostgres:
		return NewPostgres(ctx, os.Getenv("BIOPAXCORE_CACHE_POSTGRES_DSN"))
	default:
		return nil, fmt.Errorf("unknown cache driver %s", driver)
	}
}

// encode serializes a model into its snapshot form.
func encode(m *biopax.Model) ([]byte, error) {
	var buf bytes.Buffer
	w := rdfxml.Writer{}
	if err := w.Write(m, &buf); err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// decode rebuilds a model from its snapshot form. Snapshots were written
// by a resolved model, so diagnostics here indicate corruption and are
// surfaced as errors.
func decode(locator string, snapshot []byte) (*biopax.Model, error) {
	records, diags, err := rdfxml.Read(bytes.NewReader(snapshot))
	if err != nil {
		return nil, fmt.Errorf("decode snapshot for %s: %w", locator, err)
	}
	m, more, err := resolve.Build(records)
	if err != nil {
		return nil, fmt.Errorf("resolve snapshot for %s: %w", locator, err)
	}
	diags = append(diags, more...)
	if len(diags) > 0 {
		return nil, fmt.Errorf("snapshot for %s is damaged: %s", locator, diags)
	}
	return m, nil
}
