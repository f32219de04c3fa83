// Package state selects a registry snapshot store from the process
// environment and re-exports the store contract for stable internal
// imports.
package state

import (
	"context"
	"fmt"
	"os"

	"cordcore/internal/infra/state/memory"
	"cordcore/internal/infra/state/postgres"
	"cordcore/internal/infra/state/sqlite"
	"cordcore/pkg/state"
)

// Driver identifies a concrete snapshot store backend.
type Driver string

const (
	// DriverSQLite stores snapshots in a local SQLite database (default, dev).
	DriverSQLite Driver = "sqlite"
	// DriverPostgres stores snapshots in a Postgres database.
	DriverPostgres Driver = "postgres"
	// DriverMemory keeps snapshots in process memory (tests).
	DriverMemory Driver = "memory"
)

type (
	// Snapshot is the persisted registry snapshot document.
	Snapshot = state.Snapshot
	// Store is the interface for snapshot store backends.
	Store = state.Store
)

// FormatVersion is the snapshot document version written by this build.
const FormatVersion = state.FormatVersion

// Open selects a snapshot store implementation using environment variables.
//
//	CORDCORE_STATE_DRIVER: sqlite|postgres|memory (default sqlite)
//	CORDCORE_STATE_PATH: database file when driver=sqlite (default cordcore.db)
//	CORDCORE_STATE_DSN: connection string when driver=postgres
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("CORDCORE_STATE_DRIVER")
	if driver == "" {
		driver = string(DriverSQLite)
	}
	switch Driver(driver) {
	case DriverSQLite:
		return sqlite.NewStore(os.Getenv("CORDCORE_STATE_PATH"))
	case DriverPostgres:
		return postgres.NewStore(ctx, os.Getenv("CORDCORE_STATE_DSN"))
	case DriverMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown state driver %s", driver)
	}
}

// NewMemory returns an in-memory snapshot store suitable for tests.
func NewMemory() Store { return memory.NewStore() }

// NewSQLite constructs a SQLite-backed snapshot store at the provided path.
func NewSQLite(path string) (Store, error) { return sqlite.NewStore(path) }

// NewPostgres constructs a Postgres-backed snapshot store from the provided DSN.
func NewPostgres(ctx context.Context, dsn string) (Store, error) { return postgres.NewStore(ctx, dsn) }
