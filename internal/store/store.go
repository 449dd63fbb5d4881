// Package store persists the audit population and generated workbooks.
// It is a collaborator of the workflow commands only; the consolidation
// engine itself never touches storage.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/audit"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// DataStore defines all data access the workflow commands need. Both the
// in-memory demo backend and the PostgreSQL backend implement it.
type DataStore interface {
	// Lifecycle
	Close() error

	// Entity population
	SeedEntities(ctx context.Context, entities []audit.Entity) error
	ListEntities(ctx context.Context) ([]audit.Entity, error)

	// Workbooks
	SaveWorkbook(ctx context.Context, wb *audit.GeneratedWorkbook) error
	GetWorkbook(ctx context.Context, workbookID string) (*audit.GeneratedWorkbook, error)
	ListWorkbooks(ctx context.Context) ([]audit.GeneratedWorkbook, error)
	UpdateRowResult(ctx context.Context, workbookID, entityID, attributeID string, result audit.TestResult, comment string) error

	// Reset drops all stored workbooks and entities (demo convenience).
	Reset(ctx context.Context) error
}

// Backend selects the DataStore implementation.
type Backend string

const (
	MemoryBackend   Backend = "memory"
	PostgresBackend Backend = "postgres"
)

// Config holds what New needs to build a store.
type Config struct {
	Backend Backend
	DSN     string
}

// New creates a data store for the configured backend.
func New(cfg Config) (DataStore, error) {
	switch cfg.Backend {
	case MemoryBackend, "":
		return NewMemoryStore(), nil
	case PostgresBackend:
		return NewPostgresStore(cfg.DSN)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
