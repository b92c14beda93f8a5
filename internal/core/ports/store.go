package ports

import "github.com/scriptdeck/quickload/internal/core/domain"

// TableStore persists the module cache table to disk.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type TableStore interface {
	// Load reads the persisted table fully into memory. It fails soft: a
	// missing, unreadable, or corrupt store yields an empty table, never an
	// error, so a broken cache cannot block startup.
	Load() domain.Table

	// Save atomically replaces the persisted table with the given one.
	Save(table domain.Table) error

	// Clear removes the persisted table. Safe to call repeatedly; a
	// subsequent Load yields an empty table.
	Clear() error

	// Path returns the backing file path.
	Path() string
}
