package ports

import "github.com/scriptdeck/quickload/internal/core/domain"

// SourceScanner enumerates module sources on disk.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type SourceScanner interface {
	// Modules walks root and returns every module source beneath it, with
	// names normalized to slash form relative to root.
	Modules(root string) ([]domain.ModuleSource, error)

	// HasModules reports whether dir contains at least one module source.
	// Used to narrow the search path before a cache-miss scan.
	HasModules(dir string) bool
}
