// Package ports defines the core interfaces for the application.
package ports

import "context"

// Executable is a compiled module chunk ready to run on the host.
type Executable interface {
	// Run executes the chunk and returns the module's export value.
	Run(ctx context.Context) (any, error)
}
