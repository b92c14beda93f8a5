package ports

// ModulePath is the host's module search path: the root directories holding
// module sources and the active directory list consulted during resolution.
//
// The active list may be swapped transiently (reduced search) but only when
// Restricted reports false; a restricted host context must never see its
// configuration mutated.
//
//go:generate mockgen -source=module_path.go -destination=mocks/mock_module_path.go -package=mocks
type ModulePath interface {
	// Roots returns the configured source root directories in search order.
	Roots() []string

	// Active returns the directory list currently consulted by FindFirst.
	Active() []string

	// SetActive replaces the directory list consulted by FindFirst.
	SetActive(dirs []string)

	// FindFirst returns the first existing file matching rel under the
	// active list, in listed order.
	FindFirst(rel string) (string, bool)

	// Restricted reports whether the host is currently in a non-reentrant
	// context where the active list must not be mutated.
	Restricted() bool
}
