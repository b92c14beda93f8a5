// Package searchpath implements the host-facing module search path.
package searchpath

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/scriptdeck/quickload/internal/core/ports"
)

var _ ports.ModulePath = (*List)(nil)

// List is an explicit, swappable directory list satisfying ports.ModulePath.
// The configured roots are fixed; the active list starts equal to the roots
// and may be swapped transiently during reduced search.
type List struct {
	roots      []string
	active     []string
	restricted func() bool
}

// Option configures a List.
type Option func(*List)

// WithRestricted installs the probe reporting whether the host is currently
// in a context where the active list must not be mutated.
func WithRestricted(probe func() bool) Option {
	return func(l *List) {
		l.restricted = probe
	}
}

// New creates a List whose active path starts as the given roots.
func New(roots []string, opts ...Option) *List {
	l := &List{
		roots:  slices.Clone(roots),
		active: slices.Clone(roots),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Roots returns the configured source root directories in search order.
func (l *List) Roots() []string {
	return slices.Clone(l.roots)
}

// Active returns the directory list currently consulted by FindFirst.
func (l *List) Active() []string {
	return slices.Clone(l.active)
}

// SetActive replaces the directory list consulted by FindFirst.
func (l *List) SetActive(dirs []string) {
	l.active = slices.Clone(dirs)
}

// FindFirst returns the first existing regular file matching rel under the
// active list, in listed order.
func (l *List) FindFirst(rel string) (string, bool) {
	for _, dir := range l.active {
		path := filepath.Join(dir, rel)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// Restricted reports whether the active list must not be mutated right now.
func (l *List) Restricted() bool {
	if l.restricted != nil {
		return l.restricted()
	}
	return false
}
