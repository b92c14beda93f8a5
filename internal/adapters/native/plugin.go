// Package native loads binary extension modules as Go plugins.
package native

import (
	"context"
	"plugin"

	"github.com/scriptdeck/quickload/internal/core/ports"
	"go.trai.ch/zerr"
)

// EntrySymbol is the symbol a plugin must export to act as a module.
const EntrySymbol = "Module"

var _ ports.NativeLoader = (*PluginLoader)(nil)

// PluginLoader implements ports.NativeLoader using the plugin package. A
// module plugin exports `Module func(context.Context) (any, error)`.
type PluginLoader struct{}

// NewPluginLoader creates a new PluginLoader.
func NewPluginLoader() *PluginLoader {
	return &PluginLoader{}
}

// Load opens the shared library at path and wraps its entry point.
func (l *PluginLoader) Load(path string) (ports.Executable, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open native module")
	}
	sym, err := p.Lookup(EntrySymbol)
	if err != nil {
		return nil, zerr.Wrap(err, "native module has no entry symbol")
	}
	fn, ok := sym.(func(context.Context) (any, error))
	if !ok {
		return nil, zerr.With(zerr.New("native module entry has wrong signature"), "path", path)
	}
	return entryFunc(fn), nil
}

type entryFunc func(context.Context) (any, error)

func (f entryFunc) Run(ctx context.Context) (any, error) {
	return f(ctx)
}
