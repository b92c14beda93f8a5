// Package app implements the application layer for quickload.
package app

import (
	"context"
	"io"
	"strings"

	"github.com/scriptdeck/quickload/internal/adapters/watch" //nolint:depguard // Wired in app layer
	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
	"github.com/scriptdeck/quickload/internal/engine/warmer"
	"github.com/scriptdeck/quickload/internal/loader"
	"go.trai.ch/zerr"
)

// App is the embedding surface of the module loader: one handle that ties the
// cache, the resolver chain, the warmer, and the watcher together.
type App struct {
	cache    *loader.Cache
	chain    *loader.Chain
	fallback *loader.Fallback
	warmer   *warmer.Warmer
	watcher  *watch.Watcher
	prof     ports.Profiler
	log      ports.Logger
	settings *domain.Settings
}

// New creates an App over initialized components. The cache table is expected
// to be loaded already.
func New(
	cache *loader.Cache,
	fallback *loader.Fallback,
	warm *warmer.Warmer,
	watcher *watch.Watcher,
	prof ports.Profiler,
	log ports.Logger,
	settings *domain.Settings,
) *App {
	return &App{
		cache:    cache,
		chain:    loader.NewChain(cache, fallback),
		fallback: fallback,
		warmer:   warm,
		watcher:  watcher,
		prof:     prof,
		log:      log,
		settings: settings,
	}
}

// Load resolves the named module to an executable without running it.
func (a *App) Load(name string) (ports.Executable, error) {
	return a.chain.Load(name)
}

// Get resolves and runs the named module, returning its export value.
func (a *App) Get(ctx context.Context, name string) (any, error) {
	exec, err := a.chain.Load(name)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to load module"), "module", name)
	}
	out, err := exec.Run(ctx)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "module execution failed"), "module", name)
	}
	return out, nil
}

// Warm pre-compiles every discoverable module and flushes the table.
func (a *App) Warm(ctx context.Context) (warmer.Stats, error) {
	stats, err := a.warmer.Warm(ctx)
	if err != nil {
		return stats, err
	}
	return stats, a.cache.Flush()
}

// Watch invalidates cached entries as their sources change, until ctx is done.
// File events evict the affected entries; directory events additionally drop
// the memoized search narrowing, since the tree shape changed. The table is
// flushed when the watch ends.
func (a *App) Watch(ctx context.Context) error {
	err := a.watcher.Run(ctx, a.settings.Roots, a.onSourceEvent)
	if flushErr := a.cache.Flush(); flushErr != nil && err == nil {
		err = flushErr
	}
	return err
}

func (a *App) onSourceEvent(ev watch.Event) {
	if ev.Dir {
		a.fallback.InvalidateNarrowed()
		return
	}
	if !strings.HasSuffix(ev.Path, a.settings.Ext) {
		return
	}
	if removed := a.cache.InvalidateSource(ev.Path); removed > 0 {
		a.log.Info("invalidated " + ev.Path)
	}
}

// List returns inspection info for every cached module.
func (a *App) List() []loader.EntryInfo {
	return a.cache.Snapshot()
}

// Stats writes the resolution profile.
func (a *App) Stats(w io.Writer) {
	a.prof.Dump(w)
}

// Flush persists unsaved cache changes.
func (a *App) Flush() error {
	return a.cache.Flush()
}

// Clear empties the cache and removes its store file.
func (a *App) Clear() error {
	return a.cache.ClearStore()
}

// CachePath returns the store file location, for display.
func (a *App) CachePath() string {
	return a.cache.StorePath()
}

// Len returns the number of cached modules.
func (a *App) Len() int {
	return a.cache.Len()
}

// Close flushes pending changes. A flush failure at shutdown is logged rather
// than propagated; the cache is an accelerator and must not fail the host.
func (a *App) Close() {
	if err := a.cache.Flush(); err != nil {
		a.log.Error(err)
	}
}
