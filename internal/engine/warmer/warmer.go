// Package warmer pre-compiles every discoverable module into the cache so a
// later host start pays no compile cost at all.
package warmer

import (
	"context"
	"os"
	"runtime"

	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
	"github.com/scriptdeck/quickload/internal/loader"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Stats summarizes one warm pass.
type Stats struct {
	// Compiled counts modules freshly compiled and inserted.
	Compiled int
	// Skipped counts modules that were already cached and fresh.
	Skipped int
	// Failed counts modules whose compile or insert failed.
	Failed int
}

// Warmer walks the configured roots, compiles what the cache does not already
// hold, and inserts the results. Compilation runs in parallel; all table
// mutation stays on the calling goroutine, matching the loader's single
// execution context.
type Warmer struct {
	cache       *loader.Cache
	mpath       ports.ModulePath
	comp        ports.Compiler
	scan        ports.SourceScanner
	log         ports.Logger
	parallelism int
}

// New creates a Warmer. parallelism bounds concurrent compiles; zero or
// negative means one compile per CPU.
func New(
	cache *loader.Cache,
	mpath ports.ModulePath,
	comp ports.Compiler,
	scan ports.SourceScanner,
	log ports.Logger,
	parallelism int,
) *Warmer {
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	return &Warmer{
		cache:       cache,
		mpath:       mpath,
		comp:        comp,
		scan:        scan,
		log:         log,
		parallelism: parallelism,
	}
}

// Warm enumerates modules under every root, skips the ones the cache already
// serves, and compiles the rest. Individual compile failures are counted and
// logged but do not abort the pass; only enumeration failure or context
// cancellation does.
func (w *Warmer) Warm(ctx context.Context) (Stats, error) {
	sources, err := w.enumerate()
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	pending := make([]domain.ModuleSource, 0, len(sources))
	for _, src := range sources {
		if _, err := w.cache.Resolve(src.Name); err == nil {
			stats.Skipped++
			continue
		}
		pending = append(pending, src)
	}

	results := make([]compileResult, len(pending))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.parallelism)
	for i, src := range pending {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i].exec, results[i].err = w.comp.CompileFile(src.Path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, zerr.Wrap(err, "warm pass interrupted")
	}

	for i, src := range pending {
		res := results[i]
		if res.err != nil {
			stats.Failed++
			w.log.Warn("failed to compile " + src.Name + ": " + res.err.Error())
			continue
		}
		if err := w.cache.Put(src.Name, src.Path, res.exec); err != nil {
			stats.Failed++
			w.log.Warn("failed to cache " + src.Name + ": " + err.Error())
			continue
		}
		stats.Compiled++
	}
	return stats, nil
}

type compileResult struct {
	exec ports.Executable
	err  error
}

// enumerate lists every module under the configured roots. A name found under
// an earlier root shadows the same name under a later one, mirroring search
// order during resolution.
func (w *Warmer) enumerate() ([]domain.ModuleSource, error) {
	seen := make(map[string]struct{})
	var sources []domain.ModuleSource
	for _, root := range w.mpath.Roots() {
		if _, err := os.Stat(root); err != nil {
			// Roots are consulted lazily during resolution, so an absent one
			// is not an error here either.
			continue
		}
		modules, err := w.scan.Modules(root)
		if err != nil {
			return nil, err
		}
		for _, m := range modules {
			if _, ok := seen[m.Name]; ok {
				continue
			}
			seen[m.Name] = struct{}{}
			sources = append(sources, m)
		}
	}
	return sources, nil
}
