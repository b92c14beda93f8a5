package loader

import (
	"path"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
	"go.trai.ch/zerr"
)

// Fallback resolves cache misses: it searches the module path for a source
// file, compiles it, and inserts the result into the cache table.
type Fallback struct {
	cache  *Cache
	mpath  ports.ModulePath
	comp   ports.Compiler
	scan   ports.SourceScanner
	native ports.NativeLoader
	ext    string

	// Memoized narrowed search path, keyed by a hash of the active list it
	// was derived from. Recomputed when the list changes, dropped on
	// InvalidateNarrowed.
	narrowed    []string
	narrowedKey uint64
	hasNarrowed bool
}

// FallbackOption configures a Fallback.
type FallbackOption func(*Fallback)

// WithNativeLoader enables the last-resort lookup of binary extension
// modules. Without it, native resolution is skipped.
func WithNativeLoader(nl ports.NativeLoader) FallbackOption {
	return func(f *Fallback) {
		f.native = nl
	}
}

// NewFallback creates a Fallback inserting into cache. ext is the source file
// extension including the leading dot.
func NewFallback(
	cache *Cache,
	mpath ports.ModulePath,
	comp ports.Compiler,
	scan ports.SourceScanner,
	ext string,
	opts ...FallbackOption,
) *Fallback {
	f := &Fallback{
		cache: cache,
		mpath: mpath,
		comp:  comp,
		scan:  scan,
		ext:   ext,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CompileAndCache locates the named module's source, compiles it, and records
// the chunk in the cache table. In an unrestricted host context the search
// runs against a narrowed path list to bound the filesystem scan; restricted
// contexts use the full active path untouched.
//
// Compile errors propagate unchanged and leave the table alone. When no
// source exists anywhere, a native extension module is tried as a last resort
// and served uncached.
func (f *Fallback) CompileAndCache(name string) (ports.Executable, error) {
	start := time.Now()
	key := domain.NormalizeName(name)

	var (
		source string
		found  bool
	)
	if f.mpath.Restricted() {
		source, found = f.findSource(key)
	} else {
		f.withNarrowedPath(func() {
			source, found = f.findSource(key)
		})
	}

	if !found {
		if exec, ok := f.findNative(key); ok {
			return exec, nil
		}
		f.cache.sample(key, domain.OutcomeNotFound, start)
		return nil, zerr.With(domain.ErrModuleNotFound, "module", key)
	}

	exec, err := f.comp.CompileFile(source)
	if err != nil {
		return nil, err
	}
	if err := f.cache.Put(key, source, exec); err != nil {
		// The chunk is good; failing to record it must not fail the load.
		f.cache.log.Warn("failed to cache compiled module " + key + ": " + err.Error())
	}
	f.cache.sample(key, domain.OutcomeCompiled, start)
	return exec, nil
}

// findSource tries the package-file and init-file layouts against the active
// search path, in that order.
func (f *Fallback) findSource(key string) (string, bool) {
	if p, ok := f.mpath.FindFirst(key + f.ext); ok {
		return p, true
	}
	return f.mpath.FindFirst(path.Join(key, "init"+f.ext))
}

// findNative looks for a shared library named after the module's last
// segment. Native modules bypass the cache entirely.
func (f *Fallback) findNative(key string) (ports.Executable, bool) {
	if f.native == nil {
		return nil, false
	}
	base := key
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		base = key[idx+1:]
	}
	p, ok := f.mpath.FindFirst(base + ".so")
	if !ok {
		return nil, false
	}
	exec, err := f.native.Load(p)
	if err != nil {
		f.cache.log.Warn("failed to load native module " + key + ": " + err.Error())
		return nil, false
	}
	return exec, true
}

// withNarrowedPath swaps the narrowed list in for the duration of fn and
// restores the previous active path on every exit, panics included.
func (f *Fallback) withNarrowedPath(fn func()) {
	prev := f.mpath.Active()
	f.mpath.SetActive(f.narrowedList(prev))
	defer f.mpath.SetActive(prev)
	fn()
}

// narrowedList returns the directories of active that actually contain module
// sources. The result is memoized against a hash of the input list.
func (f *Fallback) narrowedList(active []string) []string {
	key := listKey(active)
	if f.hasNarrowed && key == f.narrowedKey {
		return f.narrowed
	}

	narrowed := make([]string, 0, len(active))
	for _, dir := range active {
		if f.scan.HasModules(dir) {
			narrowed = append(narrowed, dir)
		}
	}
	f.narrowed = narrowed
	f.narrowedKey = key
	f.hasNarrowed = true
	return narrowed
}

// InvalidateNarrowed drops the memoized narrowed list. The watcher calls this
// when the shape of a source tree changes.
func (f *Fallback) InvalidateNarrowed() {
	f.narrowed = nil
	f.narrowedKey = 0
	f.hasNarrowed = false
}

func listKey(dirs []string) uint64 {
	h := xxhash.New()
	for _, dir := range dirs {
		_, _ = h.WriteString(dir)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
