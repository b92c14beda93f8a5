// Package loader implements the cache-backed module loader: an in-memory
// table of compiled chunks backed by a persistent store, a resolver that
// serves from the table, and a fallback compiler that fills it.
package loader

import (
	"sort"

	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache is the process-wide handle for the compiled module cache. The
// embedding host resolves modules on a single execution context, so the
// handle does no locking; all mutation funnels through its methods.
type Cache struct {
	store ports.TableStore
	paths ports.PathCodec
	fp    ports.Fingerprinter
	codec ports.ChunkCodec
	log   ports.Logger
	prof  ports.Profiler

	table domain.Table
	dirty bool
}

// NewCache creates a handle over an empty table. Call Load to populate it
// from the store at start of life.
func NewCache(
	store ports.TableStore,
	paths ports.PathCodec,
	fp ports.Fingerprinter,
	codec ports.ChunkCodec,
	log ports.Logger,
	prof ports.Profiler,
) *Cache {
	return &Cache{
		store: store,
		paths: paths,
		fp:    fp,
		codec: codec,
		log:   log,
		prof:  prof,
		table: domain.Table{},
	}
}

// Load populates the table from the persistent store, replacing whatever is
// in memory. The store fails soft, so Load cannot fail.
func (c *Cache) Load() {
	c.table = c.store.Load()
	c.dirty = false
}

// Flush persists the table if it has unsaved changes. A second call with no
// intervening mutation is a no-op. Idempotent and safe to call at any time.
func (c *Cache) Flush() error {
	if !c.dirty {
		return nil
	}
	if err := c.store.Save(c.table); err != nil {
		return zerr.Wrap(err, "failed to persist module cache")
	}
	c.dirty = false
	return nil
}

// ClearStore empties the table and removes the persisted store. Idempotent.
func (c *Cache) ClearStore() error {
	c.table = domain.Table{}
	c.dirty = false
	return c.store.Clear()
}

// Put compiles-side insertion: records the chunk for name, keyed by the
// normalized module name, with the source path encoded portably and the
// source's current staleness token. The entry replaces any previous one as a
// whole unit and marks the table dirty.
func (c *Cache) Put(name, sourcePath string, exec ports.Executable) error {
	blob, err := c.codec.EncodeChunk(exec)
	if err != nil {
		return zerr.Wrap(err, "failed to encode chunk")
	}
	token, ok := c.fp.Fingerprint(sourcePath)
	if !ok {
		return zerr.With(zerr.New("source vanished before it could be fingerprinted"), "path", sourcePath)
	}
	c.table[domain.NormalizeName(name)] = domain.Entry{
		Source:  c.paths.Encode(sourcePath),
		ModTime: token,
		Blob:    blob,
	}
	c.dirty = true
	return nil
}

// Invalidate removes the entry for name, reporting whether one existed.
func (c *Cache) Invalidate(name string) bool {
	key := domain.NormalizeName(name)
	if _, ok := c.table[key]; !ok {
		return false
	}
	delete(c.table, key)
	c.dirty = true
	return true
}

// InvalidateSource removes every entry whose decoded source path equals path.
// Used by the filesystem watcher, which sees paths rather than module names.
func (c *Cache) InvalidateSource(path string) int {
	removed := 0
	for name, entry := range c.table {
		if c.paths.Decode(entry.Source) == path {
			delete(c.table, name)
			removed++
		}
	}
	if removed > 0 {
		c.dirty = true
	}
	return removed
}

// Len returns the number of cached modules.
func (c *Cache) Len() int {
	return len(c.table)
}

// Dirty reports whether the table has unsaved changes.
func (c *Cache) Dirty() bool {
	return c.dirty
}

// StorePath returns the persistent store's backing file path.
func (c *Cache) StorePath() string {
	return c.store.Path()
}

// EntryInfo describes one cached module for inspection output.
type EntryInfo struct {
	Name     string
	Source   string
	ModTime  int64
	BlobSize int
}

// Snapshot returns inspection info for every entry, sorted by module name.
// Source paths are decoded to their local form.
func (c *Cache) Snapshot() []EntryInfo {
	infos := make([]EntryInfo, 0, len(c.table))
	for name, entry := range c.table {
		infos = append(infos, EntryInfo{
			Name:     name,
			Source:   c.paths.Decode(entry.Source),
			ModTime:  entry.ModTime,
			BlobSize: len(entry.Blob),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}
