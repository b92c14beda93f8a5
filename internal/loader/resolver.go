package loader

import (
	"time"

	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolve serves the named module from the cache table. It returns one of the
// cache-miss sentinels (see domain.IsMiss) when the module must be compiled
// instead. A hit performs exactly one stat and never mutates the table.
//
// Stale and corrupt entries are evicted as a side effect, so a miss leaves
// the table clean for the fallback compiler's insert.
func (c *Cache) Resolve(name string) (ports.Executable, error) {
	start := time.Now()
	key := domain.NormalizeName(name)

	entry, ok := c.table[key]
	if !ok {
		c.sample(key, domain.OutcomeNoEntry, start)
		return nil, zerr.With(domain.ErrNotCached, "module", key)
	}

	source := c.paths.Decode(entry.Source)
	token, ok := c.fp.Fingerprint(source)
	if !ok || token != entry.ModTime {
		delete(c.table, key)
		c.dirty = true
		c.sample(key, domain.OutcomeStale, start)
		return nil, zerr.With(domain.ErrStaleEntry, "module", key)
	}

	exec, err := c.codec.DecodeChunk(entry.Blob)
	if err != nil {
		delete(c.table, key)
		c.dirty = true
		c.log.Warn("evicting undecodable chunk for module " + key)
		c.sample(key, domain.OutcomeCorrupt, start)
		return nil, zerr.With(domain.ErrCorruptChunk, "module", key)
	}

	c.sample(key, domain.OutcomeHit, start)
	return exec, nil
}

func (c *Cache) sample(module string, outcome domain.ResolveOutcome, start time.Time) {
	c.prof.Record(domain.Sample{
		Module:  module,
		Outcome: outcome,
		Elapsed: time.Since(start),
	})
}
