package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrNotCached is returned when a module has no entry in the cache table.
	ErrNotCached = zerr.New("module not cached")

	// ErrStaleEntry is returned when a cached entry no longer matches its
	// source file's staleness token.
	ErrStaleEntry = zerr.New("cached entry is stale")

	// ErrCorruptChunk is returned when a cached chunk fails to decode.
	ErrCorruptChunk = zerr.New("cached chunk is corrupt")

	// ErrModuleNotFound is returned when no search strategy locates a source
	// file for the requested module.
	ErrModuleNotFound = zerr.New("module not found")
)

// IsMiss reports whether err is one of the cache-miss conditions that the
// fallback compiler recovers from. Misses are internal to the loader chain and
// are never surfaced to the embedding host.
func IsMiss(err error) bool {
	return errors.Is(err, ErrNotCached) ||
		errors.Is(err, ErrStaleEntry) ||
		errors.Is(err, ErrCorruptChunk)
}
