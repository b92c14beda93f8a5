// Package domain contains core domain types for the module cache.
package domain

import "strings"

// Entry is one cached module: where its source lived, the staleness token the
// source carried when it was compiled, and the encoded compiled chunk.
type Entry struct {
	// Source is the portable-encoded absolute path of the source file.
	Source string
	// ModTime is the source modification time in unix seconds, captured at
	// compile time. It is the entry's staleness token.
	ModTime int64
	// Blob is the encoded compiled chunk, executable after decoding without
	// re-parsing source text.
	Blob []byte
}

// Table maps normalized module names to their cache entries. It lives in
// memory for the process lifetime and is persisted as a whole.
type Table map[string]Entry

// NormalizeName flattens a dotted module name to its canonical slash form,
// which is the key format used by Table and the on-disk store.
func NormalizeName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}
