// Package store persists the module cache table to a single binary file.
//
// Layout: 4-byte magic, uint32 little-endian format version, xxhash64 of the
// payload, then the msgpack-encoded table. Records are 3-element arrays of
// [portable path, staleness token, chunk blob] keyed by module name.
package store

import (
	"encoding/binary"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/zerr"
)

const (
	magic = "QLCS"

	// formatVersion is bumped on any incompatible layout change. A mismatch
	// on load discards the file rather than guessing.
	formatVersion uint32 = 1

	headerSize = len(magic) + 4 + 8
)

type record struct {
	_msgpack struct{} `msgpack:",as_array"`

	Source  string
	ModTime int64
	Blob    []byte
}

var _ ports.TableStore = (*File)(nil)

// File implements ports.TableStore backed by one file on disk.
type File struct {
	path string
	log  ports.Logger
}

// NewFile creates a store backed by the file at path.
func NewFile(path string, log ports.Logger) *File {
	return &File{
		path: filepath.Clean(path),
		log:  log,
	}
}

// Path returns the backing file path.
func (s *File) Path() string {
	return s.path
}

// Load reads the persisted table. Any read or decode problem yields an empty
// table; a corrupt cache must never block startup.
func (s *File) Load() domain.Table {
	data, err := os.ReadFile(s.path) //nolint:gosec // Path is cleaned and provided by trusted caller
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("failed to read module cache, starting empty: " + err.Error())
		}
		return domain.Table{}
	}

	table, err := decode(data)
	if err != nil {
		s.log.Warn("discarding unreadable module cache: " + err.Error())
		return domain.Table{}
	}
	return table
}

func decode(data []byte) (domain.Table, error) {
	if len(data) < headerSize {
		return nil, zerr.New("truncated header")
	}
	if string(data[:len(magic)]) != magic {
		return nil, zerr.New("bad magic")
	}
	version := binary.LittleEndian.Uint32(data[len(magic) : len(magic)+4])
	if version != formatVersion {
		return nil, zerr.With(zerr.New("unsupported format version"), "version", version)
	}
	sum := binary.LittleEndian.Uint64(data[len(magic)+4 : headerSize])
	payload := data[headerSize:]
	if xxhash.Sum64(payload) != sum {
		return nil, zerr.New("payload checksum mismatch")
	}

	var records map[string]record
	if err := msgpack.Unmarshal(payload, &records); err != nil {
		return nil, zerr.Wrap(err, "failed to decode payload")
	}

	table := make(domain.Table, len(records))
	for name, r := range records {
		table[name] = domain.Entry{
			Source:  r.Source,
			ModTime: r.ModTime,
			Blob:    r.Blob,
		}
	}
	return table, nil
}

// Save atomically replaces the persisted table: the encoded content is written
// to a temp file in the same directory and renamed over the store file, so an
// interrupted write never leaves a half-written store behind.
func (s *File) Save(table domain.Table) error {
	records := make(map[string]record, len(table))
	for name, e := range table {
		records[name] = record{
			Source:  e.Source,
			ModTime: e.ModTime,
			Blob:    e.Blob,
		}
	}

	payload, err := msgpack.Marshal(records)
	if err != nil {
		return zerr.Wrap(err, "failed to encode module cache")
	}

	buf := make([]byte, 0, headerSize+len(payload))
	buf = append(buf, magic...)
	buf = binary.LittleEndian.AppendUint32(buf, formatVersion)
	buf = binary.LittleEndian.AppendUint64(buf, xxhash.Sum64(payload))
	buf = append(buf, payload...)

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temp cache file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to write temp cache file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to close temp cache file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.Wrap(err, "failed to replace cache file")
	}
	return nil
}

// Clear removes the store file. Removing an already-absent file is not an
// error; Clear is idempotent.
func (s *File) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to remove cache file")
	}
	return nil
}
