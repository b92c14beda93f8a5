package store_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/scriptdeck/quickload/internal/adapters/store"
	"github.com/scriptdeck/quickload/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newStore(t *testing.T) *store.File {
	t.Helper()
	return store.NewFile(filepath.Join(t.TempDir(), "modules.qlc"), nopLogger{})
}

func sampleTable() domain.Table {
	return domain.Table{
		"pkg/mod": {
			Source:  "@install@/modules/pkg/mod.sx",
			ModTime: 1700000000,
			Blob:    []byte{0x81, 0xa1, 0x6b, 0x01},
		},
		"util": {
			Source:  "/home/user/modules/util.sx",
			ModTime: 1699999999,
			Blob:    []byte("chunk"),
		},
	}
}

func tablesEqual(a, b domain.Table) bool {
	if len(a) != len(b) {
		return false
	}
	for name, ea := range a {
		eb, ok := b[name]
		if !ok || ea.Source != eb.Source || ea.ModTime != eb.ModTime || !bytes.Equal(ea.Blob, eb.Blob) {
			return false
		}
	}
	return true
}

func TestStore_RoundTrip(t *testing.T) {
	s := newStore(t)

	want := sampleTable()
	if err := s.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := s.Load()
	if !tablesEqual(want, got) {
		t.Errorf("round trip mismatch:\nwant %v\ngot  %v", want, got)
	}
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := newStore(t)

	got := s.Load()
	if len(got) != 0 {
		t.Errorf("expected empty table, got %d entries", len(got))
	}
}

func TestStore_LoadCorruptFile(t *testing.T) {
	s := newStore(t)

	if err := os.WriteFile(s.Path(), []byte("not a cache file"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got := s.Load()
	if len(got) != 0 {
		t.Errorf("expected empty table for corrupt file, got %d entries", len(got))
	}
}

func TestStore_LoadDetectsPayloadCorruption(t *testing.T) {
	s := newStore(t)

	if err := s.Save(sampleTable()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	// Flip one payload byte past the header.
	data[len(data)-1] ^= 0xff
	if err := os.WriteFile(s.Path(), data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got := s.Load()
	if len(got) != 0 {
		t.Errorf("expected empty table for checksum mismatch, got %d entries", len(got))
	}
}

func TestStore_LoadRejectsUnknownVersion(t *testing.T) {
	s := newStore(t)

	if err := s.Save(sampleTable()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	// Bump the version field (bytes 4..7, little endian).
	data[4] = 0xfe
	if err := os.WriteFile(s.Path(), data, 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	got := s.Load()
	if len(got) != 0 {
		t.Errorf("expected empty table for unknown version, got %d entries", len(got))
	}
}

func TestStore_SaveReplacesAtomically(t *testing.T) {
	s := newStore(t)

	if err := s.Save(sampleTable()); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := s.Save(domain.Table{"only": {Source: "/m/only.sx", ModTime: 1}}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got := s.Load()
	if len(got) != 1 {
		t.Fatalf("expected 1 entry after replace, got %d", len(got))
	}

	// No temp files may survive a successful save.
	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the store file in the cache dir, found %d entries", len(entries))
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	s := newStore(t)

	if err := s.Save(sampleTable()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}
	if got := s.Load(); len(got) != 0 {
		t.Errorf("expected empty table after clear, got %d entries", len(got))
	}
}

func TestStore_SaveCreatesCacheDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "modules.qlc")
	s := store.NewFile(path, nopLogger{})

	if err := s.Save(sampleTable()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("store file missing: %v", err)
	}
}
