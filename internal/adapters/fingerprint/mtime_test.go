package fingerprint_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scriptdeck/quickload/internal/adapters/fingerprint"
)

func TestFingerprint_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mod.sx")
	if err := os.WriteFile(path, []byte("(+ 1 2)"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	fp := fingerprint.NewMTime()
	token, ok := fp.Fingerprint(path)
	if !ok {
		t.Fatal("expected ok for existing file")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if token != info.ModTime().Unix() {
		t.Errorf("expected token %d, got %d", info.ModTime().Unix(), token)
	}
}

func TestFingerprint_Missing(t *testing.T) {
	fp := fingerprint.NewMTime()
	if _, ok := fp.Fingerprint(filepath.Join(t.TempDir(), "nope.sx")); ok {
		t.Error("expected ok=false for missing file")
	}
}

func TestFingerprint_Directory(t *testing.T) {
	fp := fingerprint.NewMTime()
	if _, ok := fp.Fingerprint(t.TempDir()); ok {
		t.Error("expected ok=false for directory")
	}
}

func TestFingerprint_TracksModification(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mod.sx")
	if err := os.WriteFile(path, []byte("1"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	fp := fingerprint.NewMTime()
	before, ok := fp.Fingerprint(path)
	if !ok {
		t.Fatal("expected ok")
	}

	// Push the mtime forward explicitly so the test doesn't depend on clock
	// resolution.
	later := time.Unix(before+10, 0)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatalf("Chtimes failed: %v", err)
	}

	after, ok := fp.Fingerprint(path)
	if !ok {
		t.Fatal("expected ok")
	}
	if after != before+10 {
		t.Errorf("expected token %d, got %d", before+10, after)
	}
}
