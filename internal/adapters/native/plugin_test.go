package native_test

import (
	"path/filepath"
	"testing"

	"github.com/scriptdeck/quickload/internal/adapters/native"
)

func TestLoad_MissingLibrary(t *testing.T) {
	l := native.NewPluginLoader()
	if _, err := l.Load(filepath.Join(t.TempDir(), "mod.so")); err == nil {
		t.Fatal("expected error for missing library")
	}
}
