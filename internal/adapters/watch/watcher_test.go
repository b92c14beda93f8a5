package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/scriptdeck/quickload/internal/adapters/watch"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func TestWatcher_ReportsWrites(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "mod.sx")
	if err := os.WriteFile(path, []byte("1"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan watch.Event, 16)
	done := make(chan error, 1)
	go func() {
		done <- watch.New(nopLogger{}).Run(ctx, []string{root}, func(ev watch.Event) {
			events <- ev
		})
	}()

	// Give the watcher a moment to register before mutating the tree.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("2"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case ev := <-events:
		if ev.Path != path {
			t.Errorf("expected event for %q, got %q", path, ev.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
	}

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}
