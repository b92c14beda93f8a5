// Package watch reports source tree changes so cached modules can be
// invalidated eagerly in long-lived hosts.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/scriptdeck/quickload/internal/core/ports"
	"go.trai.ch/zerr"
)

// Event is one observed source tree change.
type Event struct {
	// Path is the affected file or directory.
	Path string
	// Dir is true when the event concerns a directory, meaning the shape of
	// the search tree changed rather than one file's content.
	Dir bool
}

// Watcher wraps fsnotify with recursive directory registration.
type Watcher struct {
	log ports.Logger
}

// New creates a Watcher.
func New(log ports.Logger) *Watcher {
	return &Watcher{log: log}
}

// Run watches roots recursively until ctx is done, invoking onEvent for every
// relevant change. Newly created directories are registered on the fly.
func (w *Watcher) Run(ctx context.Context, roots []string, onEvent func(Event)) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create filesystem watcher")
	}
	defer fsw.Close() //nolint:errcheck // Best effort close in defer

	for _, root := range roots {
		if err := addRecursive(fsw, root); err != nil {
			w.log.Warn("failed to watch root: " + err.Error())
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error: " + err.Error())
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handle(fsw, ev, onEvent)
		}
	}
}

func (w *Watcher) handle(fsw *fsnotify.Watcher, ev fsnotify.Event, onEvent func(Event)) {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	dir := false
	if ev.Op&fsnotify.Create != 0 && isDir(ev.Name) {
		dir = true
		if err := addRecursive(fsw, ev.Name); err != nil {
			w.log.Warn("failed to watch new directory: " + err.Error())
		}
	}

	onEvent(Event{Path: ev.Name, Dir: dir})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func addRecursive(fsw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); name == ".git" || name == ".jj" {
			return filepath.SkipDir
		}
		return fsw.Add(path)
	})
}
