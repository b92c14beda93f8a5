// Package fsscan enumerates module sources under search roots.
package fsscan

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceScanner = (*Scanner)(nil)

// Scanner walks directories looking for module source files.
type Scanner struct {
	ext string
}

// NewScanner creates a Scanner for source files with the given extension
// (including the leading dot).
func NewScanner(ext string) *Scanner {
	return &Scanner{ext: ext}
}

// Modules walks root and returns every module source beneath it. Names are
// slash-form paths relative to root with the extension stripped; an init file
// names its parent directory.
func (s *Scanner) Modules(root string) ([]domain.ModuleSource, error) {
	var modules []domain.ModuleSource

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDir(d.Name()) && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), s.ext) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(strings.TrimSuffix(rel, s.ext))
		if name == "init" || strings.HasSuffix(name, "/init") {
			name = strings.TrimSuffix(strings.TrimSuffix(name, "init"), "/")
		}
		if name == "" {
			// An init file directly under the root has no module name.
			return nil
		}
		modules = append(modules, domain.ModuleSource{Name: name, Path: path})
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to scan module root"), "root", root)
	}
	return modules, nil
}

// HasModules reports whether dir contains at least one module source. The walk
// stops at the first hit.
func (s *Scanner) HasModules(dir string) bool {
	found := false
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable subtrees just don't count
		}
		if d.IsDir() {
			if skipDir(d.Name()) && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), s.ext) {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}

// skipDir filters VCS metadata directories out of scans.
func skipDir(name string) bool {
	return name == ".git" || name == ".jj"
}
