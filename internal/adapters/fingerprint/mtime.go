// Package fingerprint derives staleness tokens from file metadata.
package fingerprint

import (
	"os"

	"github.com/scriptdeck/quickload/internal/core/ports"
)

var _ ports.Fingerprinter = (*MTime)(nil)

// MTime implements ports.Fingerprinter using the file modification time with
// second resolution.
type MTime struct{}

// NewMTime creates a new MTime fingerprinter.
func NewMTime() *MTime {
	return &MTime{}
}

// Fingerprint stats path and returns its modification time in unix seconds.
// It returns ok=false for missing or inaccessible paths and for directories.
func (m *MTime) Fingerprint(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return 0, false
	}
	return info.ModTime().Unix(), true
}
