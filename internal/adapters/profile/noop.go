package profile

import (
	"io"

	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
)

var _ ports.Profiler = (*Noop)(nil)

// Noop is a no-op implementation of ports.Profiler.
type Noop struct{}

// NewNoop creates a new Noop profiler.
func NewNoop() *Noop {
	return &Noop{}
}

// Record does nothing.
func (*Noop) Record(_ domain.Sample) {}

// Dump writes nothing.
func (*Noop) Dump(_ io.Writer) {}
