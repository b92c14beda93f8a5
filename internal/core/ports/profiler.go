package ports

import (
	"io"

	"github.com/scriptdeck/quickload/internal/core/domain"
)

// Profiler records module resolution outcomes for the diagnostic dump.
type Profiler interface {
	// Record adds one resolution sample.
	Record(sample domain.Sample)

	// Dump writes a human-readable summary of everything recorded so far.
	Dump(w io.Writer)
}
