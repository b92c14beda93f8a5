// Package profile aggregates module resolution outcomes for the stats dump.
package profile

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
)

var _ ports.Profiler = (*Recorder)(nil)

type moduleStats struct {
	outcomes map[domain.ResolveOutcome]int
	elapsed  time.Duration
}

// Recorder implements ports.Profiler with in-memory aggregation per module.
type Recorder struct {
	mu      sync.Mutex
	modules map[string]*moduleStats
	totals  map[domain.ResolveOutcome]int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		modules: make(map[string]*moduleStats),
		totals:  make(map[domain.ResolveOutcome]int),
	}
}

// Record adds one resolution sample.
func (r *Recorder) Record(sample domain.Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.modules[sample.Module]
	if !ok {
		stats = &moduleStats{outcomes: make(map[domain.ResolveOutcome]int)}
		r.modules[sample.Module] = stats
	}
	stats.outcomes[sample.Outcome]++
	stats.elapsed += sample.Elapsed
	r.totals[sample.Outcome]++
}

// Dump writes a per-module summary sorted by cumulative time, slowest first,
// followed by outcome totals.
func (r *Recorder) Dump(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := r.modules[names[i]], r.modules[names[j]]
		if a.elapsed != b.elapsed {
			return a.elapsed > b.elapsed
		}
		return names[i] < names[j]
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODULE\tHITS\tCOMPILES\tEVICTIONS\tTIME")
	for _, name := range names {
		stats := r.modules[name]
		evictions := stats.outcomes[domain.OutcomeStale] + stats.outcomes[domain.OutcomeCorrupt]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n",
			name,
			stats.outcomes[domain.OutcomeHit],
			stats.outcomes[domain.OutcomeCompiled],
			evictions,
			stats.elapsed,
		)
	}
	_ = tw.Flush()

	fmt.Fprintf(w, "\ntotal: %d hits, %d compiles, %d stale, %d corrupt, %d not found\n",
		r.totals[domain.OutcomeHit],
		r.totals[domain.OutcomeCompiled],
		r.totals[domain.OutcomeStale],
		r.totals[domain.OutcomeCorrupt],
		r.totals[domain.OutcomeNotFound],
	)
}
