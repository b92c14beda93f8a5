package domain

import "time"

// ResolveOutcome classifies how a module resolution request concluded.
type ResolveOutcome string

const (
	// OutcomeHit means the cached chunk was served.
	OutcomeHit ResolveOutcome = "hit"
	// OutcomeNoEntry means the table had no entry for the module.
	OutcomeNoEntry ResolveOutcome = "no-entry"
	// OutcomeStale means the entry was evicted because its source changed.
	OutcomeStale ResolveOutcome = "stale"
	// OutcomeCorrupt means the entry was evicted because its chunk failed to decode.
	OutcomeCorrupt ResolveOutcome = "corrupt"
	// OutcomeCompiled means the fallback compiler produced a fresh chunk.
	OutcomeCompiled ResolveOutcome = "compiled"
	// OutcomeNotFound means no source file exists for the module.
	OutcomeNotFound ResolveOutcome = "not-found"
)

// Sample is one recorded resolution, fed to the profiler for the
// diagnostic dump.
type Sample struct {
	Module  string
	Outcome ResolveOutcome
	Elapsed time.Duration
}
