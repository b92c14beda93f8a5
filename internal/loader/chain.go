package loader

import (
	"errors"

	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
)

// ResolverFunc is one stage of the module loader chain.
type ResolverFunc func(name string) (ports.Executable, error)

// Chain is the host's module loader list, consulted in order. The cached
// lookup sits at position 0 and the fallback compiler at position 1, ahead of
// any resolvers the host appends; the cache therefore always gets first say.
type Chain struct {
	stages []ResolverFunc
}

// NewChain builds the default chain. extra resolvers, if any, run after the
// fallback compiler in the order given.
func NewChain(cache *Cache, fallback *Fallback, extra ...ResolverFunc) *Chain {
	stages := make([]ResolverFunc, 0, 2+len(extra))
	stages = append(stages, cache.Resolve, fallback.CompileAndCache)
	stages = append(stages, extra...)
	return &Chain{stages: stages}
}

// Load walks the chain. Cache misses and not-found results fall through to
// the next stage; any other error (a compile error above all) stops the walk
// and surfaces unchanged, exactly as an uncached load would report it.
func (ch *Chain) Load(name string) (ports.Executable, error) {
	var lastErr error
	for _, stage := range ch.stages {
		exec, err := stage(name)
		if err == nil {
			return exec, nil
		}
		if domain.IsMiss(err) || errors.Is(err, domain.ErrModuleNotFound) {
			lastErr = err
			continue
		}
		return nil, err
	}
	if lastErr == nil || domain.IsMiss(lastErr) {
		// Nothing but misses means no stage could even locate the module.
		return nil, domain.ErrModuleNotFound
	}
	return nil, lastErr
}
