package loader

import (
	"errors"
	"testing"

	"github.com/scriptdeck/quickload/internal/adapters/fsscan"
	"github.com/scriptdeck/quickload/internal/adapters/searchpath"
	"github.com/scriptdeck/quickload/internal/adapters/sexpr"
	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
	"github.com/scriptdeck/quickload/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestChainColdStartCompiles(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "greet.sx", `(concat "hello " "world")`)

	cache := newTestCache(newMemStore())
	fb, _ := newTestFallback(cache, []string{root})
	chain := NewChain(cache, fb)

	exec, err := chain.Load("greet")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	out, err := exec.Run(t.Context())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.(sexpr.Value).Str != "hello world" {
		t.Fatalf("unexpected module value: %v", out)
	}
	if cache.Len() != 1 {
		t.Fatal("cold load should populate the cache")
	}
}

func TestChainWarmStartSkipsCompiler(t *testing.T) {
	root := t.TempDir()
	source := writeSource(t, root, "greet.sx", `42`)

	// First run compiles for real and flushes the table.
	store := newMemStore()
	first := newTestCache(store)
	if err := first.Put("greet", source, compileSource(t, source)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := first.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	// Second run gets a compiler that must never be consulted.
	ctrl := gomock.NewController(t)
	comp := mocks.NewMockCompiler(ctrl)
	comp.EXPECT().CompileFile(gomock.Any()).Times(0)

	second := newTestCache(store)
	second.Load()
	fb := NewFallback(second, searchpath.New([]string{root}), comp, fsscan.NewScanner(".sx"), ".sx")
	chain := NewChain(second, fb)

	exec, err := chain.Load("greet")
	if err != nil {
		t.Fatalf("warm load: %v", err)
	}
	out, err := exec.Run(t.Context())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.(sexpr.Value).Int != 42 {
		t.Fatalf("unexpected module value: %v", out)
	}
	if second.Dirty() {
		t.Fatal("a pure warm run must leave nothing to flush")
	}
}

func TestChainStaleFallsThroughToCompiler(t *testing.T) {
	root := t.TempDir()
	source := writeSource(t, root, "m.sx", `"old"`)

	store := newMemStore()
	cache := newTestCache(store)
	if err := cache.Put("m", source, compileSource(t, source)); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Rewrite the source so the staleness token no longer matches.
	writeSource(t, root, "m.sx", `"new"`)
	entry := cache.table["m"]
	entry.ModTime -= 10
	cache.table["m"] = entry

	fb, _ := newTestFallback(cache, []string{root})
	chain := NewChain(cache, fb)

	exec, err := chain.Load("m")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	out, _ := exec.Run(t.Context())
	if out.(sexpr.Value).Str != "new" {
		t.Fatalf("stale entry should be recompiled from source, got %v", out)
	}
}

func TestChainUnknownModule(t *testing.T) {
	cache := newTestCache(newMemStore())
	fb, _ := newTestFallback(cache, []string{t.TempDir()})
	chain := NewChain(cache, fb)

	_, err := chain.Load("absent")
	if !errors.Is(err, domain.ErrModuleNotFound) {
		t.Fatalf("want ErrModuleNotFound, got %v", err)
	}
}

func TestChainCompileErrorStopsWalk(t *testing.T) {
	root := t.TempDir()
	writeSource(t, root, "bad.sx", `(unknown-form 1)`)

	cache := newTestCache(newMemStore())
	fb, _ := newTestFallback(cache, []string{root})

	extraCalled := false
	extra := func(name string) (ports.Executable, error) {
		extraCalled = true
		return nil, domain.ErrModuleNotFound
	}
	chain := NewChain(cache, fb, extra)

	_, err := chain.Load("bad")
	if err == nil {
		t.Fatal("broken source should fail the load")
	}
	if errors.Is(err, domain.ErrModuleNotFound) {
		t.Fatalf("compile error must surface as itself, got %v", err)
	}
	if extraCalled {
		t.Fatal("compile error must stop the walk before extra resolvers")
	}
}

func TestChainExtraResolverRunsLast(t *testing.T) {
	cache := newTestCache(newMemStore())
	fb, _ := newTestFallback(cache, []string{t.TempDir()})

	want := &sexpr.Chunk{Name: "host"}
	extra := func(name string) (ports.Executable, error) {
		if name != "hosted" {
			return nil, domain.ErrModuleNotFound
		}
		return want, nil
	}
	chain := NewChain(cache, fb, extra)

	exec, err := chain.Load("hosted")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if exec != ports.Executable(want) {
		t.Fatal("extra resolver result should be returned as-is")
	}
}
