package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scriptdeck/quickload/internal/adapters/config"      //nolint:depguard // Wired in loader wiring
	"github.com/scriptdeck/quickload/internal/adapters/fingerprint" //nolint:depguard // Wired in loader wiring
	"github.com/scriptdeck/quickload/internal/adapters/fsscan"      //nolint:depguard // Wired in loader wiring
	"github.com/scriptdeck/quickload/internal/adapters/logger"      //nolint:depguard // Wired in loader wiring
	"github.com/scriptdeck/quickload/internal/adapters/native"      //nolint:depguard // Wired in loader wiring
	"github.com/scriptdeck/quickload/internal/adapters/pathenc"     //nolint:depguard // Wired in loader wiring
	"github.com/scriptdeck/quickload/internal/adapters/profile"     //nolint:depguard // Wired in loader wiring
	"github.com/scriptdeck/quickload/internal/adapters/searchpath"  //nolint:depguard // Wired in loader wiring
	"github.com/scriptdeck/quickload/internal/adapters/sexpr"       //nolint:depguard // Wired in loader wiring
	"github.com/scriptdeck/quickload/internal/adapters/store"       //nolint:depguard // Wired in loader wiring
	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
)

const (
	// CacheNodeID identifies the cache handle node.
	CacheNodeID graft.ID = "loader.cache"
	// FallbackNodeID identifies the fallback compiler node.
	FallbackNodeID graft.ID = "loader.fallback"
)

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        CacheNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			pathenc.NodeID,
			fingerprint.NodeID,
			sexpr.CodecNodeID,
			logger.NodeID,
			profile.NodeID,
		},
		Run: runCacheNode,
	})

	graft.Register(graft.Node[*Fallback]{
		ID:        FallbackNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			CacheNodeID,
			config.NodeID,
			searchpath.NodeID,
			sexpr.CompilerNodeID,
			fsscan.NodeID,
			native.NodeID,
		},
		Run: runFallbackNode,
	})
}

func runCacheNode(ctx context.Context) (*Cache, error) {
	tableStore, err := graft.Dep[ports.TableStore](ctx)
	if err != nil {
		return nil, err
	}
	paths, err := graft.Dep[ports.PathCodec](ctx)
	if err != nil {
		return nil, err
	}
	fp, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}
	codec, err := graft.Dep[ports.ChunkCodec](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	prof, err := graft.Dep[ports.Profiler](ctx)
	if err != nil {
		return nil, err
	}
	return NewCache(tableStore, paths, fp, codec, log, prof), nil
}

func runFallbackNode(ctx context.Context) (*Fallback, error) {
	cache, err := graft.Dep[*Cache](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	mpath, err := graft.Dep[ports.ModulePath](ctx)
	if err != nil {
		return nil, err
	}
	comp, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}
	scan, err := graft.Dep[ports.SourceScanner](ctx)
	if err != nil {
		return nil, err
	}
	nl, err := graft.Dep[ports.NativeLoader](ctx)
	if err != nil {
		return nil, err
	}
	return NewFallback(cache, mpath, comp, scan, settings.Ext, WithNativeLoader(nl)), nil
}
