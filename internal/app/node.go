package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scriptdeck/quickload/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"github.com/scriptdeck/quickload/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"github.com/scriptdeck/quickload/internal/adapters/profile" //nolint:depguard // Wired in app layer
	"github.com/scriptdeck/quickload/internal/adapters/watch"   //nolint:depguard // Wired in app layer
	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
	"github.com/scriptdeck/quickload/internal/engine/warmer"
	"github.com/scriptdeck/quickload/internal/loader"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			loader.CacheNodeID,
			loader.FallbackNodeID,
			warmer.NodeID,
			watch.NodeID,
			profile.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cache, err := graft.Dep[*loader.Cache](ctx)
	if err != nil {
		return nil, err
	}
	fallback, err := graft.Dep[*loader.Fallback](ctx)
	if err != nil {
		return nil, err
	}
	warm, err := graft.Dep[*warmer.Warmer](ctx)
	if err != nil {
		return nil, err
	}
	watcher, err := graft.Dep[*watch.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	prof, err := graft.Dep[ports.Profiler](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	// The table is read once at bootstrap; everything after serves memory.
	cache.Load()
	return New(cache, fallback, warm, watcher, prof, log, settings), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	return &Components{
		App:      app,
		Logger:   log,
		Settings: settings,
	}, nil
}
