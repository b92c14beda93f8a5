package warmer

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scriptdeck/quickload/internal/adapters/config"     //nolint:depguard // Wired in engine wiring
	"github.com/scriptdeck/quickload/internal/adapters/fsscan"     //nolint:depguard // Wired in engine wiring
	"github.com/scriptdeck/quickload/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	"github.com/scriptdeck/quickload/internal/adapters/searchpath" //nolint:depguard // Wired in engine wiring
	"github.com/scriptdeck/quickload/internal/adapters/sexpr"      //nolint:depguard // Wired in engine wiring
	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
	"github.com/scriptdeck/quickload/internal/loader"
)

// NodeID is the unique identifier for the warmer Graft node.
const NodeID graft.ID = "engine.warmer"

func init() {
	graft.Register(graft.Node[*Warmer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			loader.CacheNodeID,
			config.NodeID,
			searchpath.NodeID,
			sexpr.CompilerNodeID,
			fsscan.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Warmer, error) {
			cache, err := graft.Dep[*loader.Cache](ctx)
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
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cache, mpath, comp, scan, log, settings.WarmParallelism), nil
		},
	})
}
