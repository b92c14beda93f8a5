package fsscan

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scriptdeck/quickload/internal/adapters/config"
	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
)

const NodeID graft.ID = "adapter.source_scanner"

func init() {
	graft.Register(graft.Node[ports.SourceScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.SourceScanner, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(settings.Ext), nil
		},
	})
}
