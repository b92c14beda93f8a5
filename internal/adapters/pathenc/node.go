package pathenc

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scriptdeck/quickload/internal/adapters/config"
	"github.com/scriptdeck/quickload/internal/core/domain"
	"github.com/scriptdeck/quickload/internal/core/ports"
)

const NodeID graft.ID = "adapter.path_codec"

func init() {
	graft.Register(graft.Node[ports.PathCodec]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.PathCodec, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings.InstallRootEnv), nil
		},
	})
}
