package native

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scriptdeck/quickload/internal/core/ports"
)

const NodeID graft.ID = "adapter.native_loader"

func init() {
	graft.Register(graft.Node[ports.NativeLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.NativeLoader, error) {
			return NewPluginLoader(), nil
		},
	})
}
