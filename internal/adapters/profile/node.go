package profile

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scriptdeck/quickload/internal/core/ports"
)

const NodeID graft.ID = "adapter.profiler"

func init() {
	graft.Register(graft.Node[ports.Profiler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Profiler, error) {
			return NewRecorder(), nil
		},
	})
}
