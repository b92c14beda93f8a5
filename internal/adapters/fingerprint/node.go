package fingerprint

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scriptdeck/quickload/internal/core/ports"
)

const NodeID graft.ID = "adapter.fingerprint"

func init() {
	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Fingerprinter, error) {
			return NewMTime(), nil
		},
	})
}
