package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/scriptdeck/quickload/internal/core/domain"
)

const NodeID graft.ID = "adapter.config"

// DefaultFilename is consulted in the working directory when the
// QUICKLOAD_CONFIG environment variable is unset.
const DefaultFilename = "quickload.yaml"

func init() {
	graft.Register(graft.Node[*domain.Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*domain.Settings, error) {
			path := os.Getenv("QUICKLOAD_CONFIG")
			if path == "" {
				path = DefaultFilename
			}
			return NewLoader().Load(path)
		},
	})
}
