package sexpr

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/scriptdeck/quickload/internal/core/ports"
)

const (
	CompilerNodeID graft.ID = "adapter.compiler"
	CodecNodeID    graft.ID = "adapter.chunk_codec"
)

func init() {
	graft.Register(graft.Node[ports.Compiler]{
		ID:        CompilerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Compiler, error) {
			return New(), nil
		},
	})

	graft.Register(graft.Node[ports.ChunkCodec]{
		ID:        CodecNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ChunkCodec, error) {
			return New(), nil
		},
	})
}
