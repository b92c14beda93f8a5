package sexpr

import (
	"os"

	"github.com/scriptdeck/quickload/internal/core/ports"
	"github.com/vmihailenco/msgpack/v5"
	"go.trai.ch/zerr"
)

var (
	_ ports.Compiler   = (*Engine)(nil)
	_ ports.ChunkCodec = (*Engine)(nil)
)

// Engine exposes the script compiler and chunk codec to the loader.
type Engine struct{}

// New creates a new Engine.
func New() *Engine {
	return &Engine{}
}

// CompileFile reads and compiles the source file at path.
func (e *Engine) CompileFile(path string) (ports.Executable, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the module search
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read module source")
	}
	return Compile(path, string(data))
}

// EncodeChunk serializes a compiled chunk.
func (e *Engine) EncodeChunk(exec ports.Executable) ([]byte, error) {
	chunk, ok := exec.(*Chunk)
	if !ok {
		return nil, zerr.New("executable was not produced by this engine")
	}
	blob, err := msgpack.Marshal(chunk)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode chunk")
	}
	return blob, nil
}

// DecodeChunk deserializes and validates a chunk. Arbitrary corruption is
// reported as an error, never a panic at run time.
func (e *Engine) DecodeChunk(blob []byte) (ports.Executable, error) {
	var chunk Chunk
	if err := msgpack.Unmarshal(blob, &chunk); err != nil {
		return nil, zerr.Wrap(err, "failed to decode chunk")
	}
	if err := chunk.validate(); err != nil {
		return nil, zerr.Wrap(err, "decoded chunk failed validation")
	}
	return &chunk, nil
}
