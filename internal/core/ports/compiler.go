package ports

// Compiler is the host's compile primitive: it turns a module source file into
// an executable chunk.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// CompileFile reads and compiles the source file at path. Compile errors
	// are returned unchanged; the loader surfaces them to the host exactly as
	// an uncached load would.
	CompileFile(path string) (Executable, error)
}

// ChunkCodec encodes compiled chunks for persistence and decodes them back
// into executable form.
type ChunkCodec interface {
	// EncodeChunk serializes a compiled chunk.
	EncodeChunk(exec Executable) ([]byte, error)

	// DecodeChunk deserializes a chunk previously produced by EncodeChunk.
	// It must fail cleanly on arbitrary byte corruption.
	DecodeChunk(blob []byte) (Executable, error)
}
