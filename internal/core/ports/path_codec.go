package ports

// PathCodec rewrites absolute source paths to a relocatable form before
// persistence and back before any filesystem access. Encode and Decode are
// exact inverses; when no installation root is configured both are identities.
type PathCodec interface {
	Encode(path string) string
	Decode(portable string) string
}
