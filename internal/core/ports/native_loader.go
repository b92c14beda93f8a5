package ports

// NativeLoader loads binary extension modules by the host's shared-library
// naming convention. Native modules are served directly and never cached.
type NativeLoader interface {
	// Load opens the native library at path and returns its module entry
	// point as an executable.
	Load(path string) (Executable, error)
}
