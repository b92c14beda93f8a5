package domain

// Settings holds the resolved loader configuration.
type Settings struct {
	// Roots are the module source root directories, in search order.
	Roots []string
	// Ext is the source file extension, including the leading dot.
	Ext string
	// CacheFile is the absolute path of the persistent cache file.
	CacheFile string
	// InstallRootEnv names the environment variable carrying the installation
	// root used by the portable path codec.
	InstallRootEnv string
	// WarmParallelism bounds concurrent compilation during warming.
	// Zero means one worker per CPU.
	WarmParallelism int
}
