package domain

// ModuleSource is a module discovered on disk: its normalized name and the
// source file that defines it.
type ModuleSource struct {
	Name string
	Path string
}
