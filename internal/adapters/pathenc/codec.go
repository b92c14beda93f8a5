// Package pathenc rewrites the installation-root prefix of source paths so a
// persisted cache survives relocation of the install tree.
package pathenc

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/scriptdeck/quickload/internal/core/ports"
)

// Placeholder substitutes the installation root in persisted paths.
const Placeholder = "@install@"

var _ ports.PathCodec = (*Codec)(nil)

// Codec replaces an exact installation-root prefix with Placeholder on encode
// and reverses the substitution on decode. With no root configured both
// directions are identities.
type Codec struct {
	root string
}

// New creates a Codec whose installation root is read from the environment
// variable named by envKey. An empty or unset value disables rewriting.
func New(envKey string) *Codec {
	return NewWithRoot(os.Getenv(envKey))
}

// NewWithRoot creates a Codec with an explicit installation root.
func NewWithRoot(root string) *Codec {
	root = strings.TrimRight(root, string(filepath.Separator))
	return &Codec{root: root}
}

// Encode rewrites path's installation-root prefix to Placeholder. The match is
// anchored: only an exact prefix followed by a separator (or end of string) is
// rewritten, never a coincidental occurrence elsewhere in the path.
func (c *Codec) Encode(path string) string {
	if c.root == "" {
		return path
	}
	if path == c.root {
		return Placeholder
	}
	prefix := c.root + string(filepath.Separator)
	if strings.HasPrefix(path, prefix) {
		return Placeholder + string(filepath.Separator) + path[len(prefix):]
	}
	return path
}

// Decode reverses Encode.
func (c *Codec) Decode(portable string) string {
	if c.root == "" {
		return portable
	}
	if portable == Placeholder {
		return c.root
	}
	prefix := Placeholder + string(filepath.Separator)
	if strings.HasPrefix(portable, prefix) {
		return c.root + string(filepath.Separator) + portable[len(prefix):]
	}
	return portable
}
