package archive

import (
	"cordcore/internal/infra/archive/fs"
)

// NewFilesystem constructs a filesystem-backed archive.Store rooted at the
// provided path. Returns archive.Store to encourage call sites to depend on
// the interface instead of concrete implementations.
func NewFilesystem(root string) (Store, error) {
	return fs.New(root)
}
