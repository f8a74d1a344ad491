package filesystem

import (
	"github.com/arthur-debert/binlink/pkg/types"
	"github.com/spf13/afero"
)

// NewOS creates a filesystem backed by the operating system
func NewOS() types.FS {
	return NewAferoFS(afero.NewOsFs())
}
