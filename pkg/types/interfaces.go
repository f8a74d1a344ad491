package types

import (
	"io/fs"
)

// FS is the filesystem interface required for binlink operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink creates newname pointing at oldname, stored verbatim
	Symlink(oldname, newname string) error

	// RemoveAll clears whatever sits at a link path, of any kind
	RemoveAll(path string) error

	// Lstat must not follow a trailing symlink, so dangling links are visible.
	// Implementations without symlink support may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)
}
