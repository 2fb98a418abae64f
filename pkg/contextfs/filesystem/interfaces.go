package filesystem

import (
	"io/fs"
)

// ReadFS is an alias for fs.FS, representing a read-only file system.
type ReadFS = fs.FS

// WriteFS defines the interface for write operations on a file system.
type WriteFS interface {
	WriteFile(name string, data []byte, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
}

// FileSystem combines read and write operations.
// ReadFile is required so implementations can read a whole file
// without going through Open.
type FileSystem interface {
	ReadFS
	WriteFS
	ReadFile(name string) ([]byte, error)
}

// FullFileSystem provides the complete filesystem interface including Stat and ReadDir
type FullFileSystem interface {
	FileSystem
	Stat(name string) (fs.FileInfo, error)
	ReadDir(name string) ([]fs.DirEntry, error)
}
