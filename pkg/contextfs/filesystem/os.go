package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem implements FullFileSystem using the OS filesystem.
// Relative names resolve against root; absolute names are used as given.
type OSFileSystem struct {
	root string
}

// NewOSFileSystem creates a new OS-based filesystem rooted at the given path.
// An empty root resolves relative names against the working directory.
func NewOSFileSystem(root string) *OSFileSystem {
	return &OSFileSystem{root: root}
}

// Root returns the directory relative names resolve against.
func (osfs *OSFileSystem) Root() string {
	return osfs.root
}

func (osfs *OSFileSystem) resolve(name string) string {
	if osfs.root == "" || filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(osfs.root, name)
}

// Open implements fs.FS
func (osfs *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(osfs.resolve(name))
}

// ReadFile implements FileSystem
func (osfs *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(osfs.resolve(name))
}

// Stat implements FullFileSystem
func (osfs *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(osfs.resolve(name))
}

// ReadDir implements FullFileSystem
func (osfs *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(osfs.resolve(name))
}

// WriteFile implements WriteFS
func (osfs *OSFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(osfs.resolve(name), data, perm)
}

// MkdirAll implements WriteFS
func (osfs *OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(osfs.resolve(path), perm)
}
