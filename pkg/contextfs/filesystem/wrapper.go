package filesystem

import (
	"io/fs"
)

// FailingFileSystem wraps a FileSystem and returns a fixed error from the
// operations that have one configured. Operations without an error are passed
// through to the wrapped filesystem. It is meant for exercising error paths.
type FailingFileSystem struct {
	FileSystem

	ReadErr  error
	WriteErr error
	MkdirErr error

	// Writes counts WriteFile calls that reached this wrapper, failed or not.
	Writes int
}

// NewFailingFileSystem creates a wrapper around fsys with no failures configured.
func NewFailingFileSystem(fsys FileSystem) *FailingFileSystem {
	return &FailingFileSystem{FileSystem: fsys}
}

// ReadFile implements FileSystem
func (f *FailingFileSystem) ReadFile(name string) ([]byte, error) {
	if f.ReadErr != nil {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: f.ReadErr}
	}
	return f.FileSystem.ReadFile(name)
}

// WriteFile implements WriteFS
func (f *FailingFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f.Writes++
	if f.WriteErr != nil {
		return &fs.PathError{Op: "writefile", Path: name, Err: f.WriteErr}
	}
	return f.FileSystem.WriteFile(name, data, perm)
}

// MkdirAll implements WriteFS
func (f *FailingFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	if f.MkdirErr != nil {
		return &fs.PathError{Op: "mkdirall", Path: path, Err: f.MkdirErr}
	}
	return f.FileSystem.MkdirAll(path, perm)
}
