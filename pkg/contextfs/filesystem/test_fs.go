package filesystem

import (
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"testing/fstest"
)

// TestFileSystem extends fstest.MapFS to implement our FileSystem interface.
// Names are normalized to slash form with any leading separator dropped, so
// "/repo/contexts/a.yaml" and "repo/contexts/a.yaml" address the same file.
type TestFileSystem struct {
	fstest.MapFS
}

// NewTestFileSystem creates a new test filesystem based on fstest.MapFS
func NewTestFileSystem() *TestFileSystem {
	return &TestFileSystem{
		MapFS: make(fstest.MapFS),
	}
}

// NewTestFileSystemFromMap creates a test filesystem from an existing map
func NewTestFileSystemFromMap(files map[string]*fstest.MapFile) *TestFileSystem {
	return &TestFileSystem{
		MapFS: files,
	}
}

func normalize(name string) string {
	name = path.Clean(filepath.ToSlash(name))
	name = strings.TrimLeft(name, "/")
	if name == "" {
		return "."
	}
	return name
}

// Open implements fs.FS
func (tfs *TestFileSystem) Open(name string) (fs.File, error) {
	return tfs.MapFS.Open(normalize(name))
}

// ReadFile implements FileSystem
func (tfs *TestFileSystem) ReadFile(name string) ([]byte, error) {
	name = normalize(name)
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "readfile", Path: name, Err: fs.ErrInvalid}
	}
	return tfs.MapFS.ReadFile(name)
}

// Stat implements FullFileSystem
func (tfs *TestFileSystem) Stat(name string) (fs.FileInfo, error) {
	return tfs.MapFS.Stat(normalize(name))
}

// ReadDir implements FullFileSystem
func (tfs *TestFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return tfs.MapFS.ReadDir(normalize(name))
}

// WriteFile implements WriteFS for testing
func (tfs *TestFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	name = normalize(name)
	if !fs.ValidPath(name) || name == "." {
		return &fs.PathError{Op: "writefile", Path: name, Err: fs.ErrInvalid}
	}
	if existing, ok := tfs.MapFS[name]; ok && existing.Mode.IsDir() {
		return &fs.PathError{Op: "writefile", Path: name, Err: fs.ErrExist}
	}
	tfs.MapFS[name] = &fstest.MapFile{
		Data: append([]byte(nil), data...),
		Mode: perm,
	}
	return nil
}

// MkdirAll implements WriteFS for testing
func (tfs *TestFileSystem) MkdirAll(dir string, perm fs.FileMode) error {
	dir = normalize(dir)
	if !fs.ValidPath(dir) {
		return &fs.PathError{Op: "mkdirall", Path: dir, Err: fs.ErrInvalid}
	}
	var missing []string
	for p := dir; p != "."; p = path.Dir(p) {
		if existing, ok := tfs.MapFS[p]; ok {
			if !existing.Mode.IsDir() {
				return &fs.PathError{Op: "mkdirall", Path: p, Err: fs.ErrExist}
			}
			continue
		}
		missing = append(missing, p)
	}
	for _, p := range missing {
		tfs.MapFS[p] = &fstest.MapFile{
			Mode: perm | fs.ModeDir,
		}
	}
	return nil
}
