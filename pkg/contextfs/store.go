package contextfs

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/contextfs/pkg/contextfs/filesystem"
	"github.com/rs/zerolog"
)

// StoreOptions holds configuration for a Store.
type StoreOptions struct {
	// Encoder serializes entities; defaults to YAMLEncoder.
	Encoder Encoder

	// Logger receives debug traces of each operation and warnings on failure.
	Logger *zerolog.Logger

	// CreateDirs makes CreateEntity create missing parent directories.
	// Read and Write never create directories.
	CreateDirs bool

	// FileMode is the permission given to files created by Write and CreateEntity.
	FileMode fs.FileMode
	// DirMode is the permission given to directories created by CreateEntity.
	DirMode fs.FileMode
}

// DefaultStoreOptions returns the default store options
func DefaultStoreOptions() *StoreOptions {
	return &StoreOptions{
		Encoder:    YAMLEncoder{},
		CreateDirs: true,
		FileMode:   0644,
		DirMode:    0755,
	}
}

// Store reads and writes plain files and entity YAML files.
// It holds no mutable state; concurrent calls to the same path race at the
// filesystem with no ordering guarantee.
type Store struct {
	fs      filesystem.FileSystem
	opts    StoreOptions
	logger  zerolog.Logger
	encoder Encoder
}

// NewStore creates a store over fsys. A nil fsys uses the OS filesystem and
// nil opts uses DefaultStoreOptions.
func NewStore(fsys filesystem.FileSystem, opts *StoreOptions) *Store {
	if fsys == nil {
		fsys = filesystem.NewOSFileSystem("")
	}
	if opts == nil {
		opts = DefaultStoreOptions()
	}

	s := &Store{fs: fsys, opts: *opts}
	if opts.Logger != nil {
		s.logger = *opts.Logger
	} else {
		s.logger = DefaultLogger()
	}
	s.encoder = opts.Encoder
	if s.encoder == nil {
		s.encoder = YAMLEncoder{}
	}
	if s.opts.FileMode == 0 {
		s.opts.FileMode = 0644
	}
	if s.opts.DirMode == 0 {
		s.opts.DirMode = 0755
	}
	return s
}

// Read returns the full content of path as text.
func (s *Store) Read(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", &ValidationError{Field: "path", Reason: "path required"}
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("read failed")
		return "", newFileSystemError("read", path, err)
	}

	s.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("read file")
	return string(data), nil
}

// Write creates or fully overwrites path with content. A nil content is
// treated as absent and rejected; an empty non-nil slice writes an empty file.
func (s *Store) Write(path string, content []byte) error {
	if strings.TrimSpace(path) == "" {
		return &ValidationError{Field: "path", Reason: "path required"}
	}
	if content == nil {
		return &ValidationError{Field: "content", Reason: "content required"}
	}

	if err := s.fs.WriteFile(path, content, s.opts.FileMode); err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("write failed")
		return newFileSystemError("write", path, err)
	}

	s.logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("wrote file")
	return nil
}

// WriteString is Write for text content, which is always present.
func (s *Store) WriteString(path, content string) error {
	return s.Write(path, []byte(content))
}

// CreateEntity serializes entity to YAML and writes it to
// <rootDir>/contexts/<subdir>/<id>-<slug>.yaml, overwriting any existing
// file at that path. It returns the resolved path.
func (s *Store) CreateEntity(rootDir string, entity Entity, entityType EntityType) (string, error) {
	path, err := ResolvePath(rootDir, entity, entityType)
	if err != nil {
		return "", err
	}
	id := entity.ID()

	data, err := s.encoder.Encode(entity)
	if err != nil {
		return "", s.entityError("encode", path, entityType, id, err)
	}

	if s.opts.CreateDirs {
		if err := s.fs.MkdirAll(filepath.Dir(path), s.opts.DirMode); err != nil {
			return "", s.entityError("mkdir", path, entityType, id, err)
		}
	}

	if err := s.fs.WriteFile(path, data, s.opts.FileMode); err != nil {
		return "", s.entityError("write", path, entityType, id, err)
	}

	log := entityLogger(s.logger, path, entityType, id)
	log.Debug().Int("bytes", len(data)).Msg("created entity")
	return path, nil
}

func (s *Store) entityError(op, path string, entityType EntityType, id string, cause error) *FileSystemError {
	log := entityLogger(s.logger, path, entityType, id)
	log.Warn().Err(cause).Str("op", op).Msg("create entity failed")

	fe := newFileSystemError(op, path, cause)
	fe.EntityType = entityType
	fe.EntityID = id
	return fe
}
