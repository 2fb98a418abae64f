package contextfs

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// RepoInfoDir holds repository-wide descriptor files such as stack.yml.
const RepoInfoDir = ".context-kit"

// RepoFile is a file read from inside a repository.
type RepoFile struct {
	Path         string
	RelativePath string
	Content      string
	Size         int64
	ModTime      time.Time
}

// ReadInRepo reads rel relative to repoRoot. Absolute paths and paths that
// leave repoRoot after cleaning are rejected before any I/O. Symlinks are not
// resolved.
func (s *Store) ReadInRepo(repoRoot, rel string) (RepoFile, error) {
	path, err := repoPath(repoRoot, rel)
	if err != nil {
		return RepoFile{}, err
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		s.logger.Warn().Err(err).Str("path", path).Msg("repository read failed")
		return RepoFile{}, newFileSystemError("read", path, err)
	}
	info, err := fs.Stat(s.fs, path)
	if err != nil {
		return RepoFile{}, newFileSystemError("stat", path, err)
	}

	return RepoFile{
		Path:         path,
		RelativePath: rel,
		Content:      string(data),
		Size:         info.Size(),
		ModTime:      info.ModTime(),
	}, nil
}

func repoPath(repoRoot, rel string) (string, error) {
	if strings.TrimSpace(repoRoot) == "" {
		return "", &ValidationError{Field: "rootDir", Reason: "root directory required"}
	}
	if strings.TrimSpace(rel) == "" {
		return "", &ValidationError{Field: "path", Reason: "path required"}
	}
	if filepath.IsAbs(rel) {
		return "", &ValidationError{Field: "path", Reason: "path must be relative to the repository"}
	}

	root := filepath.Clean(repoRoot)
	path := filepath.Join(root, rel)
	within, err := filepath.Rel(root, path)
	if err != nil || within == ".." || strings.HasPrefix(within, ".."+string(filepath.Separator)) {
		return "", &ValidationError{Field: "path", Reason: "path escapes repository"}
	}
	return path, nil
}

// LoadStackInfo decodes <rootDir>/.context-kit/stack.yml.
func (s *Store) LoadStackInfo(rootDir string) (map[string]any, error) {
	return s.loadRepoInfo(rootDir, "stack.yml")
}

// LoadDomainInfo decodes <rootDir>/.context-kit/domains.yml.
func (s *Store) LoadDomainInfo(rootDir string) (map[string]any, error) {
	return s.loadRepoInfo(rootDir, "domains.yml")
}

// loadRepoInfo returns an empty map when the file does not exist.
func (s *Store) loadRepoInfo(rootDir, name string) (map[string]any, error) {
	path, err := repoPath(rootDir, filepath.Join(RepoInfoDir, name))
	if err != nil {
		return nil, err
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, newFileSystemError("read", path, err)
	}

	info := map[string]any{}
	if err := yaml.Unmarshal(data, &info); err != nil {
		return nil, newFileSystemError("decode", path, err)
	}
	if info == nil {
		info = map[string]any{}
	}
	return info, nil
}
