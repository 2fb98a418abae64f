package contextfs

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// LoadedEntity is an entity read back from a context repository together
// with the type directory and file it was found in.
type LoadedEntity struct {
	Type   EntityType
	File   string
	Entity Entity
}

// ID returns the loaded entity's identifier.
func (le LoadedEntity) ID() string {
	return le.Entity.ID()
}

// LoadEntities reads every *.yaml file under <rootDir>/contexts/<subdir> for
// the given types, or for all types when none are given. Missing directories
// are skipped. Files that cannot be read or decoded are skipped too; their
// errors are combined into the returned error next to the partial result.
// Empty documents are ignored. Results are ordered by type, then filename.
func (s *Store) LoadEntities(rootDir string, types ...EntityType) ([]LoadedEntity, error) {
	if strings.TrimSpace(rootDir) == "" {
		return nil, &ValidationError{Field: "rootDir", Reason: "root directory required"}
	}
	if len(types) == 0 {
		types = entityTypeOrder
	}
	for _, t := range types {
		if !t.Valid() {
			return nil, unknownTypeError(string(t))
		}
	}

	var (
		loaded []LoadedEntity
		errs   error
	)
	for _, t := range orderTypes(types) {
		dir := filepath.Join(rootDir, ContextsDir, t.Dir())
		entries, err := fs.ReadDir(s.fs, dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			errs = multierr.Append(errs, newFileSystemError("readdir", dir, err))
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || filepath.Ext(entry.Name()) != entityFileExt {
				continue
			}
			file := filepath.Join(dir, entry.Name())
			entity, err := s.loadEntityFile(file)
			if err != nil {
				log := entityLogger(s.logger, file, t, "")
				log.Warn().Err(err).Msg("skipping entity file")
				errs = multierr.Append(errs, err)
				continue
			}
			if entity == nil {
				continue
			}
			loaded = append(loaded, LoadedEntity{Type: t, File: file, Entity: entity})
		}
	}

	s.logger.Debug().Str("root", rootDir).Int("entities", len(loaded)).Msg("loaded entities")
	return loaded, errs
}

func (s *Store) loadEntityFile(file string) (Entity, error) {
	data, err := s.fs.ReadFile(file)
	if err != nil {
		return nil, newFileSystemError("read", file, err)
	}
	var entity Entity
	if err := yaml.Unmarshal(data, &entity); err != nil {
		return nil, newFileSystemError("decode", file, err)
	}
	return entity, nil
}

// orderTypes deduplicates types and sorts them into canonical order.
func orderTypes(types []EntityType) []EntityType {
	rank := make(map[EntityType]int, len(entityTypeOrder))
	for i, t := range entityTypeOrder {
		rank[t] = i
	}
	seen := make(map[EntityType]bool, len(types))
	out := make([]EntityType, 0, len(types))
	for _, t := range types {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return rank[out[i]] < rank[out[j]] })
	return out
}
