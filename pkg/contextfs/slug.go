package contextfs

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// MaxSlugLength bounds the title-derived part of an entity filename.
	MaxSlugLength = 40

	untitledSlug  = "untitled"
	entityFileExt = ".yaml"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases title, collapses every run of characters outside
// [a-z0-9] into a single hyphen, drops hyphens at either end and truncates
// the result to MaxSlugLength bytes. Nothing is cleaned up after the cut.
func Slugify(title string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(title), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > MaxSlugLength {
		slug = slug[:MaxSlugLength]
	}
	return slug
}

// EntityFilename returns "<id>-<slug>.yaml" for entity. The id is used verbatim.
func EntityFilename(entity Entity) string {
	slug := Slugify(entity.Title())
	if slug == "" {
		slug = untitledSlug
	}
	return entity.ID() + "-" + slug + entityFileExt
}

// ResolvePath validates its inputs and returns
// <rootDir>/contexts/<subdir>/<id>-<slug>.yaml. It performs no I/O.
func ResolvePath(rootDir string, entity Entity, entityType EntityType) (string, error) {
	if strings.TrimSpace(rootDir) == "" {
		return "", &ValidationError{Field: "rootDir", Reason: "root directory required"}
	}
	if entity == nil || entity.ID() == "" {
		return "", &ValidationError{Field: "entity", Reason: "entity with id required"}
	}
	if !entityType.Valid() {
		return "", unknownTypeError(string(entityType))
	}
	return filepath.Join(rootDir, ContextsDir, entityType.Dir(), EntityFilename(entity)), nil
}
