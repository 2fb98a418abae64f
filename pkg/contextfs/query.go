package contextfs

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// FindByID returns the first entity with the given id.
func FindByID(entities []LoadedEntity, id string) (LoadedEntity, bool) {
	for _, e := range entities {
		if e.ID() == id {
			return e, true
		}
	}
	return LoadedEntity{}, false
}

// FindByIDs returns the entities whose id is one of ids, in input order.
func FindByIDs(entities []LoadedEntity, ids ...string) []LoadedEntity {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []LoadedEntity
	for _, e := range entities {
		if want[e.ID()] {
			out = append(out, e)
		}
	}
	return out
}

// References returns the string items of every list-valued field of entity,
// in field-name order. Only ids that name some entity are meaningful; callers
// filter against the set they loaded.
func References(entity Entity) []string {
	var refs []string
	for _, key := range sortedKeys(entity) {
		items, ok := entity[key].([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			if s, ok := item.(string); ok && s != "" {
				refs = append(refs, s)
			}
		}
	}
	return refs
}

// Related returns the entities referenced by the entity with the given id.
// It returns nil when no such entity exists.
func Related(entities []LoadedEntity, id string) []LoadedEntity {
	entity, ok := FindByID(entities, id)
	if !ok {
		return nil
	}
	var ids []string
	for _, ref := range References(entity.Entity) {
		if ref != id {
			ids = append(ids, ref)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return FindByIDs(entities, ids...)
}

// Gaps lists entities that have neither a title nor an objective.
func Gaps(entities []LoadedEntity) []string {
	var gaps []string
	for _, e := range entities {
		if e.Entity.Title() == "" && e.Entity.stringField("objective") == "" {
			gaps = append(gaps, fmt.Sprintf("%s: Missing title/objective", e.ID()))
		}
	}
	return gaps
}

// Recommendations suggests follow-ups for the given entities and gaps.
func Recommendations(entities []LoadedEntity, gaps []string) []string {
	var recs []string
	if len(gaps) > 0 {
		recs = append(recs, fmt.Sprintf("Address %d identified gaps", len(gaps)))
	}

	blocked := 0
	for _, e := range entities {
		if e.Entity.stringField("status") == "blocked" {
			blocked++
		}
	}
	if blocked > 0 {
		recs = append(recs, fmt.Sprintf("Review %d blocked items", blocked))
	}
	return recs
}

// ErrEntityNotFound is returned, wrapped, when a lookup by id finds nothing.
var ErrEntityNotFound = errors.New("entity not found")

const maxSummaryLength = 200

// SearchResult is one entity matched by Search.
type SearchResult struct {
	Type    EntityType
	ID      string
	Name    string
	Summary string
	File    string
}

// Search returns the entities whose YAML form contains query, ignoring case.
// Keys match as well as values. When types are given only entities of those
// types are considered. Name falls back from "name" to "title" to the file
// stem; Summary is the "summary" field cut to 200 characters.
func Search(entities []LoadedEntity, query string, types ...EntityType) ([]SearchResult, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil, &ValidationError{Field: "query", Reason: "query required"}
	}
	allowed := make(map[EntityType]bool, len(types))
	for _, t := range types {
		if !t.Valid() {
			return nil, unknownTypeError(string(t))
		}
		allowed[t] = true
	}

	var results []SearchResult
	for _, e := range entities {
		if len(allowed) > 0 && !allowed[e.Type] {
			continue
		}
		text, err := YAMLEncoder{}.Encode(e.Entity)
		if err != nil || !strings.Contains(strings.ToLower(string(text)), needle) {
			continue
		}
		results = append(results, SearchResult{
			Type:    e.Type,
			ID:      e.ID(),
			Name:    displayName(e),
			Summary: truncateRunes(e.Entity.stringField("summary"), maxSummaryLength),
			File:    e.File,
		})
	}
	return results, nil
}

func displayName(e LoadedEntity) string {
	if name := e.Entity.stringField("name"); name != "" {
		return name
	}
	if title := e.Entity.Title(); title != "" {
		return title
	}
	if e.File != "" {
		return strings.TrimSuffix(filepath.Base(e.File), filepath.Ext(e.File))
	}
	return e.ID()
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// SpecContent returns the "content" field of the spec entity with the given id.
func SpecContent(entities []LoadedEntity, id string) (string, error) {
	for _, e := range entities {
		if e.Type == TypeSpec && e.ID() == id {
			return e.Entity.stringField("content"), nil
		}
	}
	return "", fmt.Errorf("specification %s: %w", id, ErrEntityNotFound)
}
