package contextfs

import (
	"fmt"
	"sort"

	"github.com/gammazero/toposort"
)

// DependencyOrder sorts entities so that every entity comes after the
// entities it references. Entities that take part in no reference come first,
// in input order. References to unknown ids and to the entity itself are
// ignored. A reference cycle is an error.
func DependencyOrder(entities []LoadedEntity) ([]LoadedEntity, error) {
	byID := make(map[string][]LoadedEntity)
	var ids []string
	for _, e := range entities {
		id := e.ID()
		if _, ok := byID[id]; !ok {
			ids = append(ids, id)
		}
		byID[id] = append(byID[id], e)
	}

	edges := make([]toposort.Edge, 0)
	linked := make(map[string]bool)
	for _, id := range ids {
		seen := make(map[string]bool)
		for _, e := range byID[id] {
			for _, ref := range References(e.Entity) {
				if ref == id || seen[ref] {
					continue
				}
				if _, known := byID[ref]; !known {
					continue
				}
				seen[ref] = true
				// Edge is [2]interface{} where element 0 comes before element 1
				edges = append(edges, toposort.Edge{ref, id})
				linked[ref] = true
				linked[id] = true
			}
		}
	}

	ordered := make([]LoadedEntity, 0, len(entities))
	for _, id := range ids {
		if !linked[id] {
			ordered = append(ordered, byID[id]...)
		}
	}
	if len(edges) == 0 {
		return ordered, nil
	}

	sortEdges(edges)
	sorted, err := toposort.Toposort(edges)
	if err != nil {
		return nil, fmt.Errorf("circular entity reference detected: %w", err)
	}
	for _, node := range sorted {
		id, ok := node.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected type in topological sort result: %T", node)
		}
		ordered = append(ordered, byID[id]...)
	}
	return ordered, nil
}

// sortEdges keeps the toposort input stable across runs.
func sortEdges(edges []toposort.Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		a0, b0 := edges[i][0].(string), edges[j][0].(string)
		if a0 != b0 {
			return a0 < b0
		}
		return edges[i][1].(string) < edges[j][1].(string)
	})
}

func sortedKeys(entity Entity) []string {
	keys := make([]string, 0, len(entity))
	for k := range entity {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
