package contextfs

import (
	"fmt"
	"strings"
)

// EntityType is the closed set of entity kinds stored in a context repository.
type EntityType string

const (
	TypeGovernance EntityType = "governance"
	TypeFeature    EntityType = "feature"
	TypeUserStory  EntityType = "userstory"
	TypeSpec       EntityType = "spec"
	TypeTask       EntityType = "task"
	TypeService    EntityType = "service"
	TypePackage    EntityType = "package"
)

// ContextsDir is the directory under a repository root that holds entity subdirectories.
const ContextsDir = "contexts"

var entityTypeOrder = []EntityType{
	TypeGovernance,
	TypeFeature,
	TypeUserStory,
	TypeSpec,
	TypeTask,
	TypeService,
	TypePackage,
}

var entityDirs = map[EntityType]string{
	TypeGovernance: "governance",
	TypeFeature:    "features",
	TypeUserStory:  "userstories",
	TypeSpec:       "specs",
	TypeTask:       "tasks",
	TypeService:    "services",
	TypePackage:    "packages",
}

// AllEntityTypes returns every recognized entity type in canonical order.
func AllEntityTypes() []EntityType {
	return append([]EntityType(nil), entityTypeOrder...)
}

// ParseEntityType converts a tag into an EntityType, rejecting unknown tags.
func ParseEntityType(tag string) (EntityType, error) {
	t := EntityType(strings.TrimSpace(tag))
	if !t.Valid() {
		return "", unknownTypeError(tag)
	}
	return t, nil
}

func unknownTypeError(tag string) *ValidationError {
	return &ValidationError{
		Field:  "entityType",
		Reason: fmt.Sprintf("unknown entity type %q", tag),
	}
}

// Valid reports whether t is one of the recognized entity types.
func (t EntityType) Valid() bool {
	_, ok := entityDirs[t]
	return ok
}

// Dir returns the subdirectory name for t, or "" when t is not recognized.
func (t EntityType) Dir() string {
	return entityDirs[t]
}

func (t EntityType) String() string {
	return string(t)
}

// Entity is an opaque record. Only "id" and "title" are inspected;
// the whole record is passed through to serialization.
type Entity map[string]any

// ID returns the entity identifier, formatted as text. Missing or nil ids yield "".
func (e Entity) ID() string {
	return e.stringField("id")
}

// Title returns the entity title, or "" when absent.
func (e Entity) Title() string {
	return e.stringField("title")
}

func (e Entity) stringField(key string) string {
	v, ok := e[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
