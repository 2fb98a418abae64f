package contextfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/contextfs/pkg/contextfs"
)

func TestParseEntityType(t *testing.T) {
	for _, typ := range contextfs.AllEntityTypes() {
		got, err := contextfs.ParseEntityType(string(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, got)
		assert.NotEmpty(t, got.Dir())
	}

	_, err := contextfs.ParseEntityType("bogus")
	require.Error(t, err)
	assert.True(t, contextfs.IsValidationError(err))
	assert.Contains(t, err.Error(), `"bogus"`)

	_, err = contextfs.ParseEntityType("features")
	assert.Error(t, err, "directory names are not type tags")
}

func TestAllEntityTypesOrder(t *testing.T) {
	want := []contextfs.EntityType{
		contextfs.TypeGovernance,
		contextfs.TypeFeature,
		contextfs.TypeUserStory,
		contextfs.TypeSpec,
		contextfs.TypeTask,
		contextfs.TypeService,
		contextfs.TypePackage,
	}
	assert.Equal(t, want, contextfs.AllEntityTypes())

	// Callers get a copy.
	types := contextfs.AllEntityTypes()
	types[0] = "mutated"
	assert.Equal(t, contextfs.TypeGovernance, contextfs.AllEntityTypes()[0])
}

func TestEntityTypeDir(t *testing.T) {
	assert.Equal(t, "features", contextfs.TypeFeature.Dir())
	assert.Equal(t, "userstories", contextfs.TypeUserStory.Dir())
	assert.Equal(t, "governance", contextfs.TypeGovernance.Dir())
	assert.Equal(t, "", contextfs.EntityType("bogus").Dir())
	assert.False(t, contextfs.EntityType("bogus").Valid())
}

func TestEntityAccessors(t *testing.T) {
	e := contextfs.Entity{"id": "F1", "title": "Hello"}
	assert.Equal(t, "F1", e.ID())
	assert.Equal(t, "Hello", e.Title())

	assert.Equal(t, "", contextfs.Entity{}.ID())
	assert.Equal(t, "", contextfs.Entity{"id": nil}.ID())
	assert.Equal(t, "7", contextfs.Entity{"id": 7}.ID())

	var nilEntity contextfs.Entity
	assert.Equal(t, "", nilEntity.Title())
}
