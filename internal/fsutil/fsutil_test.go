package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlueprintPath(t *testing.T) {
	assert.True(t, IsBlueprintPath("app.blueprint"))
	assert.True(t, IsBlueprintPath("app.blueprint.json"))
	assert.True(t, IsBlueprintPath("/some/dir/app.blueprint"))
	assert.False(t, IsBlueprintPath("app.json"))
	assert.False(t, IsBlueprintPath("app.blueprint.yaml"))
	assert.False(t, IsBlueprintPath("blueprint"))
}

func TestFindBlueprints(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))

	for _, name := range []string{
		"a.blueprint",
		"b.blueprint.json",
		"ignore.json",
		filepath.Join("nested", "c.blueprint"),
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}

	found, err := FindBlueprints(dir)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, "a.blueprint"),
		filepath.Join(dir, "b.blueprint.json"),
		filepath.Join(dir, "nested", "c.blueprint"),
	}, found)
}

func TestFindBlueprintsMissingRoot(t *testing.T) {
	_, err := FindBlueprints(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
