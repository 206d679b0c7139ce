package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/blueprintgo/internal/codec"
)

const (
	uRouter = "3d8f2b10-6a5c-4d7e-8b9f-000000000001"
	uMenu   = "3d8f2b10-6a5c-4d7e-8b9f-000000000002"
	uView   = "3d8f2b10-6a5c-4d7e-8b9f-000000000003"
	uEdge1  = "3d8f2b10-6a5c-4d7e-8b9f-000000000004"
	uEdge2  = "3d8f2b10-6a5c-4d7e-8b9f-000000000005"
)

const validFixture = `{
  "version": "1.0",
  "nodes": [
    {"id": "` + uRouter + `", "type": "app_router", "label": "Root", "position": {"x": 0, "y": 0}},
    {"id": "` + uMenu + `", "type": "menu", "label": "Main menu", "position": {"x": 200, "y": 0}},
    {"id": "` + uView + `", "type": "view", "label": "Home", "position": {"x": 400, "y": 0}}
  ],
  "edges": [
    {"id": "` + uEdge1 + `", "sourceNodeId": "` + uRouter + `", "targetNodeId": "` + uMenu + `"},
    {"id": "` + uEdge2 + `", "sourceNodeId": "` + uMenu + `", "targetNodeId": "` + uView + `"}
  ],
  "entryNodeId": "` + uRouter + `"
}`

const danglingFixture = `{
  "version": "1.0",
  "nodes": [
    {"id": "` + uRouter + `", "type": "app_router", "label": "Root", "position": {"x": 0, "y": 0}}
  ],
  "edges": [
    {"id": "` + uEdge1 + `", "sourceNodeId": "` + uRouter + `", "targetNodeId": "` + uView + `"}
  ],
  "entryNodeId": "` + uRouter + `"
}`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.blueprint")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// execute runs the command tree with the given args and returns stdout and
// the command error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidateCmd(t *testing.T) {
	t.Run("clean document exits zero", func(t *testing.T) {
		path := writeFixture(t, validFixture)
		out, err := execute(t, "validate", path)
		require.NoError(t, err)
		assert.Contains(t, out, "ok (0 warning(s))")
	})

	t.Run("graph errors exit one", func(t *testing.T) {
		path := writeFixture(t, danglingFixture)
		out, err := execute(t, "validate", path)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.Code)
		assert.Contains(t, out, "error")
		assert.Contains(t, out, "orphan_edge")
	})

	t.Run("unparseable document exits one", func(t *testing.T) {
		path := writeFixture(t, `{"version":`)
		_, err := execute(t, "validate", path)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.Code)
	})

	t.Run("missing file argument is a usage error", func(t *testing.T) {
		_, err := execute(t, "validate")
		assert.Error(t, err)
	})

	t.Run("directory argument validates every blueprint under it", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "good.blueprint"), []byte(validFixture), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "bad.blueprint.json"), []byte(danglingFixture), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.json"), []byte("not a blueprint"), 0o644))

		out, err := execute(t, "validate", dir)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 1, exitErr.Code)
		assert.Contains(t, exitErr.Message, "1 of 2 document(s) failed validation")
		assert.Contains(t, out, "good.blueprint: ok")
		assert.Contains(t, out, "orphan_edge")
	})

	t.Run("directory with no blueprints is an error", func(t *testing.T) {
		_, err := execute(t, "validate", t.TempDir())

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Contains(t, exitErr.Message, "no blueprint documents")
	})
}

func TestRoutesCmd(t *testing.T) {
	t.Run("lists routes from the entry", func(t *testing.T) {
		path := writeFixture(t, validFixture)
		out, err := execute(t, "routes", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Root (app_router) -> Main menu (menu) -> Home (view)")
	})

	t.Run("honors the from flag", func(t *testing.T) {
		path := writeFixture(t, validFixture)
		out, err := execute(t, "routes", path, "--from", uMenu)
		require.NoError(t, err)
		assert.Contains(t, out, "Main menu (menu) -> Home (view)")
		assert.NotContains(t, out, "Root (app_router)")
	})

	t.Run("empty document has no routes", func(t *testing.T) {
		path := writeFixture(t, `{"version": "1.0"}`)
		out, err := execute(t, "routes", path)
		require.NoError(t, err)
		assert.Contains(t, out, "no routes")
	})
}

func TestFmtCmd(t *testing.T) {
	// Same document, hostile formatting.
	const messy = `{"version":"1.0","nodes":[{"id":"` + uRouter +
		`","type":"app_router","label":"Root","position":{"x":0,"y":0}}],` +
		`"edges":[],"entryNodeId":"` + uRouter + `"}`

	t.Run("prints canonical form to stdout", func(t *testing.T) {
		path := writeFixture(t, messy)
		out, err := execute(t, "fmt", path)
		require.NoError(t, err)

		doc, perr := codec.Parse(messy)
		require.NoError(t, perr)
		assert.Equal(t, codec.Stringify(doc), out)

		// The file itself is untouched without -w.
		data, rerr := os.ReadFile(path)
		require.NoError(t, rerr)
		assert.Equal(t, messy, string(data))
	})

	t.Run("write flag rewrites the file in place", func(t *testing.T) {
		path := writeFixture(t, messy)
		out, err := execute(t, "fmt", "-w", path)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, rerr := os.ReadFile(path)
		require.NoError(t, rerr)

		doc, perr := codec.Parse(messy)
		require.NoError(t, perr)
		assert.Equal(t, codec.Stringify(doc), string(data))
	})

	t.Run("directory argument requires the write flag", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.blueprint"), []byte(messy), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.blueprint"), []byte(messy), 0o644))

		_, err := execute(t, "fmt", dir)

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("write flag formats a whole directory", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"a.blueprint", "b.blueprint.json"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(messy), 0o644))
		}

		out, err := execute(t, "fmt", "-w", dir)
		require.NoError(t, err)
		assert.Empty(t, out)

		doc, perr := codec.Parse(messy)
		require.NoError(t, perr)
		for _, name := range []string{"a.blueprint", "b.blueprint.json"} {
			data, rerr := os.ReadFile(filepath.Join(dir, name))
			require.NoError(t, rerr)
			assert.Equal(t, codec.Stringify(doc), string(data), name)
		}
	})

	t.Run("fmt is idempotent", func(t *testing.T) {
		path := writeFixture(t, messy)
		_, err := execute(t, "fmt", "-w", path)
		require.NoError(t, err)
		once, err := os.ReadFile(path)
		require.NoError(t, err)

		_, err = execute(t, "fmt", "-w", path)
		require.NoError(t, err)
		twice, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, string(once), string(twice))
	})
}
