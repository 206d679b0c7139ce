package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/blueprintgo/internal/codec"
)

const validBlueprint = `{
  "version": "1.0",
  "nodes": [
    {"id": "7c9a1d40-2b3e-4f5a-9c8d-000000000001", "type": "view", "label": "Home", "position": {"x": 0, "y": 0}}
  ],
  "edges": [],
  "entryNodeId": "7c9a1d40-2b3e-4f5a-9c8d-000000000001"
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewConfig(t *testing.T) {
	t.Run("requires a path", func(t *testing.T) {
		_, err := NewConfig(Config{})
		assert.Error(t, err)
	})

	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := NewConfig(Config{Path: "a.blueprint"})
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		_, err := NewConfig(Config{Path: "a.blueprint", LogFormat: "xml"})
		assert.ErrorContains(t, err, "invalid log format")
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		_, err := NewConfig(Config{Path: "a.blueprint", LogLevel: "trace"})
		assert.ErrorContains(t, err, "invalid log level")
	})

	t.Run("parses the log level", func(t *testing.T) {
		for name, want := range map[string]slog.Level{
			"debug": slog.LevelDebug,
			"info":  slog.LevelInfo,
			"warn":  slog.LevelWarn,
			"error": slog.LevelError,
		} {
			cfg, err := NewConfig(Config{Path: "a.blueprint", LogLevel: name})
			require.NoError(t, err)
			assert.Equal(t, want, cfg.level)
		}
	})
}

func TestNew(t *testing.T) {
	t.Run("propagates config errors", func(t *testing.T) {
		_, err := New(&bytes.Buffer{}, Config{})
		assert.Error(t, err)
	})

	t.Run("builds a working app", func(t *testing.T) {
		a, err := New(&bytes.Buffer{}, Config{Path: "a.blueprint", LogLevel: "debug", LogFormat: "json"})
		require.NoError(t, err)
		assert.NotNil(t, a.Logger())
		assert.Equal(t, "debug", a.Config().LogLevel)
	})

	t.Run("logger honors the configured level", func(t *testing.T) {
		ctx := context.Background()

		quiet, err := New(&bytes.Buffer{}, Config{Path: "a.blueprint", LogLevel: "error"})
		require.NoError(t, err)
		assert.False(t, quiet.Logger().Enabled(ctx, slog.LevelInfo))

		verbose, err := New(&bytes.Buffer{}, Config{Path: "a.blueprint", LogLevel: "debug"})
		require.NoError(t, err)
		assert.True(t, verbose.Logger().Enabled(ctx, slog.LevelDebug))
	})
}

func TestLoadDocument(t *testing.T) {
	newApp := func(t *testing.T, path string) *App {
		t.Helper()
		a, err := New(&bytes.Buffer{}, Config{Path: path, LogLevel: "error"})
		require.NoError(t, err)
		return a
	}

	t.Run("loads a valid blueprint", func(t *testing.T) {
		path := writeTemp(t, "app.blueprint", validBlueprint)
		a := newApp(t, path)

		doc, err := a.LoadDocument(a.Context(context.Background()))
		require.NoError(t, err)
		assert.Len(t, doc.Nodes, 1)
	})

	t.Run("empty file falls back to a fresh document", func(t *testing.T) {
		path := writeTemp(t, "empty.blueprint", "  \n")
		a := newApp(t, path)

		doc, err := a.LoadDocument(a.Context(context.Background()))
		require.NoError(t, err)
		assert.Empty(t, doc.Nodes)
		assert.NotNil(t, doc.Definitions.AccessGates)
	})

	t.Run("malformed JSON is an error", func(t *testing.T) {
		path := writeTemp(t, "bad.blueprint", `{"version":`)
		a := newApp(t, path)

		_, err := a.LoadDocument(a.Context(context.Background()))
		var parseErr *codec.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Equal(t, codec.KindSyntax, parseErr.Kind)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		a := newApp(t, filepath.Join(t.TempDir(), "missing.blueprint"))
		_, err := a.LoadDocument(a.Context(context.Background()))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestSaveDocument(t *testing.T) {
	src := writeTemp(t, "app.blueprint", validBlueprint)
	a, err := New(&bytes.Buffer{}, Config{Path: src, LogLevel: "error"})
	require.NoError(t, err)
	ctx := a.Context(context.Background())

	doc, err := a.LoadDocument(ctx)
	require.NoError(t, err)

	dst := filepath.Join(t.TempDir(), "out.blueprint")
	require.NoError(t, a.SaveDocument(ctx, dst, doc))

	written, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, codec.Stringify(doc), string(written))
}
