package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/blueprintgo/internal/codec"
	"github.com/vk/blueprintgo/internal/ctxlog"
	"github.com/vk/blueprintgo/internal/fsutil"
	"github.com/vk/blueprintgo/internal/schema"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	errW   io.Writer
	logger *slog.Logger
	config *Config
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger writing to errW.
func New(errW io.Writer, cfg Config) (*App, error) {
	validated, err := NewConfig(cfg)
	if err != nil {
		return nil, err
	}

	logger := newLogger(validated.level, validated.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		errW:   errW,
		logger: logger,
		config: validated,
	}, nil
}

// Context returns a context carrying the application logger.
func (a *App) Context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Config returns the validated run configuration.
func (a *App) Config() *Config {
	return a.config
}

// LoadDocument reads and parses the configured blueprint file. An empty or
// whitespace-only file yields a fresh empty document with a warning rather
// than an error, so an interactive session is never lost to a blank file.
// Malformed JSON and schema mismatches are returned as-is for the caller to
// surface.
func (a *App) LoadDocument(ctx context.Context) (*schema.Document, error) {
	logger := ctxlog.FromContext(ctx)
	path := a.config.Path

	if !fsutil.IsBlueprintPath(path) {
		logger.Warn("File does not follow the blueprint naming convention.", "path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blueprint %s: %w", path, err)
	}

	doc, err := codec.Parse(string(data))
	if err != nil {
		var parseErr *codec.ParseError
		if errors.As(err, &parseErr) && parseErr.Kind == codec.KindEmpty {
			logger.Warn("Blueprint file is empty; starting from a fresh document.", "path", path)
			return schema.NewDocument(), nil
		}
		return nil, fmt.Errorf("failed to parse blueprint %s: %w", path, err)
	}

	logger.Debug("Blueprint loaded.", "path", path, "nodes", len(doc.Nodes), "edges", len(doc.Edges))
	return doc, nil
}

// SaveDocument writes the document back to path in canonical pretty form.
func (a *App) SaveDocument(ctx context.Context, path string, doc *schema.Document) error {
	text := codec.Stringify(doc)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write blueprint %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Blueprint saved.", "path", path)
	return nil
}
