package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/buildgridgo/internal/config"
	"github.com/vk/buildgridgo/internal/ctxlog"
	"github.com/vk/buildgridgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and registry. Job
// records are written to outW and logs to logW, so machine-readable output
// stays separable from diagnostics.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the matrix declaration into the format-agnostic model first.
	model, err := loader.Load(ctx, cfg.MatrixPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	// Create and populate the registry with runner modules.
	reg := registry.New()
	if len(modules) == 0 {
		modules = defaultModules(cfg, outW, logW)
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All runner modules registered.", "count", len(modules))

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
