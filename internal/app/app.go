package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/enflow/internal/model"
	"github.com/vk/enflow/internal/settings"
	"github.com/vk/enflow/internal/table"
)

// Loader turns scenario paths into row tables plus a time base. The concrete
// HCL implementation lives in the scenario package; the app only consumes
// this interface.
type Loader interface {
	Load(ctx context.Context, paths ...string) (table.Set, model.TimeBase, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	settings settings.Settings
	loader   Loader
}

// New constructs the application: it configures the logger and resolves the
// runtime settings. Scenario loading happens in Run so a failed scenario is
// reported through the configured logger.
func New(outW io.Writer, cfg *Config, loader Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	s := settings.Default()
	if cfg.SettingsPath != "" {
		loaded, err := settings.Load(cfg.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("loading settings: %w", err)
		}
		s = loaded
	}
	if cfg.OutputDir != "" {
		s.OutputDir = cfg.OutputDir
	}
	logger.Debug("Settings resolved.", "solver", s.Solver, "output_dir", s.OutputDir)

	return &App{
		outW:     outW,
		logger:   logger,
		settings: s,
		loader:   loader,
	}, nil
}

// Settings returns the resolved runtime settings. This is primarily for testing.
func (a *App) Settings() settings.Settings {
	return a.settings
}
