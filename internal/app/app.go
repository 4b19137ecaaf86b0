package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/whiffcast/whiffcast/internal/config"
	"github.com/whiffcast/whiffcast/internal/ctxlog"
	"github.com/whiffcast/whiffcast/internal/projection"
)

// defaultSettingsPath is where settings are looked up when --config is not given.
const defaultSettingsPath = "whiffcast.hcl"

// defaultEngineTimeout bounds a projection request when no timeout is configured.
const defaultEngineTimeout = 15 * time.Second

// EngineFactory builds the projection engine once settings are resolved. It
// exists so tests can substitute a deterministic double for the remote
// service.
type EngineFactory func(settings config.EngineSettings) (projection.Engine, error)

// App encapsulates the application's dependencies, configuration, and
// lifecycle for a single prediction.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	settings *config.Settings
	engine   projection.Engine
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, resolved settings,
// and a ready projection engine.
func NewApp(outW, errW io.Writer, appConfig *Config, loader config.Loader, newEngine EngineFactory) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	settings, err := resolveSettings(ctx, appConfig, loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	logger.Debug("Settings resolved.", "engine_url", settings.Engine.BaseURL)

	engine, err := newEngine(settings.Engine)
	if err != nil {
		return nil, fmt.Errorf("failed to build projection engine: %w", err)
	}
	logger.Debug("Projection engine ready.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		settings: settings,
		engine:   engine,
	}, nil
}

// Close releases the engine's resources, when it holds any.
func (a *App) Close() error {
	if closer, ok := a.engine.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// resolveSettings layers the three settings sources: the HCL file (lowest),
// then the WHIFFCAST_* environment overlay, with hard defaults filled last.
// Flag values are already baked into appConfig by the argument layer.
func resolveSettings(ctx context.Context, appConfig *Config, loader config.Loader) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	settings := &config.Settings{}

	path := appConfig.ConfigPath
	if path == "" {
		if _, err := os.Stat(defaultSettingsPath); err == nil {
			path = defaultSettingsPath
		}
	}

	if path != "" {
		loaded, err := loader.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		settings = loaded
	} else {
		logger.Debug("No settings file found, relying on environment and defaults.")
	}

	if err := config.ApplyEnv(settings); err != nil {
		return nil, err
	}
	if settings.Engine.Timeout == 0 {
		settings.Engine.Timeout = defaultEngineTimeout
	}
	return settings, nil
}
