package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/whiffcast/whiffcast/internal/config"
	"github.com/whiffcast/whiffcast/internal/projection"
)

// stubEngine is a deterministic projection.Engine double that records the
// request it received.
type stubEngine struct {
	result *projection.Result
	err    error
	gotReq projection.Request
	calls  int
}

func (s *stubEngine) Project(ctx context.Context, req projection.Request) (*projection.Result, error) {
	s.calls++
	s.gotReq = req
	return s.result, s.err
}

// stubLoader is a config.Loader double returning fixed settings.
type stubLoader struct {
	settings *config.Settings
	err      error
	gotPath  string
}

func (s *stubLoader) Load(ctx context.Context, path string) (*config.Settings, error) {
	s.gotPath = path
	return s.settings, s.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewConfig_RequiresPitcherAndOpponent(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{Opponent: "PHI"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Pitcher")

	_, err = NewConfig(Config{Pitcher: "Paul Skenes"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Opponent")

	cfg, err := NewConfig(Config{Pitcher: "Paul Skenes", Opponent: "PHI"})
	require.NoError(t, err)
	require.Equal(t, "Paul Skenes", cfg.Pitcher)
}

func TestResolveSettings_EnvOverridesFile(t *testing.T) {
	// --- Arrange ---
	t.Setenv("WHIFFCAST_ENGINE_URL", "https://env.example.com")
	loader := &stubLoader{settings: &config.Settings{
		Engine: config.EngineSettings{
			BaseURL: "https://file.example.com",
			Timeout: 5 * time.Second,
		},
	}}
	appConfig := &Config{Pitcher: "A", Opponent: "B", ConfigPath: "explicit.hcl"}

	// --- Act ---
	settings, err := resolveSettings(context.Background(), appConfig, loader)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "explicit.hcl", loader.gotPath)
	require.Equal(t, "https://env.example.com", settings.Engine.BaseURL)
	require.Equal(t, 5*time.Second, settings.Engine.Timeout)
}

func TestResolveSettings_DefaultsWithoutFile(t *testing.T) {
	// --- Arrange ---
	// No explicit path and no whiffcast.hcl in the working directory, so the
	// loader must not be consulted and the hard defaults apply.
	t.Setenv("WHIFFCAST_ENGINE_URL", "")
	loader := &stubLoader{err: errors.New("loader must not be called")}
	appConfig := &Config{Pitcher: "A", Opponent: "B"}

	// --- Act ---
	settings, err := resolveSettings(context.Background(), appConfig, loader)

	// --- Assert ---
	require.NoError(t, err)
	require.Empty(t, loader.gotPath)
	require.Empty(t, settings.Engine.BaseURL)
	require.Equal(t, defaultEngineTimeout, settings.Engine.Timeout)
}

func TestResolveSettings_LoaderFailurePropagates(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	loader := &stubLoader{err: errors.New("no such file")}
	appConfig := &Config{Pitcher: "A", Opponent: "B", ConfigPath: "missing.hcl"}

	// --- Act ---
	_, err := resolveSettings(context.Background(), appConfig, loader)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "no such file")
}

func TestRun_PrintsFormattedResult(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	engine := &stubEngine{result: &projection.Result{Pitcher: "Paul Skenes", Opponent: "PHI", Mean: 7.3}}
	a := &App{
		outW:     out,
		logger:   quietLogger(),
		config:   &Config{Pitcher: "Paul Skenes", Opponent: "PHI"},
		settings: &config.Settings{Defaults: config.DefaultSettings{Park: "PNC Park"}},
		engine:   engine,
	}

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, 1, engine.calls)
	// The park default from settings fills an empty --park.
	require.Equal(t, "PNC Park", engine.gotReq.Park)
	require.Contains(t, out.String(), "=== Paul Skenes vs PHI ===")
	require.Contains(t, out.String(), "Projected Ks: 7.3")
}

func TestRun_ExplicitParkWinsOverDefault(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	engine := &stubEngine{result: &projection.Result{Pitcher: "A", Opponent: "B", Mean: 5}}
	a := &App{
		outW:     &bytes.Buffer{},
		logger:   quietLogger(),
		config:   &Config{Pitcher: "A", Opponent: "B", Park: "Citizens Bank Park"},
		settings: &config.Settings{Defaults: config.DefaultSettings{Park: "PNC Park"}},
		engine:   engine,
	}

	// --- Act ---
	require.NoError(t, a.Run(context.Background()))

	// --- Assert ---
	require.Equal(t, "Citizens Bank Park", engine.gotReq.Park)
}

func TestRun_ContainedEngineFailurePrintsWarning(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	a := &App{
		outW:     out,
		logger:   quietLogger(),
		config:   &Config{Pitcher: "Paul Skenes", Opponent: "PHI"},
		settings: &config.Settings{},
		engine:   &stubEngine{err: errors.New("network timeout")},
	}

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, projection.NoProjectionMessage+"\n", out.String())
}

func TestRun_CancellationPropagates(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	a := &App{
		outW:     out,
		logger:   quietLogger(),
		config:   &Config{Pitcher: "A", Opponent: "B"},
		settings: &config.Settings{},
		engine:   &stubEngine{err: context.Canceled},
	}

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, out.String())
}
