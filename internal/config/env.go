package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// envOverlay mirrors the WHIFFCAST_* environment variables.
type envOverlay struct {
	EngineURL string        `env:"WHIFFCAST_ENGINE_URL"`
	APIKey    string        `env:"WHIFFCAST_API_KEY"`
	Timeout   time.Duration `env:"WHIFFCAST_ENGINE_TIMEOUT"`
}

// ApplyEnv overlays WHIFFCAST_* environment variables onto s. Environment
// values win over whatever a file loader produced; unset variables leave the
// existing values untouched.
func ApplyEnv(s *Settings) error {
	var overlay envOverlay
	if err := env.Parse(&overlay); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if overlay.EngineURL != "" {
		s.Engine.BaseURL = overlay.EngineURL
	}
	if overlay.APIKey != "" {
		s.Engine.APIKey = overlay.APIKey
	}
	if overlay.Timeout != 0 {
		s.Engine.Timeout = overlay.Timeout
	}
	return nil
}
