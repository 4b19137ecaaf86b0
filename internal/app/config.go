package app

import "errors"

// Config holds everything the argument layer resolved for a single
// invocation of the program.
type Config struct {
	Pitcher  string
	Opponent string
	Park     string

	// ConfigPath is an explicit settings file. Empty means "use the default
	// path if a file exists there".
	ConfigPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates an invocation configuration.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Pitcher == "" {
		return nil, errors.New("Pitcher is a required configuration field and cannot be empty")
	}
	if cfg.Opponent == "" {
		return nil, errors.New("Opponent is a required configuration field and cannot be empty")
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
