package config

import "time"

// Settings is the unified, format-agnostic representation of everything the
// program needs beyond its own command-line flags: how to reach the remote
// projection engine and which defaults to apply to a prediction.
type Settings struct {
	Engine   EngineSettings
	Defaults DefaultSettings
}

// EngineSettings describes the remote projection service.
type EngineSettings struct {
	// BaseURL is the root of the projection service API.
	BaseURL string
	// APIKey is sent as a bearer token. Empty disables authentication.
	APIKey string
	// Timeout bounds a single projection request.
	Timeout time.Duration
}

// DefaultSettings holds fallback values for optional prediction inputs.
type DefaultSettings struct {
	// Park is used when no --park flag is given.
	Park string
}
