package config

import "context"

// Loader is the interface for a format-specific settings loader.
type Loader interface {
	// Load reads the settings file at path and translates it into the
	// format-agnostic model. The file must exist; deciding whether a
	// missing file is acceptable is the caller's concern.
	Load(ctx context.Context, path string) (*Settings, error)
}
