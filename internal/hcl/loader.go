package hcl

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/whiffcast/whiffcast/internal/config"
	"github.com/whiffcast/whiffcast/internal/ctxlog"
)

// Loader implements config.Loader for HCL settings files.
type Loader struct{}

// NewLoader creates a new HCL settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// settingsFile mirrors the on-disk schema of a whiffcast.hcl file.
type settingsFile struct {
	Engine   *engineBlock   `hcl:"engine,block"`
	Defaults *defaultsBlock `hcl:"defaults,block"`
}

type engineBlock struct {
	BaseURL string `hcl:"base_url"`
	APIKey  string `hcl:"api_key,optional"`
	Timeout string `hcl:"timeout,optional"`
}

type defaultsBlock struct {
	Park string `hcl:"park,optional"`
}

// Load parses the settings file at path and translates it into the
// format-agnostic model.
func (l *Loader) Load(ctx context.Context, path string) (*config.Settings, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading settings file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var raw settingsFile
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	settings := &config.Settings{}
	if raw.Engine != nil {
		settings.Engine.BaseURL = raw.Engine.BaseURL
		settings.Engine.APIKey = raw.Engine.APIKey
		if raw.Engine.Timeout != "" {
			timeout, err := time.ParseDuration(raw.Engine.Timeout)
			if err != nil {
				return nil, fmt.Errorf("invalid engine timeout %q in %s: %w", raw.Engine.Timeout, path, err)
			}
			settings.Engine.Timeout = timeout
		}
	}
	if raw.Defaults != nil {
		settings.Defaults.Park = raw.Defaults.Park
	}

	logger.Debug("Settings file loaded.", "engine_url", settings.Engine.BaseURL)
	return settings, nil
}

// evalContext exposes the process environment to HCL expressions as an `env`
// object, so values like api_key can reference a variable instead of being
// written into the file.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, entry := range os.Environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	envObject := cty.EmptyObjectVal
	if len(vars) > 0 {
		envObject = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envObject},
	}
}
