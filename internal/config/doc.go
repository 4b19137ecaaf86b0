// Package config defines the format-agnostic settings model for the
// application, along with the Loader interface for reading it from a file
// and the environment overlay applied on top.
//
// The `config.Settings` value is the single source of truth for how the
// projection engine is reached. Concrete file loaders, such as for HCL, are
// provided in separate packages.
package config
