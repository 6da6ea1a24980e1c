// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the slidefilters tools:
// the CLI configuration and the region report produced by the stripper.
package types

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default warn).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json (default text).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// PandocConfig holds settings for driving the pandoc executable in render mode.
type PandocConfig struct {
	// Binary is the pandoc executable name or path (default "pandoc").
	Binary string `json:"binary" yaml:"binary" mapstructure:"binary"`

	// ExtraArgs are appended to the final writer invocation
	// (e.g. ["--standalone"]).
	ExtraArgs []string `json:"extra_args,omitempty" yaml:"extra_args,omitempty" mapstructure:"extra_args"`
}

// Config is the slidefilter configuration. None of it changes what a filter
// does to a document; it selects which filters run and how they log.
type Config struct {
	Log LogConfig `json:"log" yaml:"log" mapstructure:"log"`

	// Filters is the default chain for "slidefilter chain" and "render"
	// when no filter names are given.
	Filters []string `json:"filters" yaml:"filters" mapstructure:"filters"`

	Pandoc PandocConfig `json:"pandoc" yaml:"pandoc" mapstructure:"pandoc"`
}

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() Config {
	return Config{
		Log:     LogConfig{Level: "warn", Format: "text"},
		Filters: []string{"strip-not-slide"},
		Pandoc:  PandocConfig{Binary: "pandoc"},
	}
}
