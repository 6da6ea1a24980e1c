// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cli holds the pieces shared by the slidefilter executables:
// configuration loading, logger setup, and the cobra command that runs a
// filter chain over stdin.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/slidefilters/internal/logging"
	"github.com/pdiddy/slidefilters/pkg/types"
)

// EnvPrefix prefixes every environment override, e.g. SLIDEFILTER_LOG_LEVEL.
const EnvPrefix = "SLIDEFILTER"

const configName = "slidefilter"

// LoadConfig reads configuration from cfgFile, or from slidefilter.yaml in
// the working directory or ~/.config/slidefilter/ when cfgFile is empty.
// Environment variables override file values. A missing default config
// file is not an error.
func LoadConfig(cfgFile string) (types.Config, error) {
	v := viper.New()

	def := types.DefaultConfig()
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("filters", def.Filters)
	v.SetDefault("pandoc.binary", def.Pandoc.Binary)
	_ = v.BindEnv("pandoc.extra_args")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return types.Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// NewLogger builds the stderr logger described by cfg.
func NewLogger(cfg types.Config, stderr io.Writer) (*slog.Logger, error) {
	return logging.New(stderr, cfg.Log.Level, cfg.Log.Format)
}
