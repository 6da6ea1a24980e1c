// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/slidefilters/pkg/types"
)

// isolate points the working directory and HOME at an empty temp dir so no
// real config file is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)
	return dir
}

func writeConfig(t *testing.T, path string, cfg types.Config) {
	t.Helper()
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "slidefilter.yaml"), types.Config{
		Log:     types.LogConfig{Level: "debug", Format: "json"},
		Filters: []string{"strip-not-slide", "blank-text"},
		Pandoc:  types.PandocConfig{Binary: "/opt/pandoc/bin/pandoc", ExtraArgs: []string{"--standalone"}},
	})

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"strip-not-slide", "blank-text"}, cfg.Filters)
	assert.Equal(t, "/opt/pandoc/bin/pandoc", cfg.Pandoc.Binary)
	assert.Equal(t, []string{"--standalone"}, cfg.Pandoc.ExtraArgs)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: error\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep their defaults")
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := LoadConfig(filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SLIDEFILTER_LOG_LEVEL", "info")
	t.Setenv("SLIDEFILTER_PANDOC_BINARY", "pandoc3")
	t.Setenv("SLIDEFILTER_PANDOC_EXTRA_ARGS", "--standalone,--slide-level=2")
	t.Setenv("SLIDEFILTER_FILTERS", "strip-not-slide,blank-text")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "pandoc3", cfg.Pandoc.Binary)
	assert.Equal(t, []string{"--standalone", "--slide-level=2"}, cfg.Pandoc.ExtraArgs)
	assert.Equal(t, []string{"strip-not-slide", "blank-text"}, cfg.Filters)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "slidefilter.yaml"), types.Config{
		Pandoc: types.PandocConfig{Binary: "pandoc", ExtraArgs: []string{"--toc"}},
	})
	t.Setenv("SLIDEFILTER_PANDOC_EXTRA_ARGS", "--standalone")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, []string{"--standalone"}, cfg.Pandoc.ExtraArgs)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewLogger(types.Config{Log: types.LogConfig{Level: "info"}}, &buf)
	require.NoError(t, err)
	log.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	_, err = NewLogger(types.Config{Log: types.LogConfig{Level: "chatty"}}, &buf)
	assert.Error(t, err)
}
