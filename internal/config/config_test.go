package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvPrefix+"_CONFIG", "")

	cfg, err := NewLoader().Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Questions)
	assert.Equal(t, "survey", cfg.Driver)
	assert.Equal(t, "text", cfg.Renderer)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "<", cfg.BackKeyword)
	assert.False(t, cfg.Suggest)
}

func TestLoad_FileThenEnvThenFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "questionnaire.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
driver: huh
renderer: html
output:
  format: pretty
  path: /tmp/answers.txt
log:
  level: debug
suggest: true
`), 0o600))

	t.Setenv(EnvPrefix+"_RENDERER", "text")
	t.Setenv(EnvPrefix+"_OUTPUT_FORMAT", "form")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "info", "")
	require.NoError(t, flags.Parse([]string{"--log-level=error"}))

	loader := NewLoader()
	require.NoError(t, loader.BindFlag("log.level", flags.Lookup("log-level")))

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "huh", cfg.Driver)
	assert.Equal(t, "text", cfg.Renderer, "env overrides file")
	assert.Equal(t, "form", cfg.Output.Format, "nested env key")
	assert.Equal(t, "/tmp/answers.txt", cfg.Output.Path)
	assert.Equal(t, "error", cfg.Log.Level, "flag overrides file")
	assert.True(t, cfg.Suggest)
	assert.Equal(t, path, loader.ConfigFile())
}

func TestLoad_ConfigEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("back_keyword: back\n"), 0o600))
	t.Setenv(EnvPrefix+"_CONFIG", path)

	cfg, err := NewLoader().Load("")
	require.NoError(t, err)
	assert.Equal(t, "back", cfg.BackKeyword)
}

func TestLoad_Errors(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvPrefix+"_CONFIG", "")
	t.Setenv(EnvPrefix+"_DRIVER", "curses")
	_, err = NewLoader().Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `driver "curses"`)

	require.Error(t, NewLoader().BindFlag("driver", nil))
}
