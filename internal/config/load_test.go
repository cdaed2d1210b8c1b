package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir moves the test into an empty directory so that stray lexideck.yaml
// or .env files in the working tree cannot leak into the test.
func chdir(t *testing.T, dir string) {
	t.Helper()

	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
	assert.Equal(t, 2, cfg.LLM.RetryDelaySeconds)
	assert.Empty(t, cfg.LLM.APIKey)
	assert.Equal(t, "https://translate.google.com/translate_tts", cfg.TTS.Endpoint)
	assert.Equal(t, 30, cfg.TTS.TimeoutSeconds)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("LEXIDECK_APP_LOG_LEVEL", "debug")
	t.Setenv("LEXIDECK_LLM_API_KEY", "test-key")
	t.Setenv("LEXIDECK_LLM_MODEL_NAME", "gemini-2.5-pro")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.ModelName)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	contents := "app:\n  log_level: warn\nllm:\n  max_retries: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lexideck.yaml"), []byte(contents), 0o600))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, 5, cfg.LLM.MaxRetries)
	// Untouched values keep their defaults.
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
}

func TestLoad_EnvBeatsConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lexideck.yaml"),
		[]byte("app:\n  log_level: warn\n"), 0o600))
	chdir(t, dir)

	t.Setenv("LEXIDECK_APP_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.App.LogLevel)
}

func TestLoad_RejectsInvalidLogLevel(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("LEXIDECK_APP_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoad_RejectsMalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lexideck.yaml"),
		[]byte(":\tnot yaml"), 0o600))
	chdir(t, dir)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
