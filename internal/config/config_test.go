package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".bark"), cfg.DataDir)
	assert.Equal(t, filepath.Join(home, ".bark", "bookmarks.db"), cfg.DBPath())
	assert.Equal(t, "https://api.github.com", cfg.GitHub.APIURL)
	assert.Equal(t, 30*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, 100, cfg.GitHub.PerPage)
	assert.Equal(t, filepath.Join(home, ".bark", "bark.log"), cfg.LogPath())
	assert.DirExists(t, cfg.DataDir)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dataDir := t.TempDir()

	yaml := "github:\n  per_page: 10\n  timeout: 5s\nlog:\n  level: debug\n  file: /var/tmp/bark.log\n"
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "config.yaml"), []byte(yaml), 0644))
	t.Setenv("BARK_LLM_PROVIDER", "openai")
	t.Setenv("BARK_GITHUB_PER_PAGE", "7")
	t.Setenv("BARK_READER_URL", "http://reader.local/")
	t.Setenv("BARK_LLM_BASE_URL", "http://llm.local/v1")

	cfg, err := Load(dataDir)
	require.NoError(t, err)

	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, 7, cfg.GitHub.PerPage)
	assert.Equal(t, "http://reader.local/", cfg.Reader.URL)
	assert.Equal(t, "http://llm.local/v1", cfg.LLM.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/tmp/bark.log", cfg.LogPath())
	assert.Equal(t, "openai", cfg.LLM.Provider)
}

func TestLoadNestedEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BARK_GITHUB_TIMEOUT", "2s")
	t.Setenv("BARK_LOG_FILE", "/var/tmp/other.log")
	t.Setenv("BARK_LOG_LEVEL", "error")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.GitHub.Timeout)
	assert.Equal(t, "/var/tmp/other.log", cfg.LogPath())
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, 100, cfg.GitHub.PerPage)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("loud"))
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelWarn)

	logger.Info("imported", "count", 3)
	logger.Warn("skipped", "id", 7)

	assert.NotContains(t, stderr.String(), "imported")
	assert.Contains(t, stderr.String(), "skipped")
	assert.Contains(t, file.String(), `"msg":"imported"`)
	assert.Contains(t, file.String(), `"msg":"skipped"`)
}

func TestSetupLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bark.log")
	logger, cleanup := SetupLogger(path, slog.LevelError)
	logger.Info("hello")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}
