package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TERRACOTTA_DATA_DIR", dir)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, defaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, defaultTimeout, cfg.Timeout)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TERRACOTTA_DATA_DIR", dir)
	body := "api_base_url: http://menu.internal:9090\ntimeout: 3s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(body), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://menu.internal:9090", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TERRACOTTA_DATA_DIR", dir)
	t.Setenv("TERRACOTTA_API_URL", "http://override:8080")
	t.Setenv("TERRACOTTA_TIMEOUT", "500ms")
	body := "api_base_url: http://menu.internal:9090\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(body), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://override:8080", cfg.APIBaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Timeout)
}

func TestLoad_BrokenConfigFileFails(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TERRACOTTA_DATA_DIR", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("{{not yaml"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadTimeoutFails(t *testing.T) {
	t.Setenv("TERRACOTTA_DATA_DIR", t.TempDir())
	t.Setenv("TERRACOTTA_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}
