package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "application.yaml"), []byte(content), 0o600))
	return dir
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	dir := writeConfig(t, `
database:
  postgres:
    dsn: postgres://localhost/portal
backend:
  base_url: http://backend.local/api
throttle:
  window: 10m
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.APP.Port)
	assert.Equal(t, "paseto", cfg.APP_SECRET.TokenFormat)
	assert.Len(t, cfg.APP_SECRET.Paseto.HexKey, 64)
	assert.Equal(t, 24*time.Hour, cfg.SESSION.TTL)
	assert.Equal(t, "token", cfg.SESSION.CookieName)
	assert.Equal(t, 5, cfg.THROTTLE.MaxAttempts)
	assert.Equal(t, 10*time.Minute, cfg.THROTTLE.Window)
	assert.Equal(t, "memory", cfg.THROTTLE.Store)
	assert.Equal(t, 10*time.Second, cfg.BACKEND.Timeout)
	assert.Equal(t, "memory", cfg.RATE_LIMIT.Storage)
	assert.Equal(t, 1, cfg.RATE_LIMIT.RedisDB)
	assert.Equal(t, 10*time.Second, cfg.WEBHOOK.Timeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := writeConfig(t, `
app:
  state: dev
database:
  postgres:
    dsn: postgres://localhost/portal
backend:
  base_url: http://backend.local/api
  api_key: from-file
`)
	t.Setenv("BACKEND_API_KEY", "from-env")
	t.Setenv("APP_STATE", "prod")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.BACKEND.APIKey)
	assert.True(t, cfg.IsProduction())
}

func TestLoadConfig_MissingDSN(t *testing.T) {
	dir := writeConfig(t, `
backend:
  base_url: http://backend.local/api
`)

	cfg, err := LoadConfig(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
