package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8004, cfg.Server.Port)
	assert.Equal(t, "/api/status", cfg.Server.BasePath)
	assert.Equal(t, "dev", cfg.Server.Env)
	assert.Equal(t, "*", cfg.Server.CORSOrigins)
	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  port: 9090
  env: prod
database:
  url: postgres://localhost/status
auth:
  secret_key: topsecret
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "prod", cfg.Server.Env)
	assert.Equal(t, "postgres://localhost/status", cfg.Database.URL)
	assert.Equal(t, "topsecret", cfg.Auth.SecretKey)
	// Untouched fields keep their defaults.
	assert.Equal(t, "/api/status", cfg.Server.BasePath)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7001")
	t.Setenv("DATABASE_URL", "postgres://db:5432/status")
	t.Setenv("REDIS_HOST", "redis.internal")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SECRET_KEY", "from-env")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7001, cfg.Server.Port)
	assert.Equal(t, "postgres://db:5432/status", cfg.Database.URL)
	assert.Equal(t, "redis.internal", cfg.Redis.Host)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "from-env", cfg.Auth.SecretKey)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}
