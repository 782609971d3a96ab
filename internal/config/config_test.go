package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("reads yaml values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
api:
  environment: production
  port: "9999"
  log_level: warn
upstream:
  base_url: https://platform.example.com/api
  timeout_seconds: 5
session:
  token_file: /tmp/tok
`), 0o600))

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "production", conf.API.Environment)
		assert.Equal(t, "9999", conf.API.Port)
		assert.Equal(t, "warn", conf.API.LogLevel)
		assert.Equal(t, "https://platform.example.com/api", conf.Upstream.BaseURL)
		assert.Equal(t, 5, conf.Upstream.TimeoutSeconds)
		assert.Equal(t, "/tmp/tok", conf.Session.TokenFile)
	})

	t.Run("defaults fill missing keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("api:\n  port: \"8001\"\n"), 0o600))

		conf, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, "8001", conf.API.Port)
		assert.Equal(t, "development", conf.API.Environment)
		assert.Equal(t, 15, conf.Upstream.TimeoutSeconds)
		assert.Equal(t, ".admin_token", conf.Session.TokenFile)
	})
}
