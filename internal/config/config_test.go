package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults apply when the file is missing", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "from-env")

		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "jacquesmasuruku2@gmail.com", cfg.Admin.Email)
		assert.Equal(t, "gemini-3-flash-preview", cfg.Assistant.Model)
		assert.False(t, cfg.DatabaseConfigured())
		assert.False(t, cfg.MailConfigured())
		assert.False(t, cfg.AssistantConfigured())
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "server:\n  port: \"9000\"\njwt:\n  secret: \"file-secret\"\n")
		t.Setenv("SERVER_PORT", "9999")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "9999", cfg.Server.Port)
		assert.Equal(t, "file-secret", cfg.JWT.Secret)
	})

	t.Run("missing JWT secret is rejected", func(t *testing.T) {
		path := writeConfig(t, "server:\n  port: \"9000\"\n")

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("malformed token expiration is rejected", func(t *testing.T) {
		path := writeConfig(t, "jwt:\n  secret: \"s\"\n  access_token_expiration: \"nope\"\n")

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("connection string is assembled from parts", func(t *testing.T) {
		path := writeConfig(t, `
jwt:
  secret: "s"
database:
  host: "localhost"
  user: "upg"
  password: "pw"
  dbname: "portal"
`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.True(t, cfg.DatabaseConfigured())
		assert.Equal(t, "postgres://upg:pw@localhost:5432/portal?sslmode=disable", cfg.GetPostgresConnectionString())
	})
}
