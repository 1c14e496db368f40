package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"favsetter/internal/config"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: development\n"))
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "favsetter", cfg.Database.DatabaseName)
	require.Equal(t, 7*24*time.Hour, cfg.Session.TTL)
	require.Equal(t, "auth-token", cfg.Session.CookieName)
	require.Equal(t, 10*time.Second, cfg.Metadata.Timeout)
	require.Equal(t, "Mozilla/5.0 (compatible; FavSetter/1.0)", cfg.Metadata.UserAgent)
	require.Equal(t, int64(2<<20), cfg.Metadata.MaxBodyBytes)
	require.Equal(t, 10, cfg.Accounts.BcryptCost)
	require.Equal(t, 8, cfg.Accounts.MinPasswordLength)
	require.False(t, cfg.SecureCookies())
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
environment: production
http:
  addr: ":9090"
  allowedOrigins:
    - https://app.example.com
session:
  secret: s3cret
  ttl: 24h
metadata:
  timeout: 3s
`))
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, []string{"https://app.example.com"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, "s3cret", cfg.Session.Secret)
	require.Equal(t, 24*time.Hour, cfg.Session.TTL)
	require.Equal(t, 3*time.Second, cfg.Metadata.Timeout)
	require.True(t, cfg.SecureCookies())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "from-env")
	t.Setenv("SESSION_SECURE_COOKIE", "true")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := config.Load(writeConfig(t, "session:\n  secret: from-file\n"))
	require.NoError(t, err)

	require.Equal(t, "from-env", cfg.Session.Secret)
	require.True(t, cfg.SecureCookies())
	require.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.HTTP.AllowedOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
