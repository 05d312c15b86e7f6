package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable Load reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()

	keys := []string{"ENV_FILE"}
	for _, k := range []string{
		"ADDR", "LOG_LEVEL", "CACHE_DSN", "CACHE_TTL", "FETCH_TIMEOUT", "FETCH_BACKOFF",
		"FETCH_RETRIES", "REFERER", "USER_AGENTS", "PROFILES", "SNAPSHOT_DIR",
	} {
		keys = append(keys, envPrefix+k)
	}
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_DefaultPath(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".mediascrape")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log:\n  level: debug\n"), 0o600))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `server:
  addr: "127.0.0.1:9000"
cache:
  dsn: "/tmp/pages.db"
  ttl: 30m
fetch:
  timeout: 5s
  user_agents:
    - "agent-a"
profiles: "/etc/mediascrape/profiles.yaml"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, "/tmp/pages.db", cfg.Cache.DSN)
	assert.Equal(t, 30*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, 5*time.Second, cfg.Fetch.Timeout)
	assert.Equal(t, []string{"agent-a"}, cfg.Fetch.UserAgents)
	assert.Equal(t, "/etc/mediascrape/profiles.yaml", cfg.Profiles)

	// untouched keys keep their defaults
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 2, cfg.Fetch.Retries)
}

func TestLoad_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server: [unclosed")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "fetch:\n  retries: 1\n")

	t.Setenv("MEDIASCRAPE_FETCH_RETRIES", "4")
	t.Setenv("MEDIASCRAPE_FETCH_BACKOFF", "2s")
	t.Setenv("MEDIASCRAPE_USER_AGENTS", "one, two ,")
	t.Setenv("MEDIASCRAPE_SNAPSHOT_DIR", "/var/snapshots")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Fetch.Retries)
	assert.Equal(t, 2*time.Second, cfg.Fetch.Backoff)
	assert.Equal(t, []string{"one", "two"}, cfg.Fetch.UserAgents)
	assert.Equal(t, "/var/snapshots", cfg.Snapshot.Dir)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("MEDIASCRAPE_LOG_LEVEL=warn\nMEDIASCRAPE_CACHE_DSN=pages.db\n"), 0o600))
	t.Setenv("ENV_FILE", envFile)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "pages.db", cfg.Cache.DSN)
}

func TestLoad_MalformedEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEDIASCRAPE_FETCH_TIMEOUT", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"no addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
		{"zero timeout", func(c *Config) { c.Fetch.Timeout = 0 }, "fetch.timeout"},
		{"negative retries", func(c *Config) { c.Fetch.Retries = -1 }, "fetch.retries"},
		{"cache without ttl", func(c *Config) { c.Cache.DSN = "x.db"; c.Cache.TTL = 0 }, "cache.ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			var verr *ValidationError
			require.ErrorAs(t, cfg.Validate(), &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	assert.NoError(t, Default().Validate())
}
