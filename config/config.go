// Package config loads mediascrape settings. Values are layered: built-in
// defaults, then the YAML config file, then .env files, then MEDIASCRAPE_*
// environment variables. Later layers win.
package config

import (
	"fmt"
	"time"
)

// Config is the full mediascrape configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Cache    CacheConfig    `yaml:"cache"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Profiles string         `yaml:"profiles"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
}

// CacheConfig configures the page cache. An empty DSN disables caching.
type CacheConfig struct {
	DSN string        `yaml:"dsn"`
	TTL time.Duration `yaml:"ttl"`
}

// FetchConfig configures upstream HTTP requests.
type FetchConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	Retries    int           `yaml:"retries"`
	Backoff    time.Duration `yaml:"backoff"`
	Referer    string        `yaml:"referer"`
	UserAgents []string      `yaml:"user_agents"`
}

// SnapshotConfig configures where the CLI saves results.
type SnapshotConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":8080"},
		Log:    LogConfig{Level: "info"},
		Cache:  CacheConfig{TTL: 10 * time.Minute},
		Fetch: FetchConfig{
			Timeout: 15 * time.Second,
			Retries: 2,
			Backoff: 500 * time.Millisecond,
		},
	}
}

// ValidationError reports a configuration value that cannot be used.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the values that would otherwise fail late, at first use.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Field: "log.level", Message: "must be one of: debug, info, warn, error"}
	}
	if c.Server.Addr == "" {
		return &ValidationError{Field: "server.addr", Message: "is required"}
	}
	if c.Fetch.Timeout <= 0 {
		return &ValidationError{Field: "fetch.timeout", Message: "must be positive"}
	}
	if c.Fetch.Retries < 0 {
		return &ValidationError{Field: "fetch.retries", Message: "must not be negative"}
	}
	if c.Fetch.Backoff < 0 {
		return &ValidationError{Field: "fetch.backoff", Message: "must not be negative"}
	}
	if c.Cache.DSN != "" && c.Cache.TTL <= 0 {
		return &ValidationError{Field: "cache.ttl", Message: "must be positive when the cache is enabled"}
	}
	return nil
}
