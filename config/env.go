package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "MEDIASCRAPE_"

// loadEnvFiles loads .env files into the process environment. ENV_FILE, when
// set, names the only file loaded; otherwise .env.local then .env. Variables
// already present in the environment are never overwritten, and missing
// files are skipped.
func loadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	for _, name := range []string{".env.local", ".env"} {
		if err := godotenv.Load(name); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

// applyEnv overrides cfg with MEDIASCRAPE_* variables. Malformed numbers and
// durations are errors rather than silently ignored.
func applyEnv(cfg *Config) error {
	strs := map[string]*string{
		"ADDR":         &cfg.Server.Addr,
		"LOG_LEVEL":    &cfg.Log.Level,
		"CACHE_DSN":    &cfg.Cache.DSN,
		"REFERER":      &cfg.Fetch.Referer,
		"PROFILES":     &cfg.Profiles,
		"SNAPSHOT_DIR": &cfg.Snapshot.Dir,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	durations := map[string]*time.Duration{
		"CACHE_TTL":     &cfg.Cache.TTL,
		"FETCH_TIMEOUT": &cfg.Fetch.Timeout,
		"FETCH_BACKOFF": &cfg.Fetch.Backoff,
	}
	for key, dst := range durations {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", envPrefix, key, err)
		}
		*dst = d
	}

	if v, ok := lookup("FETCH_RETRIES"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sFETCH_RETRIES: %w", envPrefix, err)
		}
		cfg.Fetch.Retries = n
	}

	if v, ok := lookup("USER_AGENTS"); ok {
		var agents []string
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				agents = append(agents, a)
			}
		}
		cfg.Fetch.UserAgents = agents
	}

	return nil
}

// lookup returns the trimmed value of MEDIASCRAPE_<key>. Empty values count
// as unset.
func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(envPrefix + key))
	return v, v != ""
}
