// Package app wires configuration into a ready facade.Service for the
// binaries.
package app

import (
	"fmt"

	"github.com/pevans/mediascrape/config"
	"github.com/pevans/mediascrape/facade"
	"github.com/pevans/mediascrape/fetch"
	"github.com/pevans/mediascrape/logger"
	"github.com/pevans/mediascrape/scraper"
	"github.com/pevans/mediascrape/store"
)

// App holds the long-lived pieces built from a Config.
type App struct {
	Config  *config.Config
	Log     logger.Logger
	Service *facade.Service
	// Cache is nil when caching is disabled.
	Cache *store.Cache
}

// NewFetcher builds the HTTP fetcher described by cfg.
func NewFetcher(cfg *config.Config, log logger.Logger) *fetch.HTTPFetcher {
	return fetch.NewHTTPFetcher(fetch.Options{
		Timeout:    cfg.Fetch.Timeout,
		Retries:    cfg.Fetch.Retries,
		Backoff:    cfg.Fetch.Backoff,
		UserAgents: cfg.Fetch.UserAgents,
		Referer:    cfg.Fetch.Referer,
		Logger:     log,
	})
}

// New loads the site profiles, opens the page cache when configured and
// builds the service around fetcher. Callers must Close the App.
func New(cfg *config.Config, log logger.Logger, fetcher fetch.Fetcher) (*App, error) {
	profiles, err := scraper.LoadProfiles(cfg.Profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	registry, err := scraper.NewRegistry(profiles...)
	if err != nil {
		return nil, fmt.Errorf("invalid profiles: %w", err)
	}

	a := &App{Config: cfg, Log: log}
	opts := facade.Options{Logger: log}
	if cfg.Cache.DSN != "" {
		cache, err := store.NewCache(cfg.Cache.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open cache: %w", err)
		}
		a.Cache = cache
		opts.Cache = cache
		opts.CacheTTL = cfg.Cache.TTL
	}

	a.Service, err = facade.New(registry, fetcher, opts)
	if err != nil {
		a.Close()
		return nil, err
	}

	log.Info("Service ready",
		logger.Strings("sites", registry.Names()),
		logger.Bool("cache", a.Cache != nil),
	)
	return a, nil
}

// Close releases the cache.
func (a *App) Close() error {
	if a.Cache == nil {
		return nil
	}
	return a.Cache.Close()
}
