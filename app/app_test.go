package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pevans/mediascrape/config"
	"github.com/pevans/mediascrape/logger"
)

type countingFetcher struct{ calls int }

func (f *countingFetcher) Fetch(context.Context, string) (string, error) {
	f.calls++
	return `<div class="gallery-grid"><article><a itemprop="url" href="/x/">X</a><h3 class="poster-title">X</h3></article></div>`, nil
}

func TestNew_WithCache(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Cache.DSN = filepath.Join(dir, "pages.db")
	cfg.Cache.TTL = time.Minute
	cfg.Profiles = filepath.Join(dir, "absent.yaml")

	f := &countingFetcher{}
	a, err := New(cfg, logger.NewNop(), f)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	require.NotNil(t, a.Cache)

	for range 2 {
		page, err := a.Service.Latest(context.Background(), "lk21", 1)
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
	}
	assert.Equal(t, 1, f.calls)
}

func TestNew_ProfilesFileAddsSite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`profiles:
  - name: lk21mirror
    base_url: https://mirror.test
    family: movie
    layouts:
      grid:
        containers: ["div.gallery-grid"]
        item: article
        fields:
          title: ["h3.poster-title"]
          link: ["a[href]"]
    templates:
      latest: /latest/
`), 0o600))

	cfg := config.Default()
	cfg.Profiles = path

	a, err := New(cfg, logger.NewNop(), &countingFetcher{})
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Cache)
	page, err := a.Service.Latest(context.Background(), "lk21mirror", 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "https://mirror.test/x/", page.Items[0].URL)
}

func TestNew_BadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profiles: [{name: broken, family: tv}]"), 0o600))

	cfg := config.Default()
	cfg.Profiles = path

	_, err := New(cfg, logger.NewNop(), &countingFetcher{})
	assert.Error(t, err)
}

func TestNewFetcher(t *testing.T) {
	cfg := config.Default()
	cfg.Fetch.UserAgents = []string{"agent"}

	assert.NotNil(t, NewFetcher(cfg, logger.NewNop()))
}
