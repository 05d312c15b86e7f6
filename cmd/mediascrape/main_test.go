package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pevans/mediascrape/facade/wire"
)

const savedGrid = `<div class="gallery-grid">
  <article>
    <a itemprop="url" href="/sinners-2025/"><img itemprop="image" src="/sinners.jpg"></a>
    <h3 class="poster-title">Sinners</h3>
  </article>
</div>`

// run executes the CLI with args against an isolated config and returns
// stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	save, inputFile, page, pageURL, siteName = false, "", 1, "", "lk21"
	t.Setenv("MEDIASCRAPE_LOG_LEVEL", "error")
	t.Setenv("MEDIASCRAPE_CACHE_DSN", "")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writePage(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLatestFromFile(t *testing.T) {
	out, err := run(t, "latest", "--file", writePage(t, savedGrid))
	require.NoError(t, err)

	var page wire.ListPage
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Sinners", page.Items[0].Title)
	assert.Equal(t, "https://tv8.lk21official.cc/sinners-2025/", page.Items[0].URL)
}

func TestSaveAndListSnapshots(t *testing.T) {
	t.Setenv("MEDIASCRAPE_SNAPSHOT_DIR", t.TempDir())

	_, err := run(t, "search", "sinners", "--file", writePage(t, savedGrid), "--save")
	require.NoError(t, err)

	out, err := run(t, "snapshots", "search")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.NotContains(t, out, "No snapshots saved.")
}

func TestInvalidInputFails(t *testing.T) {
	_, err := run(t, "detail", "one-piece", "--site", "otakudesu", "--file", writePage(t, savedGrid))
	assert.Error(t, err)
}

func TestSites(t *testing.T) {
	out, err := run(t, "sites")
	require.NoError(t, err)

	var sites []wire.Site
	require.NoError(t, json.Unmarshal([]byte(out), &sites))
	assert.Len(t, sites, 3)
}
