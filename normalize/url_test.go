package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestResolve_RootRelative verifies joining a path onto the base URL
func TestResolve_RootRelative(t *testing.T) {
	got := Resolve("https://site.test/", "/watch/x")

	assert.True(t, got.IsPresent())
	assert.Equal(t, "https://site.test/watch/x", got.MustGet())
}

// TestResolve_ProtocolRelative verifies https is prefixed
func TestResolve_ProtocolRelative(t *testing.T) {
	got := Resolve("https://site.test/", "//cdn.test/a.jpg")

	assert.Equal(t, "https://cdn.test/a.jpg", got.OrEmpty())
}

// TestResolve_Absolute verifies absolute URLs pass through untouched
func TestResolve_Absolute(t *testing.T) {
	href := "http://other.test/path?q=1"

	assert.Equal(t, href, Resolve("https://site.test/", href).OrEmpty())
}

// TestResolve_Empty verifies blank input is absent
func TestResolve_Empty(t *testing.T) {
	assert.True(t, Resolve("https://site.test/", "").IsAbsent())
	assert.True(t, Resolve("https://site.test/", "   ").IsAbsent())
}

// TestResolve_SingleSlashJoin verifies no double slashes and no dropped
// leading segment
func TestResolve_SingleSlashJoin(t *testing.T) {
	assert.Equal(t, "https://site.test/sub/movie", Resolve("https://site.test/sub/", "movie").OrEmpty())
	assert.Equal(t, "https://site.test/sub/movie", Resolve("https://site.test/sub", "/movie").OrEmpty())
	assert.Equal(t, "https://site.test/movie", Resolve("https://site.test//", "/movie").OrEmpty())
}

// TestResolve_NoBase verifies relative hrefs cannot be resolved without a
// base
func TestResolve_NoBase(t *testing.T) {
	assert.True(t, Resolve("", "/watch/x").IsAbsent())
}

// TestFirstSrcset verifies the first candidate's URL is taken
func TestFirstSrcset(t *testing.T) {
	assert.Equal(t, "/img/a-300.jpg", FirstSrcset("/img/a-300.jpg 300w, /img/a-600.jpg 600w"))
	assert.Equal(t, "a.jpg", FirstSrcset("  a.jpg  "))
	assert.Equal(t, "", FirstSrcset(""))
}

// TestResolveSrcset verifies srcset candidates are resolved
func TestResolveSrcset(t *testing.T) {
	got := ResolveSrcset("https://site.test", "//cdn.test/a.jpg 1x, //cdn.test/b.jpg 2x")

	assert.Equal(t, "https://cdn.test/a.jpg", got.OrEmpty())
}

// TestIsAbsolute verifies scheme detection
func TestIsAbsolute(t *testing.T) {
	assert.True(t, IsAbsolute("https://site.test"))
	assert.False(t, IsAbsolute("/watch/x"))
	assert.False(t, IsAbsolute("//cdn.test/a.jpg"))
}
