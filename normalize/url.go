// Package normalize turns the loose text found in scraped markup into
// typed values. Every function here degrades to an absent value instead of
// failing: scraped pages are untrusted input.
package normalize

import (
	"regexp"
	"strings"

	"github.com/samber/mo"
)

// schemePattern matches an RFC 3986 scheme prefix such as "https:".
var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*:`)

// Resolve turns href into an absolute URL against base. Blank hrefs are
// absent, absolute hrefs are returned unchanged, protocol-relative hrefs get
// an https scheme, and everything else is joined onto base with exactly one
// slash between them.
func Resolve(base, href string) mo.Option[string] {
	href = strings.TrimSpace(href)
	if href == "" {
		return mo.None[string]()
	}

	if strings.HasPrefix(href, "//") {
		return mo.Some("https:" + href)
	}

	if schemePattern.MatchString(href) {
		return mo.Some(href)
	}

	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return mo.None[string]()
	}

	return mo.Some(base + "/" + strings.TrimLeft(href, "/"))
}

// FirstSrcset returns the URL of the first candidate in a srcset attribute
// value ("a.jpg 1x, b.jpg 2x" yields "a.jpg"). A plain URL is returned as is.
func FirstSrcset(value string) string {
	first, _, _ := strings.Cut(value, ",")
	fields := strings.Fields(first)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// ResolveSrcset resolves the first srcset candidate against base.
func ResolveSrcset(base, value string) mo.Option[string] {
	return Resolve(base, FirstSrcset(value))
}

// IsAbsolute reports whether u carries a scheme.
func IsAbsolute(u string) bool {
	return schemePattern.MatchString(u)
}
