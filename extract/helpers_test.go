package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pevans/mediascrape/media"
	"github.com/pevans/mediascrape/scraper"
)

func newTestExtractor(t *testing.T, site string) *Extractor {
	t.Helper()

	reg, err := scraper.NewRegistry(scraper.Builtin()...)
	require.NoError(t, err)

	profile, err := reg.Get(site)
	require.NoError(t, err)

	e, err := New(profile)
	require.NoError(t, err)
	return e
}

// assertPaginationInvariants checks the properties every descriptor holds
// regardless of the idiom it came from.
func assertPaginationInvariants(t *testing.T, p media.Pagination) {
	t.Helper()

	require.GreaterOrEqual(t, p.CurrentPage, 1)
	require.GreaterOrEqual(t, p.TotalPages, p.CurrentPage)
	require.Equal(t, p.HasNext, p.NextURL != nil)
	require.Equal(t, p.HasPrevious, p.PreviousURL != nil)
	for i := 1; i < len(p.PageNumbers); i++ {
		require.Less(t, p.PageNumbers[i-1], p.PageNumbers[i], "page numbers must be strictly ascending")
	}
}

func assertListingsValid(t *testing.T, items []media.Listing) {
	t.Helper()

	for _, l := range items {
		require.NotEmpty(t, l.Title)
		require.Regexp(t, `^[a-zA-Z][a-zA-Z0-9+.\-]*:`, l.URL)
		require.Equal(t, media.ListingID(l.URL), l.ID)
	}
}
