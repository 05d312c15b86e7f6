package media

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListing(t *testing.T) {
	l, ok := NewListing("  Title ", " https://example.test/a/ ")
	require.True(t, ok)
	assert.Equal(t, "Title", l.Title)
	assert.Equal(t, "https://example.test/a/", l.URL)
	assert.Equal(t, ListingID("https://example.test/a/"), l.ID)

	_, ok = NewListing("", "https://example.test/a/")
	assert.False(t, ok)
	_, ok = NewListing("Title", "   ")
	assert.False(t, ok)
}

func TestListingID_Deterministic(t *testing.T) {
	assert.Equal(t, ListingID("https://example.test/a/"), ListingID("https://example.test/a/"))
	assert.NotEqual(t, ListingID("https://example.test/a/"), ListingID("https://example.test/b/"))
}

func TestNoPagination(t *testing.T) {
	assert.Equal(t, Pagination{
		CurrentPage: 3,
		TotalPages:  3,
		PageNumbers: []int{},
		PerPage:     DefaultPerPage,
	}, NoPagination(3))

	assert.Equal(t, 1, NoPagination(0).CurrentPage)
}

func TestPaginationNormalize(t *testing.T) {
	empty := ""
	p := Pagination{
		CurrentPage: 0,
		TotalPages:  -2,
		HasNext:     true,
		NextURL:     &empty,
		PreviousURL: lo.ToPtr("https://example.test/page/1/"),
		PageNumbers: []int{5, 0, 2, 5, -1, 3},
	}.Normalize()

	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.Nil(t, p.NextURL)
	assert.True(t, p.HasPrevious)
	assert.Equal(t, []int{2, 3, 5}, p.PageNumbers)
	assert.Equal(t, DefaultPerPage, p.PerPage)
}

func TestGenreNames(t *testing.T) {
	assert.Nil(t, GenreNames(nil))
	assert.Nil(t, GenreNames(GenreText("")))
	assert.Equal(t, []string{"Action, Drama"}, GenreNames(GenreText("Action, Drama")))
	assert.Equal(t, []string{"Action", "Drama"}, GenreNames(GenreList{{Name: "Action"}, {Name: "Drama"}}))
}

func TestListingJSON_GenreVariants(t *testing.T) {
	text, _ := NewListing("A", "https://example.test/a/")
	text.Genre = GenreText("Action")
	list, _ := NewListing("B", "https://example.test/b/")
	list.Genre = GenreList{{Name: "Drama", URL: lo.ToPtr("https://example.test/genre/drama/")}}
	none, _ := NewListing("C", "https://example.test/c/")

	decode := func(l Listing) map[string]any {
		raw, err := json.Marshal(l)
		require.NoError(t, err)
		var out map[string]any
		require.NoError(t, json.Unmarshal(raw, &out))
		return out
	}

	assert.Equal(t, "Action", decode(text)["genre"])
	assert.Equal(t, []any{map[string]any{"name": "Drama", "url": "https://example.test/genre/drama/"}}, decode(list)["genre"])
	assert.NotContains(t, decode(none), "genre")
}
