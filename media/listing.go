package media

import (
	"strings"

	"github.com/google/uuid"
)

// listingNamespace seeds the deterministic listing IDs. Two scrapes of the
// same page must produce identical IDs, so IDs are derived from the source
// URL instead of being random.
var listingNamespace = uuid.MustParse("6f1c1f4e-3c1d-4b8e-9a57-0d9c1a2e5b11")

// Listing is one card or row summarizing a media item on an index page. A
// Listing always has a title and an absolute source URL; everything else is
// optional and left nil when the page did not carry it.
type Listing struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Thumbnail     *string   `json:"thumbnail,omitempty"`
	Year          *int      `json:"year,omitempty"`
	Rating        *float64  `json:"rating,omitempty"`
	Duration      *int      `json:"duration,omitempty"` // seconds
	Quality       *string   `json:"quality,omitempty"`
	Genre         Genre     `json:"genre,omitempty"`
	ReleaseDate   *string   `json:"release_date,omitempty"`
	Status        *string   `json:"status,omitempty"`
	TotalEpisodes *string   `json:"total_episodes,omitempty"`
	ReleasedDay   *string   `json:"released_day,omitempty"`
	Synopsis      *string   `json:"synopsis,omitempty"`
}

// NewListing creates a listing for the given title and absolute URL. It
// returns false, and no listing, when either value is blank: an entity
// without a title or link is dropped rather than represented with empty
// strings.
func NewListing(title, url string) (Listing, bool) {
	title = strings.TrimSpace(title)
	url = strings.TrimSpace(url)
	if title == "" || url == "" {
		return Listing{}, false
	}

	return Listing{
		ID:    ListingID(url),
		Title: title,
		URL:   url,
	}, true
}

// ListingID returns the stable identifier for a listing at url.
func ListingID(url string) uuid.UUID {
	return uuid.NewSHA1(listingNamespace, []byte(url))
}

// TaggedRef is a named link such as a genre or country tag.
type TaggedRef struct {
	Name string  `json:"name"`
	URL  *string `json:"url,omitempty"`
}

// Person is a director or cast member credited on a detail page.
type Person struct {
	Name string  `json:"name"`
	URL  *string `json:"url,omitempty"`
}

// PlayerSource is one embeddable player offered for an item.
type PlayerSource struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

// Section is one named carousel (or the trailing grid) on a home page. Items
// is never nil, so a section that was found but held nothing serializes as an
// empty list.
type Section struct {
	Key        string    `json:"key"`
	Items      []Listing `json:"items"`
	ViewAllURL *string   `json:"view_all_url,omitempty"`
}

// ListPage is the result of scraping a single listing grid.
type ListPage struct {
	Items      []Listing  `json:"items"`
	Pagination Pagination `json:"pagination"`
	Query      *string    `json:"query,omitempty"`
}
