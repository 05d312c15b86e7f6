package media

// Detail is the full record for one media item, scraped from its dedicated
// page. The embedded Listing carries the summary fields; its ReleaseDate is
// ISO-8601 when the page's date could be parsed and raw text otherwise.
type Detail struct {
	Listing

	Votes      *int           `json:"votes,omitempty"`
	UpdatedAt  *string        `json:"updated_at,omitempty"` // ISO-8601 when parseable, raw text otherwise
	Players    []PlayerSource `json:"players"`
	TrailerURL *string        `json:"trailer_url,omitempty"`
	Directors  []Person       `json:"directors"`
	Cast       []Person       `json:"cast"`
	Genres     []TaggedRef    `json:"genres"`
	Countries  []TaggedRef    `json:"countries"`
	Similar    []Listing      `json:"similar"`
}

// EmptyDetail is the result for a page without a detail title: the page is
// not a detail page, so only the requested URL and its ID are kept and every
// list is empty.
func EmptyDetail(pageURL string) Detail {
	return Detail{
		Listing:   Listing{ID: ListingID(pageURL), URL: pageURL},
		Players:   []PlayerSource{},
		Directors: []Person{},
		Cast:      []Person{},
		Genres:    []TaggedRef{},
		Countries: []TaggedRef{},
		Similar:   []Listing{},
	}
}

// IsEmpty reports whether d is an EmptyDetail.
func (d Detail) IsEmpty() bool {
	return d.Title == ""
}

// Series layers season information on top of a Detail. The airing status
// lives in the embedded Listing.
type Series struct {
	Detail

	SeasonName    *string  `json:"season_name,omitempty"`
	CurrentSeason int      `json:"current_season"`
	Seasons       []Season `json:"seasons"`
}

// Season is one season of a series with its episodes in ascending order.
type Season struct {
	Number   int          `json:"number"`
	Total    int          `json:"total"`
	Episodes []EpisodeRef `json:"episodes"`
}

// EpisodeRef points at the page of a single episode.
type EpisodeRef struct {
	Number     int            `json:"number"`
	URL        string         `json:"url"`
	Players    []PlayerSource `json:"players,omitempty"`
	TrailerURL *string        `json:"trailer_url,omitempty"`
}
