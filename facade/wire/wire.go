// Package wire defines the JSON shapes served to clients. Every scraped
// entity is copied field by field into these types; optional values stay
// nil and are omitted rather than sent as empty strings.
package wire

import (
	"github.com/samber/lo"

	"github.com/pevans/mediascrape/media"
)

// Listing is one media item in a grid, carousel or feed. Exactly one of
// GenreText and Genres is set when the source had genre information.
type Listing struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Thumbnail     *string  `json:"thumbnail,omitempty"`
	Year          *int     `json:"year,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Duration      *int     `json:"duration_seconds,omitempty"`
	Quality       *string  `json:"quality,omitempty"`
	GenreText     *string  `json:"genre_text,omitempty"`
	Genres        []Tag    `json:"genres,omitempty"`
	ReleaseDate   *string  `json:"release_date,omitempty"`
	Status        *string  `json:"status,omitempty"`
	TotalEpisodes *string  `json:"total_episodes,omitempty"`
	ReleasedDay   *string  `json:"released_day,omitempty"`
	Synopsis      *string  `json:"synopsis,omitempty"`
}

type Tag struct {
	Name string  `json:"name"`
	URL  *string `json:"url,omitempty"`
}

type Player struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

type Pagination struct {
	CurrentPage int     `json:"current_page"`
	TotalPages  int     `json:"total_pages"`
	HasNext     bool    `json:"has_next"`
	HasPrevious bool    `json:"has_previous"`
	NextURL     *string `json:"next_url,omitempty"`
	PreviousURL *string `json:"previous_url,omitempty"`
	PageNumbers []int   `json:"page_numbers"`
	PerPage     int     `json:"per_page"`
}

// ListPage is a page of listings.
type ListPage struct {
	Items      []Listing  `json:"items"`
	Pagination Pagination `json:"pagination"`
	Query      *string    `json:"query,omitempty"`
}

type Section struct {
	Key        string    `json:"key"`
	Items      []Listing `json:"items"`
	ViewAllURL *string   `json:"view_all_url,omitempty"`
}

// Home is the sections of a home page in declaration order.
type Home struct {
	Sections []Section `json:"sections"`
}

// Detail is the full record of one movie or series.
type Detail struct {
	Listing
	Votes      *int      `json:"votes,omitempty"`
	UpdatedAt  *string   `json:"updated_at,omitempty"`
	Players    []Player  `json:"players"`
	TrailerURL *string   `json:"trailer_url,omitempty"`
	Directors  []Tag     `json:"directors"`
	Cast       []Tag     `json:"cast"`
	Countries  []Tag     `json:"countries"`
	Similar    []Listing `json:"similar"`
}

// Series is a Detail with its season/episode tree.
type Series struct {
	Detail
	SeasonName    *string  `json:"season_name,omitempty"`
	CurrentSeason int      `json:"current_season"`
	Seasons       []Season `json:"seasons"`
}

type Season struct {
	Number   int            `json:"number"`
	Total    int            `json:"total"`
	Episodes []EpisodeEntry `json:"episodes"`
}

type EpisodeEntry struct {
	Number     int      `json:"number"`
	URL        string   `json:"url"`
	Players    []Player `json:"players,omitempty"`
	TrailerURL *string  `json:"trailer_url,omitempty"`
}

// Episode is the page of a single episode or a movie's player page.
type Episode struct {
	Title          string     `json:"title"`
	URL            string     `json:"url"`
	EpisodeNumber  *string    `json:"episode_number,omitempty"`
	PlayerURL      *string    `json:"player_url,omitempty"`
	Players        []Player   `json:"players"`
	TrailerURL     *string    `json:"trailer_url,omitempty"`
	Uploader       *string    `json:"uploader,omitempty"`
	ReleaseTime    *string    `json:"release_time,omitempty"`
	PreviousURL    *string    `json:"previous_url,omitempty"`
	NextURL        *string    `json:"next_url,omitempty"`
	AllEpisodesURL *string    `json:"all_episodes_url,omitempty"`
	Siblings       []Tag      `json:"siblings"`
	Downloads      []Download `json:"downloads"`
	DownloadURL    *string    `json:"download_url,omitempty"`
}

type Download struct {
	Name    string  `json:"name"`
	URL     string  `json:"url"`
	Size    *string `json:"size,omitempty"`
	Quality *string `json:"quality,omitempty"`
	Format  *string `json:"format,omitempty"`
}

// AnimeDetail is the full record of one anime.
type AnimeDetail struct {
	Listing
	JapaneseTitle *string        `json:"japanese_title,omitempty"`
	Score         *string        `json:"score,omitempty"`
	Producer      *string        `json:"producer,omitempty"`
	Type          *string        `json:"type,omitempty"`
	DurationText  *string        `json:"duration_text,omitempty"`
	Studio        *string        `json:"studio,omitempty"`
	Episodes      []AnimeEpisode `json:"episodes"`
}

type AnimeEpisode struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	ReleaseDate *string `json:"release_date,omitempty"`
}

// GenreIndex is the list of genres a site offers.
type GenreIndex struct {
	Genres []Tag `json:"genres"`
}

// Feed is the items of a site's RSS or Atom feed.
type Feed struct {
	Items []Listing `json:"items"`
}

// FromListing maps a listing, turning its genre variant into genre_text or genres.
func FromListing(l media.Listing) Listing {
	out := Listing{
		ID:            l.ID.String(),
		Title:         l.Title,
		URL:           l.URL,
		Thumbnail:     l.Thumbnail,
		Year:          l.Year,
		Rating:        l.Rating,
		Duration:      l.Duration,
		Quality:       l.Quality,
		ReleaseDate:   l.ReleaseDate,
		Status:        l.Status,
		TotalEpisodes: l.TotalEpisodes,
		ReleasedDay:   l.ReleasedDay,
		Synopsis:      l.Synopsis,
	}

	switch g := l.Genre.(type) {
	case media.GenreText:
		out.GenreText = lo.EmptyableToPtr(string(g))
	case media.GenreList:
		out.Genres = FromTags(g)
	case nil:
	}
	return out
}

// FromListings maps listings, returning an empty slice rather than nil.
func FromListings(ls []media.Listing) []Listing {
	return lo.Map(ls, func(l media.Listing, _ int) Listing { return FromListing(l) })
}

// FromTags maps tagged references such as genres and countries.
func FromTags(refs []media.TaggedRef) []Tag {
	return lo.Map(refs, func(r media.TaggedRef, _ int) Tag { return Tag{Name: r.Name, URL: r.URL} })
}

func fromPeople(people []media.Person) []Tag {
	return lo.Map(people, func(p media.Person, _ int) Tag { return Tag{Name: p.Name, URL: p.URL} })
}

func fromPlayers(players []media.PlayerSource) []Player {
	return lo.Map(players, func(p media.PlayerSource, _ int) Player { return Player{URL: p.URL, Label: p.Label} })
}

// FromPagination maps a pagination descriptor.
func FromPagination(p media.Pagination) Pagination {
	numbers := p.PageNumbers
	if numbers == nil {
		numbers = []int{}
	}
	return Pagination{
		CurrentPage: p.CurrentPage,
		TotalPages:  p.TotalPages,
		HasNext:     p.HasNext,
		HasPrevious: p.HasPrevious,
		NextURL:     p.NextURL,
		PreviousURL: p.PreviousURL,
		PageNumbers: numbers,
		PerPage:     p.PerPage,
	}
}

// FromListPage maps one scraped listing page.
func FromListPage(p media.ListPage) ListPage {
	return ListPage{
		Items:      FromListings(p.Items),
		Pagination: FromPagination(p.Pagination),
		Query:      p.Query,
	}
}

// FromSections maps the home page sections in their scraped order.
func FromSections(sections []media.Section) Home {
	return Home{Sections: lo.Map(sections, func(s media.Section, _ int) Section {
		return Section{Key: s.Key, Items: FromListings(s.Items), ViewAllURL: s.ViewAllURL}
	})}
}

// FromDetail maps a detail record. The detail's tag-list genres take the
// place of the listing-level genre.
func FromDetail(d media.Detail) Detail {
	out := Detail{
		Listing:    FromListing(d.Listing),
		Votes:      d.Votes,
		UpdatedAt:  d.UpdatedAt,
		Players:    fromPlayers(d.Players),
		TrailerURL: d.TrailerURL,
		Directors:  fromPeople(d.Directors),
		Cast:       fromPeople(d.Cast),
		Countries:  FromTags(d.Countries),
		Similar:    FromListings(d.Similar),
	}
	if len(d.Genres) > 0 {
		out.GenreText = nil
		out.Genres = FromTags(d.Genres)
	}
	return out
}

// FromSeries maps a series detail with its seasons and episodes.
func FromSeries(s media.Series) Series {
	return Series{
		Detail:        FromDetail(s.Detail),
		SeasonName:    s.SeasonName,
		CurrentSeason: s.CurrentSeason,
		Seasons: lo.Map(s.Seasons, func(season media.Season, _ int) Season {
			return Season{
				Number: season.Number,
				Total:  season.Total,
				Episodes: lo.Map(season.Episodes, func(e media.EpisodeRef, _ int) EpisodeEntry {
					return EpisodeEntry{
						Number:     e.Number,
						URL:        e.URL,
						Players:    fromPlayers(e.Players),
						TrailerURL: e.TrailerURL,
					}
				}),
			}
		}),
	}
}

// FromEpisode maps an episode or player page.
func FromEpisode(e media.EpisodePage) Episode {
	return Episode{
		Title:          e.Title,
		URL:            e.URL,
		EpisodeNumber:  e.EpisodeNumber,
		PlayerURL:      e.PlayerURL,
		Players:        fromPlayers(e.Players),
		TrailerURL:     e.TrailerURL,
		Uploader:       e.Uploader,
		ReleaseTime:    e.ReleaseTime,
		PreviousURL:    e.PreviousURL,
		NextURL:        e.NextURL,
		AllEpisodesURL: e.AllEpisodesURL,
		Siblings:       FromTags(e.Siblings),
		Downloads: lo.Map(e.Downloads, func(d media.Download, _ int) Download {
			return Download{Name: d.Name, URL: d.URL, Size: d.Size, Quality: d.Quality, Format: d.Format}
		}),
		DownloadURL: e.DownloadURL,
	}
}

// FromAnimeDetail maps an anime detail with its episode list.
func FromAnimeDetail(a media.AnimeDetail) AnimeDetail {
	return AnimeDetail{
		Listing:       FromListing(a.Listing),
		JapaneseTitle: a.JapaneseTitle,
		Score:         a.Score,
		Producer:      a.Producer,
		Type:          a.Type,
		DurationText:  a.DurationText,
		Studio:        a.Studio,
		Episodes: lo.Map(a.Episodes, func(e media.AnimeEpisodeRef, _ int) AnimeEpisode {
			return AnimeEpisode{Title: e.Title, URL: e.URL, ReleaseDate: e.ReleaseDate}
		}),
	}
}

// Site describes one supported site and the operations it offers.
type Site struct {
	Name       string   `json:"name"`
	BaseURL    string   `json:"base_url"`
	Family     string   `json:"family"`
	Operations []string `json:"operations"`
}
