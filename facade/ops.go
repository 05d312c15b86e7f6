package facade

import (
	"context"
	"strconv"

	"github.com/samber/lo"

	"github.com/pevans/mediascrape/extract"
	"github.com/pevans/mediascrape/facade/wire"
	"github.com/pevans/mediascrape/logger"
	"github.com/pevans/mediascrape/scraper"
)

// Home scrapes the home page of a movie site.
func (s *Service) Home(ctx context.Context, siteName string) (wire.Home, error) {
	st, err := s.site(siteName)
	if err != nil {
		return wire.Home{}, err
	}
	if err := requireFamily(st, scraper.FamilyMovie, OpHome); err != nil {
		return wire.Home{}, err
	}
	u, err := s.target(st, OpHome, 1, scraper.Vars{})
	if err != nil {
		return wire.Home{}, err
	}

	page, err := s.fetchPage(ctx, u)
	if err != nil {
		return wire.Home{}, err
	}
	return wire.FromSections(st.extractor.Home(page)), nil
}

// List scrapes the listing grid at rawURL, which may be relative to the
// site. page is the page number the caller believes rawURL points at; it is
// used when the page itself does not say.
func (s *Service) List(ctx context.Context, siteName, rawURL string, page int) (wire.ListPage, error) {
	st, err := s.site(siteName)
	if err != nil {
		return wire.ListPage{}, err
	}
	if page < 1 {
		return wire.ListPage{}, invalid("page must be at least 1, got %d", page)
	}
	u, err := pageURL(st, rawURL)
	if err != nil {
		return wire.ListPage{}, err
	}
	return s.scrapeList(ctx, st, OpList, u, page, nil, extract.PathPageLink(u, st.profile.Paging))
}

// Latest scrapes the newest-items listing.
func (s *Service) Latest(ctx context.Context, siteName string, page int) (wire.ListPage, error) {
	return s.listOp(ctx, siteName, OpLatest, page, scraper.Vars{})
}

// ByGenre scrapes the listing of one genre.
func (s *Service) ByGenre(ctx context.Context, siteName, slug string, page int) (wire.ListPage, error) {
	return s.slugOp(ctx, siteName, OpGenre, slug, page)
}

// ByCountry scrapes the listing of one country.
func (s *Service) ByCountry(ctx context.Context, siteName, slug string, page int) (wire.ListPage, error) {
	return s.slugOp(ctx, siteName, OpCountry, slug, page)
}

// ByYear scrapes the listing of one release year.
func (s *Service) ByYear(ctx context.Context, siteName string, year, page int) (wire.ListPage, error) {
	if year < 1000 || year > 9999 {
		return wire.ListPage{}, invalid("year must have four digits, got %d", year)
	}
	return s.listOp(ctx, siteName, OpYear, page, scraper.Vars{Year: strconv.Itoa(year)})
}

// ByFeature scrapes a feature listing such as "populer" or "rating".
func (s *Service) ByFeature(ctx context.Context, siteName, slug string, page int) (wire.ListPage, error) {
	return s.slugOp(ctx, siteName, OpFeature, slug, page)
}

// Special scrapes a special-page listing such as a collection.
func (s *Service) Special(ctx context.Context, siteName, slug string, page int) (wire.ListPage, error) {
	return s.slugOp(ctx, siteName, OpSpecial, slug, page)
}

// Ongoing scrapes the currently airing anime.
func (s *Service) Ongoing(ctx context.Context, siteName string, page int) (wire.ListPage, error) {
	return s.listOp(ctx, siteName, OpOngoing, page, scraper.Vars{})
}

// Search scrapes the search results for query. The result echoes the
// query back.
func (s *Service) Search(ctx context.Context, siteName, query string, page int) (wire.ListPage, error) {
	query, err := requireText("query", query)
	if err != nil {
		return wire.ListPage{}, err
	}
	return s.listOp(ctx, siteName, OpSearch, page, scraper.Vars{Query: query})
}

func (s *Service) slugOp(ctx context.Context, siteName, op, slug string, page int) (wire.ListPage, error) {
	slug, err := requireText("slug", slug)
	if err != nil {
		return wire.ListPage{}, err
	}
	return s.listOp(ctx, siteName, op, page, scraper.Vars{Slug: slug})
}

func (s *Service) listOp(ctx context.Context, siteName, op string, page int, vars scraper.Vars) (wire.ListPage, error) {
	st, err := s.site(siteName)
	if err != nil {
		return wire.ListPage{}, err
	}
	u, err := s.target(st, op, page, vars)
	if err != nil {
		return wire.ListPage{}, err
	}
	link := func(n int) string {
		next, err := st.profile.URL(op, n, vars)
		if err != nil {
			return ""
		}
		return next
	}
	return s.scrapeList(ctx, st, op, u, page, lo.EmptyableToPtr(vars.Query), link)
}

func (s *Service) scrapeList(ctx context.Context, st site, op, u string, page int, query *string, link extract.PageLink) (wire.ListPage, error) {
	layout, ok := listLayouts[st.profile.Family][op]
	if !ok {
		return wire.ListPage{}, invalid("site %q does not support %s", st.profile.Name, op)
	}

	body, err := s.fetchPage(ctx, u)
	if err != nil {
		return wire.ListPage{}, err
	}

	result := st.extractor.List(body, layout, page, link)
	result.Query = query
	return wire.FromListPage(result), nil
}

// Detail scrapes the detail page of a movie.
func (s *Service) Detail(ctx context.Context, siteName, slug string) (wire.Detail, error) {
	st, u, err := s.slugPage(siteName, slug, OpDetail, scraper.FamilyMovie)
	if err != nil {
		return wire.Detail{}, err
	}

	body, err := s.fetchPage(ctx, u)
	if err != nil {
		return wire.Detail{}, err
	}
	d := st.extractor.Detail(body, u)
	if d.IsEmpty() {
		s.log.Warn("Page has no detail title", logger.String("url", u))
	}
	return wire.FromDetail(d), nil
}

// SeriesDetail scrapes the detail page of a series with its seasons.
func (s *Service) SeriesDetail(ctx context.Context, siteName, slug string) (wire.Series, error) {
	st, u, err := s.slugPage(siteName, slug, OpSeries, scraper.FamilyMovie)
	if err != nil {
		return wire.Series{}, err
	}

	body, err := s.fetchPage(ctx, u)
	if err != nil {
		return wire.Series{}, err
	}
	series := st.extractor.Series(body, u)
	if series.IsEmpty() {
		s.log.Warn("Page has no detail title", logger.String("url", u))
	}
	return wire.FromSeries(series), nil
}

// AnimeDetail scrapes the detail page of an anime.
func (s *Service) AnimeDetail(ctx context.Context, siteName, slug string) (wire.AnimeDetail, error) {
	st, u, err := s.slugPage(siteName, slug, OpDetail, scraper.FamilyAnime)
	if err != nil {
		return wire.AnimeDetail{}, err
	}

	body, err := s.fetchPage(ctx, u)
	if err != nil {
		return wire.AnimeDetail{}, err
	}
	return wire.FromAnimeDetail(st.extractor.AnimeDetail(body, u)), nil
}

func (s *Service) slugPage(siteName, slug, op, family string) (site, string, error) {
	st, err := s.site(siteName)
	if err != nil {
		return site{}, "", err
	}
	if err := requireFamily(st, family, op); err != nil {
		return site{}, "", err
	}
	slug, err = requireText("slug", slug)
	if err != nil {
		return site{}, "", err
	}
	u, err := s.target(st, op, 1, scraper.Vars{Slug: slug})
	if err != nil {
		return site{}, "", err
	}
	return st, u, nil
}

// Episode scrapes the episode or player page at rawURL. It works for both
// families.
func (s *Service) Episode(ctx context.Context, siteName, rawURL string) (wire.Episode, error) {
	st, err := s.site(siteName)
	if err != nil {
		return wire.Episode{}, err
	}
	u, err := pageURL(st, rawURL)
	if err != nil {
		return wire.Episode{}, err
	}

	body, err := s.fetchPage(ctx, u)
	if err != nil {
		return wire.Episode{}, err
	}
	return wire.FromEpisode(st.extractor.Episode(body, u)), nil
}

// Genres scrapes the genre index of a site.
func (s *Service) Genres(ctx context.Context, siteName string) (wire.GenreIndex, error) {
	st, err := s.site(siteName)
	if err != nil {
		return wire.GenreIndex{}, err
	}
	u, err := s.target(st, OpGenres, 1, scraper.Vars{})
	if err != nil {
		return wire.GenreIndex{}, err
	}

	body, err := s.fetchPage(ctx, u)
	if err != nil {
		return wire.GenreIndex{}, err
	}
	return wire.GenreIndex{Genres: wire.FromTags(st.extractor.Genres(body))}, nil
}

// Feed reads the site's RSS or Atom feed. A fetched document that is not a
// feed is reported as a fetch failure of that URL.
func (s *Service) Feed(ctx context.Context, siteName string) (wire.Feed, error) {
	st, err := s.site(siteName)
	if err != nil {
		return wire.Feed{}, err
	}
	u, err := s.target(st, OpFeed, 1, scraper.Vars{})
	if err != nil {
		return wire.Feed{}, err
	}

	body, err := s.fetchPage(ctx, u)
	if err != nil {
		return wire.Feed{}, err
	}
	items, err := st.extractor.Feed(body)
	if err != nil {
		return wire.Feed{}, &FetchError{URL: u, Err: err}
	}
	return wire.Feed{Items: wire.FromListings(items)}, nil
}
