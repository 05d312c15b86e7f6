// Package facade turns site-scoped operations into scrapes: it validates the
// caller's input, builds the page URL from the site's templates, fetches the
// page (through the cache when one is configured), runs the matching
// extractor and maps the result to the wire types.
package facade

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/pevans/mediascrape/extract"
	"github.com/pevans/mediascrape/facade/wire"
	"github.com/pevans/mediascrape/fetch"
	"github.com/pevans/mediascrape/logger"
	"github.com/pevans/mediascrape/normalize"
	"github.com/pevans/mediascrape/scraper"
)

// Operation names. Except for episode, each one is also the name of the URL
// template a profile must define to offer it.
const (
	OpHome    = "home"
	OpList    = "list"
	OpLatest  = "latest"
	OpGenre   = "genre"
	OpCountry = "country"
	OpYear    = "year"
	OpFeature = "feature"
	OpSearch  = "search"
	OpSpecial = "special"
	OpOngoing = "ongoing"
	OpDetail  = "detail"
	OpSeries  = "series"
	OpEpisode = "episode"
	OpGenres  = "genres"
	OpFeed    = "feed"
)

// listLayouts maps each list operation to the profile layout that holds its
// grid, per site family.
var listLayouts = map[string]map[string]string{
	scraper.FamilyMovie: {
		OpList:    scraper.LayoutGrid,
		OpLatest:  scraper.LayoutGrid,
		OpGenre:   scraper.LayoutGrid,
		OpCountry: scraper.LayoutGrid,
		OpYear:    scraper.LayoutGrid,
		OpFeature: scraper.LayoutGrid,
		OpSearch:  scraper.LayoutGrid,
		OpSpecial: scraper.LayoutGrid,
	},
	scraper.FamilyAnime: {
		OpList:    scraper.LayoutArchive,
		OpLatest:  scraper.LayoutArchive,
		OpSearch:  scraper.LayoutArchive,
		OpGenre:   scraper.LayoutGenre,
		OpOngoing: scraper.LayoutOngoing,
	},
}

// PageCache stores fetched pages by URL. *store.Cache implements it.
type PageCache interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte, ttl time.Duration) error
}

// Options configures a Service.
type Options struct {
	// Cache, when set, holds fetched pages for CacheTTL.
	Cache    PageCache
	CacheTTL time.Duration
	Logger   logger.Logger
}

type site struct {
	profile   scraper.Profile
	extractor *extract.Extractor
}

// Service runs scrape operations against the sites of a registry. It is
// safe for concurrent use; concurrent requests for the same URL share one
// fetch.
type Service struct {
	sites   map[string]site
	names   []string
	fetcher fetch.Fetcher
	cache   PageCache
	ttl     time.Duration
	log     logger.Logger
	group   singleflight.Group
}

// New builds a Service with one extractor per registered profile.
func New(registry scraper.Registry, fetcher fetch.Fetcher, opts Options) (*Service, error) {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.Cache != nil && opts.CacheTTL <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive, got %s", opts.CacheTTL)
	}

	s := &Service{
		sites:   map[string]site{},
		names:   registry.Names(),
		fetcher: fetcher,
		cache:   opts.Cache,
		ttl:     opts.CacheTTL,
		log:     opts.Logger,
	}
	for _, name := range s.names {
		profile, err := registry.Get(name)
		if err != nil {
			return nil, err
		}
		ex, err := extract.New(profile)
		if err != nil {
			return nil, err
		}
		s.sites[name] = site{profile: profile, extractor: ex}
	}

	return s, nil
}

// Sites describes every registered site in name order.
func (s *Service) Sites() []wire.Site {
	out := make([]wire.Site, 0, len(s.names))
	for _, name := range s.names {
		p := s.sites[name].profile

		ops := []string{OpEpisode}
		for op := range p.Templates {
			if !strings.HasSuffix(op, "_paged") {
				ops = append(ops, op)
			}
		}
		slices.Sort(ops)

		out = append(out, wire.Site{Name: name, BaseURL: p.BaseURL, Family: p.Family, Operations: ops})
	}
	return out
}

func (s *Service) site(name string) (site, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return site{}, invalid("site must not be empty")
	}
	st, ok := s.sites[key]
	if !ok {
		return site{}, invalid("unknown site %q", name)
	}
	return st, nil
}

// target builds the URL of op on st, rejecting operations the site has no
// template for.
func (s *Service) target(st site, op string, page int, vars scraper.Vars) (string, error) {
	if page < 1 {
		return "", invalid("page must be at least 1, got %d", page)
	}
	if !st.profile.HasTemplate(op) {
		return "", invalid("site %q does not support %s", st.profile.Name, op)
	}
	return st.profile.URL(op, page, vars)
}

// pageURL resolves a caller-supplied URL against the site and requires an
// http(s) URL with a host.
func pageURL(st site, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", invalid("url must not be empty")
	}

	resolved, ok := normalize.Resolve(st.profile.BaseURL, raw).Get()
	if !ok {
		return "", invalid("cannot resolve url %q", raw)
	}
	u, err := url.Parse(resolved)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", invalid("url %q must be an http(s) url", raw)
	}
	return resolved, nil
}

func requireFamily(st site, family, op string) error {
	if st.profile.Family != family {
		return invalid("site %q is a %s site and does not support %s", st.profile.Name, st.profile.Family, op)
	}
	return nil
}

func requireText(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", invalid("%s must not be empty", name)
	}
	return value, nil
}

// fetchPage returns the page at u from the cache or the fetcher. Cache
// failures are logged and otherwise ignored.
func (s *Service) fetchPage(ctx context.Context, u string) (string, error) {
	log := s.log.With(logger.String("url", u))

	if s.cache != nil {
		body, ok, err := s.cache.Get(u)
		if err != nil {
			log.Warn("Cache lookup failed", logger.Error(err))
		} else if ok {
			log.Debug("Cache hit")
			return string(body), nil
		}
	}

	v, err, shared := s.group.Do(u, func() (any, error) {
		start := time.Now()
		body, err := s.fetcher.Fetch(ctx, u)
		if err != nil {
			return "", err
		}
		log.Debug("Fetched page", logger.Duration("duration", time.Since(start)), logger.Int("bytes", len(body)))

		if s.cache != nil {
			if err := s.cache.Put(u, []byte(body), s.ttl); err != nil {
				log.Warn("Cache store failed", logger.Error(err))
			}
		}
		return body, nil
	})
	if err != nil {
		log.Warn("Fetch failed", logger.Error(err), logger.Bool("shared", shared))
		return "", &FetchError{URL: u, Err: err}
	}

	return v.(string), nil
}
