package extract

import (
	"fmt"
	"regexp"

	"github.com/pevans/mediascrape/scraper"
)

var defaultEpisodeHref = regexp.MustCompile(`(?i)season-(\d+)-episode-(\d+)`)

// Extractor scrapes the page families of one site. It holds only the
// site's profile and compiled patterns, so one Extractor may serve
// concurrent calls.
type Extractor struct {
	profile     scraper.Profile
	episodeHref *regexp.Regexp
	statusLabel *regexp.Regexp
}

// New returns an Extractor for profile. It fails only when a pattern in the
// profile does not compile.
func New(profile scraper.Profile) (*Extractor, error) {
	e := &Extractor{
		profile:     profile,
		episodeHref: defaultEpisodeHref,
	}

	if pattern := profile.Series.EpisodeHref; pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("profile %q: episode href pattern: %w", profile.Name, err)
		}
		if re.NumSubexp() < 2 {
			return nil, fmt.Errorf("profile %q: episode href pattern needs season and episode groups", profile.Name)
		}
		e.episodeHref = re
	}

	if label := profile.Series.StatusLabel; label != "" {
		e.statusLabel = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(label) + `\s*:\s*`)
	}

	for name, layout := range profile.Layouts {
		if layout.Fields.EpisodePattern == "" {
			continue
		}
		if _, err := regexp.Compile(layout.Fields.EpisodePattern); err != nil {
			return nil, fmt.Errorf("profile %q: layout %q: episode pattern: %w", profile.Name, name, err)
		}
	}

	if profile.Paging.PageHref != "" {
		if _, err := regexp.Compile(profile.Paging.PageHref); err != nil {
			return nil, fmt.Errorf("profile %q: page href pattern: %w", profile.Name, err)
		}
	}

	return e, nil
}

// Profile returns the profile the extractor was built from.
func (e *Extractor) Profile() scraper.Profile {
	return e.profile
}

func (e *Extractor) base() string {
	return e.profile.BaseURL
}
