package extract

import (
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pevans/mediascrape/media"
	"github.com/pevans/mediascrape/normalize"
)

// AnimeDetail scrapes an anime page: the label/value info block and the
// episode list, returned oldest first.
func (e *Extractor) AnimeDetail(page, pageURL string) media.AnimeDetail {
	doc := parse(page)
	root := doc.Selection
	sel := e.profile.Anime

	a := media.AnimeDetail{
		Listing: media.Listing{
			ID:    media.ListingID(pageURL),
			Title: TextOf(sel.Title...)(root).OrEmpty(),
			URL:   pageURL,
		},
		Episodes: []media.AnimeEpisodeRef{},
	}
	a.Thumbnail = Then(ImageOf(sel.Thumbnail...), e.resolve)(root).ToPointer()

	var genres media.GenreList
	if sel.Info != "" {
		root.Find(sel.Info).Each(func(_ int, span *goquery.Selection) {
			text := normalize.Text(span.Text())
			value := func(labels []string) (*string, bool) {
				rest, ok := afterLabel(text, labels)
				if !ok {
					return nil, false
				}
				return optional(rest).ToPointer(), true
			}

			labels := sel.Labels
			if v, ok := value(labels.Japanese); ok {
				a.JapaneseTitle = v
			} else if v, ok := value(labels.Score); ok {
				a.Score = v
				if v != nil {
					a.Rating = normalize.Float(*v).ToPointer()
				}
			} else if v, ok := value(labels.Producer); ok {
				a.Producer = v
			} else if v, ok := value(labels.Type); ok {
				a.Type = v
			} else if v, ok := value(labels.Status); ok {
				a.Status = v
			} else if v, ok := value(labels.TotalEpisodes); ok {
				a.TotalEpisodes = v
			} else if v, ok := value(labels.Duration); ok {
				a.DurationText = v
				if v != nil {
					a.Duration = normalize.Duration(*v).ToPointer()
				}
			} else if v, ok := value(labels.ReleaseDate); ok {
				if v != nil {
					date, _ := normalize.Date(*v)
					a.ReleaseDate = &date
					a.Year = normalize.Year(*v).ToPointer()
				}
			} else if v, ok := value(labels.Studio); ok {
				a.Studio = v
			} else if _, ok := value(labels.Genre); ok {
				span.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
					if ref, ok := e.tag(link); ok {
						genres = append(genres, ref)
					}
				})
			}
		})
	}
	if len(genres) > 0 {
		a.Genre = genres
	}

	if sel.EpisodeLists != "" {
		root.Find(sel.EpisodeLists).Each(func(_ int, li *goquery.Selection) {
			link := li.Find("span a[href]").First()
			title := normalize.Text(link.Text())
			u, ok := e.resolve(link.AttrOr("href", "")).Get()
			if title == "" || !ok {
				return
			}

			ref := media.AnimeEpisodeRef{Title: title, URL: u}
			if sel.EpisodeDate != "" {
				ref.ReleaseDate = optional(normalize.Text(li.Find(sel.EpisodeDate).First().Text())).ToPointer()
			}
			a.Episodes = append(a.Episodes, ref)
		})
	}
	// Sites list the newest episode first.
	slices.Reverse(a.Episodes)

	return a
}

// Genres scrapes a genre index page into unique genre links. Links count
// as genres when their href contains the profile's genre path; duplicates
// by case-insensitive name and URL are dropped.
func (e *Extractor) Genres(page string) []media.TaggedRef {
	doc := parse(page)

	path := e.profile.Anime.GenreHref
	if path == "" {
		path = e.profile.Detail.GenreHref
	}

	genres := []media.TaggedRef{}
	if path == "" {
		return genres
	}

	seen := map[string]bool{}
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if !strings.Contains(href, path) {
			return
		}
		ref, ok := e.tag(a)
		if !ok || ref.URL == nil {
			return
		}
		key := strings.ToLower(ref.Name) + "\x00" + *ref.URL
		if seen[key] {
			return
		}
		seen[key] = true
		genres = append(genres, ref)
	})
	return genres
}
