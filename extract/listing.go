package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/pevans/mediascrape/media"
	"github.com/pevans/mediascrape/normalize"
	"github.com/pevans/mediascrape/scraper"
)

// listingReader extracts listings from cards that share one selector set.
type listingReader struct {
	base    string
	fields  scraper.ListingSelectors
	episode *regexp.Regexp
	status  string

	title       Strategy[string]
	link        Strategy[string]
	thumbnail   Strategy[string]
	year        Strategy[int]
	rating      Strategy[float64]
	duration    Strategy[int]
	quality     Strategy[string]
	genreMeta   Strategy[string]
	releaseDate Strategy[string]
	episodes    Strategy[string]
	releasedDay Strategy[string]
}

func newListingReader(base string, f scraper.ListingSelectors) *listingReader {
	r := &listingReader{
		base:   base,
		fields: f,

		title:       FirstOf(TextOf(f.Title...), BareAnchorText),
		link:        FirstOf(AttrOf("href", f.Link...), BareAnchorHref),
		thumbnail:   ImageOf(f.Thumbnail...),
		year:        Then(TextOf(f.Year...), normalize.Year),
		rating:      Then(TextOf(f.Rating...), normalize.Float),
		duration:    Then(TextOf(f.Duration...), normalize.Duration),
		quality:     TextOf(f.Quality...),
		genreMeta:   AttrOf("content", f.GenreMeta...),
		releaseDate: TextOf(f.ReleaseDate...),
		episodes:    TextOf(f.TotalEpisodes...),
		releasedDay: OwnText("i", f.ReleasedDay...),
	}
	if f.EpisodePattern != "" {
		// An unusable pattern leaves the episode text as found.
		r.episode, _ = regexp.Compile(f.EpisodePattern)
	}
	return r
}

// Listing extracts one listing from a card node. It reports false when the
// card has no title or no resolvable link.
func Listing(item *goquery.Selection, base string, f scraper.ListingSelectors) (media.Listing, bool) {
	return newListingReader(base, f).read(item)
}

func (r *listingReader) read(item *goquery.Selection) (media.Listing, bool) {
	title := r.title(item).OrEmpty()
	link := Then(r.link, func(href string) mo.Option[string] {
		return normalize.Resolve(r.base, href)
	})(item).OrEmpty()

	l, ok := media.NewListing(title, link)
	if !ok {
		return media.Listing{}, false
	}

	l.Thumbnail = Then(r.thumbnail, func(src string) mo.Option[string] {
		return normalize.Resolve(r.base, src)
	})(item).ToPointer()
	l.Year = r.year(item).ToPointer()
	l.Rating = r.rating(item).ToPointer()
	l.Duration = r.duration(item).ToPointer()
	l.Quality = r.quality(item).ToPointer()
	l.TotalEpisodes = r.totalEpisodes(item).ToPointer()
	l.ReleasedDay = r.releasedDay(item).ToPointer()
	if r.status != "" {
		l.Status = lo.ToPtr(r.status)
	}

	var labelled []media.TaggedRef
	if text, ok := r.releaseDate(item).Get(); ok {
		if names, isGenre := r.genreLabel(text); isGenre {
			labelled = names
		} else {
			date, _ := normalize.Date(text)
			l.ReleaseDate = &date
		}
	}
	l.Genre = r.genre(item, labelled)

	return l, true
}

// genre picks the genre variant the card carries. A metadata attribute is a
// single string; tag links and labelled text become a list.
func (r *listingReader) genre(item *goquery.Selection, labelled []media.TaggedRef) media.Genre {
	if meta, ok := r.genreMeta(item).Get(); ok {
		return media.GenreText(meta)
	}

	refs := labelled
	for _, sel := range r.fields.GenreLinks {
		item.Find(sel).Each(func(_ int, a *goquery.Selection) {
			name := normalize.Text(a.Text())
			if name == "" {
				return
			}
			href, _ := a.Attr("href")
			refs = append(refs, media.TaggedRef{
				Name: name,
				URL:  normalize.Resolve(r.base, href).ToPointer(),
			})
		})
	}
	if len(refs) == 0 {
		return nil
	}
	return media.GenreList(refs)
}

// genreLabel recognizes "Genres: A, B" text in a date slot.
func (r *listingReader) genreLabel(text string) ([]media.TaggedRef, bool) {
	label := r.fields.GenreLabel
	if label == "" || !strings.HasPrefix(strings.ToLower(text), strings.ToLower(label)) {
		return nil, false
	}

	rest := strings.TrimSpace(text[len(label):])
	rest = strings.TrimSpace(strings.TrimPrefix(rest, ":"))

	var refs []media.TaggedRef
	for _, name := range strings.Split(rest, ",") {
		if name = strings.TrimSpace(name); name != "" {
			refs = append(refs, media.TaggedRef{Name: name})
		}
	}
	return refs, true
}

func (r *listingReader) totalEpisodes(item *goquery.Selection) mo.Option[string] {
	text, ok := r.episodes(item).Get()
	if !ok {
		return mo.None[string]()
	}
	if r.episode != nil {
		if m := r.episode.FindStringSubmatch(text); len(m) > 1 {
			return mo.Some(m[1])
		}
	}
	return mo.Some(text)
}

// readItems extracts every listing under container in document order.
func readItems(container *goquery.Selection, base string, layout scraper.ListLayout) []media.Listing {
	r := newListingReader(base, layout.Fields)
	r.status = layout.Status

	var nodes *goquery.Selection
	if layout.Direct {
		nodes = container.ChildrenFiltered(layout.Item)
	} else {
		nodes = container.Find(layout.Item)
	}

	items := []media.Listing{}
	nodes.Each(func(_ int, node *goquery.Selection) {
		if layout.Skip != "" && node.Find(layout.Skip).Length() > 0 {
			return
		}
		if l, ok := r.read(node); ok {
			items = append(items, l)
		}
	})
	return items
}
