package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/pevans/mediascrape/media"
	"github.com/pevans/mediascrape/normalize"
)

// Detail scrapes a single-item page. Every field is optional: a missing
// block leaves its fields absent (or its lists empty) and the rest of the
// page is still read. pageURL becomes the record's URL and ID. A page with
// no title at all yields media.EmptyDetail.
func (e *Extractor) Detail(page, pageURL string) media.Detail {
	return e.detail(parse(page), pageURL)
}

func (e *Extractor) detail(doc *goquery.Document, pageURL string) media.Detail {
	sel := e.profile.Detail
	root := doc.Selection

	title := e.detailTitle(root)
	if title == "" {
		return media.EmptyDetail(pageURL)
	}

	d := media.Detail{
		Listing: media.Listing{
			ID:    media.ListingID(pageURL),
			Title: title,
			URL:   pageURL,
		},
		Players:   e.players(root, sel.PlayerList),
		Directors: []media.Person{},
		Cast:      []media.Person{},
		Genres:    []media.TaggedRef{},
		Countries: []media.TaggedRef{},
		Similar:   []media.Listing{},
	}

	d.Synopsis = e.synopsis(root).ToPointer()
	d.Thumbnail = Then(ImageOf(sel.Thumbnail...), e.resolve)(root).ToPointer()
	d.TrailerURL = Then(AttrOf("href", sel.Trailer...), e.resolve)(root).ToPointer()

	e.infoTags(root, &d)

	root.Find(sel.TagList).First().Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		switch {
		case sel.GenreHref != "" && strings.Contains(href, sel.GenreHref):
			if ref, ok := e.tag(a); ok {
				d.Genres = append(d.Genres, ref)
			}
		case sel.CountryHref != "" && strings.Contains(href, sel.CountryHref):
			if ref, ok := e.tag(a); ok {
				d.Countries = append(d.Countries, ref)
			}
		}
	})

	var release string
	root.Find(sel.MetaBlock).First().Find("p").Each(func(_ int, p *goquery.Selection) {
		text := normalize.Text(p.Text())
		labels := sel.Labels

		if _, ok := afterLabel(text, labels.Directors); ok {
			d.Directors = append(d.Directors, e.people(p)...)
			return
		}
		if _, ok := afterLabel(text, labels.Cast); ok {
			d.Cast = append(d.Cast, e.people(p)...)
			return
		}
		if _, ok := afterLabel(text, labels.Countries); ok {
			// The tag list is the primary source for countries.
			if len(d.Countries) == 0 {
				p.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
					if ref, ok := e.tag(a); ok {
						d.Countries = append(d.Countries, ref)
					}
				})
			}
			return
		}
		if rest, ok := afterLabel(text, labels.Votes); ok {
			d.Votes = normalize.Int(rest).ToPointer()
			return
		}
		if rest, ok := afterLabel(text, labels.Release); ok {
			release = rest
			return
		}
		if rest, ok := afterLabel(text, labels.Updated); ok && rest != "" {
			updated, _ := normalize.Date(rest, sel.DateLayouts...)
			d.UpdatedAt = &updated
		}
	})

	if release != "" {
		date, _ := normalize.Date(release, sel.DateLayouts...)
		d.ReleaseDate = &date
	}
	year := normalize.Year(release)
	if year.IsAbsent() {
		year = normalize.TitleYear(d.Title)
	}
	d.Year = year.ToPointer()

	if len(d.Genres) > 0 {
		names := lo.Map(d.Genres, func(g media.TaggedRef, _ int) string { return g.Name })
		d.Genre = media.GenreText(strings.Join(names, ", "))
	}

	if layout, ok := e.profile.Layout(sel.SimilarLayout); ok {
		if container := firstMatch(root, layout.Containers); container.Length() > 0 {
			d.Similar = readItems(container, e.base(), layout)
		}
	}

	return d
}

// detailTitle reads the page heading and strips site boilerplate such as
// "Nonton " and " Sub Indo di Lk21".
func (e *Extractor) detailTitle(root *goquery.Selection) string {
	sel := e.profile.Detail
	title := FirstOf(
		TextOf(sel.Title...),
		AttrOf("content", `meta[property="og:title"]`),
		TextOf("head title"),
	)(root).OrEmpty()

	for _, prefix := range sel.TitlePrefixes {
		title = strings.TrimPrefix(title, prefix)
	}
	for _, suffix := range sel.TitleSuffixes {
		title = strings.TrimSuffix(title, suffix)
	}
	return strings.TrimSpace(title)
}

func (e *Extractor) synopsis(root *goquery.Selection) mo.Option[string] {
	sel := e.profile.Detail
	node := firstMatch(root, sel.Synopsis)
	if sel.SynopsisAttr != "" {
		if v, ok := attrValue(node, sel.SynopsisAttr); ok {
			return mo.Some(normalize.Text(v))
		}
	}
	return optional(normalize.Text(node.Text()))
}

// infoTags reads the fixed-order badge row: rating, quality, resolution,
// duration, or whatever order the profile declares.
func (e *Extractor) infoTags(root *goquery.Selection, d *media.Detail) {
	sel := e.profile.Detail
	if sel.InfoTag == "" {
		return
	}

	spans := root.Find(sel.InfoTag).First().ChildrenFiltered("span")
	for i, field := range sel.InfoOrder {
		if i >= spans.Length() {
			break
		}
		text := normalize.Text(spans.Eq(i).Text())
		switch field {
		case "rating":
			d.Rating = normalize.Float(text).ToPointer()
		case "quality":
			d.Quality = optional(text).ToPointer()
		case "duration":
			d.Duration = normalize.Duration(text).ToPointer()
		}
	}
}

// players reads the player source list. Each entry names its URL in
// data-url (or href) and its label in data-server (or its text).
func (e *Extractor) players(root *goquery.Selection, selector string) []media.PlayerSource {
	players := []media.PlayerSource{}
	if selector == "" {
		return players
	}

	root.Find(selector).Each(func(_ int, a *goquery.Selection) {
		raw, ok := attrValue(a, "data-url")
		if !ok {
			raw, ok = attrValue(a, "href")
		}
		if !ok {
			return
		}
		u, ok := e.resolve(raw).Get()
		if !ok {
			return
		}

		label, ok := attrValue(a, "data-server")
		if !ok {
			label = normalize.Text(a.Text())
		}
		players = append(players, media.PlayerSource{URL: u, Label: label})
	})
	return players
}

func (e *Extractor) people(p *goquery.Selection) []media.Person {
	var people []media.Person
	p.Find("a").Each(func(_ int, a *goquery.Selection) {
		name := normalize.Text(a.Text())
		if name == "" {
			return
		}
		people = append(people, media.Person{
			Name: name,
			URL:  e.resolve(a.AttrOr("href", "")).ToPointer(),
		})
	})
	return people
}

func (e *Extractor) tag(a *goquery.Selection) (media.TaggedRef, bool) {
	name := normalize.Text(a.Text())
	if name == "" {
		return media.TaggedRef{}, false
	}
	return media.TaggedRef{
		Name: name,
		URL:  e.resolve(a.AttrOr("href", "")).ToPointer(),
	}, true
}

func (e *Extractor) resolve(href string) mo.Option[string] {
	return normalize.Resolve(e.base(), href)
}

// afterLabel reports whether text carries any of the labels and returns
// what follows the first one found.
func afterLabel(text string, labels []string) (string, bool) {
	for _, label := range labels {
		if label == "" {
			continue
		}
		if i := strings.Index(text, label); i >= 0 {
			return strings.TrimSpace(text[i+len(label):]), true
		}
	}
	return "", false
}
