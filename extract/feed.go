package extract

import (
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/pevans/mediascrape/media"
	"github.com/pevans/mediascrape/normalize"
)

// Feed turns a site's RSS or Atom feed into listings. Unlike the HTML
// extractors it can fail: a document that is not a feed at all is an
// error. Items without a title or link are dropped.
func (e *Extractor) Feed(document string) ([]media.Listing, error) {
	fp := gofeed.NewParser()
	feed, err := fp.ParseString(document)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	listings := make([]media.Listing, 0, len(feed.Items))
	for _, item := range feed.Items {
		if l, ok := e.feedItem(item); ok {
			listings = append(listings, l)
		}
	}
	return listings, nil
}

func (e *Extractor) feedItem(item *gofeed.Item) (media.Listing, bool) {
	link := e.resolve(item.Link).OrEmpty()
	l, ok := media.NewListing(normalize.Text(item.Title), link)
	if !ok {
		return media.Listing{}, false
	}

	switch {
	case item.PublishedParsed != nil:
		published := item.PublishedParsed.UTC().Format(normalize.ISOLayout)
		l.ReleaseDate = &published
		year := item.PublishedParsed.UTC().Year()
		l.Year = &year
	case item.Published != "":
		published := item.Published
		l.ReleaseDate = &published
	}

	if len(item.Categories) > 0 {
		refs := make(media.GenreList, 0, len(item.Categories))
		for _, c := range item.Categories {
			if c = strings.TrimSpace(c); c != "" {
				refs = append(refs, media.TaggedRef{Name: c})
			}
		}
		if len(refs) > 0 {
			l.Genre = refs
		}
	}

	// Descriptions are HTML fragments.
	if item.Description != "" {
		l.Synopsis = optional(normalize.Text(parse(item.Description).Text())).ToPointer()
	}

	if item.Image != nil {
		l.Thumbnail = e.resolve(item.Image.URL).ToPointer()
	}
	if l.Thumbnail == nil {
		for _, enc := range item.Enclosures {
			if strings.HasPrefix(enc.Type, "image/") {
				l.Thumbnail = e.resolve(enc.URL).ToPointer()
				break
			}
		}
	}

	return l, true
}
