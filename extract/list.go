package extract

import (
	"github.com/pevans/mediascrape/media"
)

// List scrapes one listing grid and its pagination. layout names a layout
// of the profile; fallbackPage is the page the caller asked for. A page
// without the grid, or an unknown layout, yields no items and the
// no-pagination descriptor. link builds the URLs of neighbouring pages the
// widget does not link to; nil falls back to pages of the site root.
func (e *Extractor) List(page, layout string, fallbackPage int, link PageLink) media.ListPage {
	empty := media.ListPage{
		Items:      []media.Listing{},
		Pagination: media.NoPagination(fallbackPage),
	}

	l, ok := e.profile.Layout(layout)
	if !ok {
		return empty
	}

	doc := parse(page)
	container := firstMatch(doc.Selection, l.Containers)
	if container.Length() == 0 {
		return empty
	}

	items := readItems(container, e.base(), l)
	return media.ListPage{
		Items:      items,
		Pagination: Paginate(doc, e.base(), e.profile.Paging, fallbackPage, len(items), link),
	}
}
