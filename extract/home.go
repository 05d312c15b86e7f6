package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pevans/mediascrape/media"
	"github.com/pevans/mediascrape/normalize"
	"github.com/pevans/mediascrape/scraper"
)

// Home scrapes the named carousels of a home page in declaration order,
// followed by the trailing grid. Every declared section is reported, with
// an empty item list when the page did not have it.
func (e *Extractor) Home(page string) []media.Section {
	doc := parse(page)
	cfg := e.profile.Home
	layout := e.profile.Layouts[cfg.Layout]

	sections := make([]media.Section, 0, len(cfg.Sections)+1)
	for _, s := range cfg.Sections {
		items, viewAll := e.carousel(doc, layout, s.Label)
		if len(items) == 0 {
			for _, heading := range s.FallbackGrids {
				if items = e.headedGrid(doc, layout, heading); len(items) > 0 {
					break
				}
			}
		}

		sections = append(sections, media.Section{
			Key:        s.Key,
			Items:      items,
			ViewAllURL: normalize.Resolve(e.base(), viewAll).ToPointer(),
		})
	}

	if cfg.Grid.Key != "" {
		items := []media.Listing{}
		for _, heading := range cfg.Grid.Headings {
			if items = e.headedGrid(doc, layout, heading); len(items) > 0 {
				break
			}
		}

		sections = append(sections, media.Section{
			Key:        cfg.Grid.Key,
			Items:      items,
			ViewAllURL: normalize.Resolve(e.base(), cfg.Grid.ViewAllPath).ToPointer(),
		})
	}

	return sections
}

// carousel finds the carousel for label, first by its accessible label and
// then by a section heading containing the label, and returns its items and
// "view all" href.
func (e *Extractor) carousel(doc *goquery.Document, layout scraper.ListLayout, label string) ([]media.Listing, string) {
	cfg := e.profile.Home

	wrapper := doc.Find(cfg.Slider).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.AttrOr(cfg.LabelAttr, "")) == label
	}).First()

	if wrapper.Length() == 0 && cfg.Headings != "" {
		doc.Find(cfg.Headings).EachWithBreak(func(_ int, h *goquery.Selection) bool {
			if !hasAnyFold(h.Text(), []string{label}) {
				return true
			}
			section := h.Closest(cfg.Wrapper)
			if section.Length() == 0 {
				return true
			}
			wrapper = section.Find(cfg.Slider).First()
			if wrapper.Length() == 0 {
				wrapper = firstMatch(section, layout.Containers)
			}
			return wrapper.Length() == 0
		})
	}

	if wrapper.Length() == 0 {
		return []media.Listing{}, ""
	}

	return readItems(wrapper, e.base(), layout), e.viewAll(wrapper)
}

// viewAll finds the "see all" link of a carousel, in its enclosing section
// or in the header just before it.
func (e *Extractor) viewAll(wrapper *goquery.Selection) string {
	cfg := e.profile.Home
	if cfg.ViewAll == "" {
		return ""
	}

	isViewAll := func(_ int, a *goquery.Selection) bool {
		return hasAnyFold(a.Text(), []string{cfg.ViewAll})
	}

	scopes := []*goquery.Selection{wrapper.Closest(cfg.Wrapper)}
	if cfg.Header != "" {
		scopes = append(scopes, wrapper.PrevAllFiltered(cfg.Header).First())
	}
	for _, scope := range scopes {
		link := scope.Find("a[href]").FilterFunction(isViewAll).First()
		if href, ok := attrValue(link, "href"); ok {
			return href
		}
	}
	return ""
}

// headedGrid finds the grid that follows the header whose heading text is
// exactly heading.
func (e *Extractor) headedGrid(doc *goquery.Document, layout scraper.ListLayout, heading string) []media.Listing {
	cfg := e.profile.Home

	h := doc.Find("h2").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return normalize.Text(s.Text()) == heading
	}).First()
	if h.Length() == 0 {
		return []media.Listing{}
	}

	header := h.Closest(cfg.Header)
	if header.Length() == 0 {
		return []media.Listing{}
	}

	for _, container := range layout.Containers {
		if grid := header.NextAllFiltered(container).First(); grid.Length() > 0 {
			return readItems(grid, e.base(), layout)
		}
	}
	return []media.Listing{}
}
