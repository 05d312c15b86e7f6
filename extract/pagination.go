package extract

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"

	"github.com/pevans/mediascrape/media"
	"github.com/pevans/mediascrape/normalize"
	"github.com/pevans/mediascrape/scraper"
)

var (
	pageOfPattern   = regexp.MustCompile(`(?i)pages?\s*(\d+)\s*(?:of|dari)\s*(\d+)`)
	defaultPageHref = regexp.MustCompile(`/page/(\d+)`)
	digitsOnly      = regexp.MustCompile(`^\d+$`)
)

// pager collects what the navigation widget says about page positions.
type pager struct {
	doc       *goquery.Document
	base      string
	sel       scraper.PaginationSelectors
	container *goquery.Selection
	pageHref  *regexp.Regexp

	numbers  []int
	hrefs    map[int]string
	maxHref  int
	template string
	link     PageLink
}

// PageLink returns the URL of page n of the listing being paginated, or ""
// when it cannot tell.
type PageLink func(n int) string

// PathPageLink derives page URLs from pageURL. A URL that already carries a
// page number (per sel.PageHref, or a page query parameter) gets that number
// replaced; any other URL gets /page/N/ appended to its path.
func PathPageLink(pageURL string, sel scraper.PaginationSelectors) PageLink {
	pattern := pageHrefPattern(sel)
	return func(n int) string {
		if m := pattern.FindStringSubmatchIndex(pageURL); m != nil && m[2] >= 0 {
			return pageURL[:m[2]] + strconv.Itoa(n) + pageURL[m[3]:]
		}

		u, err := url.Parse(pageURL)
		if err != nil || u.Host == "" {
			return ""
		}
		if q := u.Query(); q.Has("page") {
			q.Set("page", strconv.Itoa(n))
			u.RawQuery = q.Encode()
			return u.String()
		}
		u.Path = strings.TrimRight(u.Path, "/") + "/page/" + strconv.Itoa(n) + "/"
		return u.String()
	}
}

func pageHrefPattern(sel scraper.PaginationSelectors) *regexp.Regexp {
	if sel.PageHref != "" {
		if re, err := regexp.Compile(sel.PageHref); err == nil && re.NumSubexp() >= 1 {
			return re
		}
	}
	return defaultPageHref
}

// Paginate derives a pagination descriptor from whichever idiom the page
// uses. Idioms are tried in a fixed order so the result is deterministic
// when several coexist: "Page X of Y" text, then numbered links with a
// current marker, then rel=next/prev link elements. A page with none of them
// gets the no-pagination descriptor for fallback. extracted is the number of
// items scraped from the page and becomes the page size when positive. link
// builds neighbour URLs the widget does not link to; nil means pages of the
// site root.
func Paginate(doc *goquery.Document, base string, sel scraper.PaginationSelectors, fallback, extracted int, link PageLink) media.Pagination {
	if fallback < 1 {
		fallback = 1
	}

	p := &pager{
		doc:       doc,
		base:      base,
		sel:       sel,
		container: firstMatch(doc.Selection, sel.Containers),
		pageHref:  pageHrefPattern(sel),
		hrefs:     map[int]string{},
		link:      link,
	}
	if p.link == nil {
		p.link = PathPageLink(strings.TrimRight(base, "/")+"/", sel)
	}
	p.scanLinks()

	result, found := p.pageOf()
	if !found {
		result, found = p.numbered(fallback)
	}

	next := p.explicit(sel.Next, sel.NextText)
	prev := p.explicit(sel.Prev, sel.PrevText)

	if found {
		if next == "" {
			next = p.neighbour(result.CurrentPage+1, result.TotalPages)
		}
		if prev == "" && result.CurrentPage > 1 {
			prev = p.neighbour(result.CurrentPage-1, result.TotalPages)
		}
	}
	if next == "" {
		next = p.relLink("next")
	}
	if prev == "" {
		prev = p.relLink("prev")
	}

	if !found {
		if next == "" && prev == "" {
			result = media.NoPagination(fallback)
			if extracted > 0 {
				result.PerPage = extracted
			}
			return result
		}
		// Only rel links: position and size cannot be inferred.
		result = media.Pagination{CurrentPage: fallback, TotalPages: fallback}
	}

	result.NextURL = lo.EmptyableToPtr(next)
	result.PreviousURL = lo.EmptyableToPtr(prev)
	result.PageNumbers = append(result.PageNumbers, p.numbers...)
	if found {
		result.PageNumbers = append(result.PageNumbers, result.CurrentPage)
	}
	result.PerPage = extracted

	return result.Normalize()
}

// scanLinks records numeric anchors and page-numbered hrefs in the widget.
func (p *pager) scanLinks() {
	p.container.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, ok := normalize.Resolve(p.base, a.AttrOr("href", "")).Get()
		if !ok {
			return
		}

		hrefPage := 0
		if m := p.pageHref.FindStringSubmatchIndex(href); m != nil && m[2] >= 0 {
			hrefPage, _ = strconv.Atoi(href[m[2]:m[3]])
			if p.template == "" {
				p.template = href[:m[2]] + "{page}" + href[m[3]:]
			}
			p.maxHref = max(p.maxHref, hrefPage)
		}

		text := normalize.Text(a.Text())
		if digitsOnly.MatchString(text) {
			n, _ := strconv.Atoi(text)
			p.numbers = append(p.numbers, n)
			p.hrefs[n] = href
			return
		}
		if hrefPage > 0 {
			if _, seen := p.hrefs[hrefPage]; !seen {
				p.hrefs[hrefPage] = href
			}
		}
	})
}

// pageOf reads "Page X of Y" text.
func (p *pager) pageOf() (media.Pagination, bool) {
	var texts []string
	for _, sel := range p.sel.PageOf {
		p.doc.Find(sel).Each(func(_ int, s *goquery.Selection) {
			texts = append(texts, s.Text())
		})
	}
	texts = append(texts, p.container.Text())

	for _, text := range texts {
		m := pageOfPattern.FindStringSubmatch(normalize.Text(text))
		if m == nil {
			continue
		}
		current, _ := strconv.Atoi(m[1])
		total, _ := strconv.Atoi(m[2])
		current = max(current, 1)
		return media.Pagination{CurrentPage: current, TotalPages: max(total, current)}, true
	}
	return media.Pagination{}, false
}

// numbered reads a numbered link list with a current-page marker. A list
// without a marker still counts; the request's page is then current.
func (p *pager) numbered(fallback int) (media.Pagination, bool) {
	marker := firstMatch(p.container, p.sel.Current)
	if len(p.numbers) == 0 && marker.Length() == 0 {
		return media.Pagination{}, false
	}

	current := 0
	if marker.Length() > 0 {
		text := normalize.Text(marker.Text())
		if digitsOnly.MatchString(text) {
			current, _ = strconv.Atoi(text)
		} else if href, ok := marker.Attr("href"); ok {
			if m := p.pageHref.FindStringSubmatch(href); m != nil {
				current, _ = strconv.Atoi(m[1])
			}
		}
	}
	if current < 1 {
		current = fallback
	}

	total := max(current, p.maxHref, lo.Max(p.numbers))
	return media.Pagination{CurrentPage: current, TotalPages: total}, true
}

// explicit finds a next or previous anchor by selector, then by its text.
func (p *pager) explicit(selectors, texts []string) string {
	for _, sel := range selectors {
		if href, ok := p.resolved(p.container.Find(sel)); ok {
			return href
		}
	}

	anchors := p.container.Find("a[href]").FilterFunction(func(_ int, a *goquery.Selection) bool {
		text := normalize.Text(a.Text())
		return lo.ContainsBy(texts, func(t string) bool {
			return strings.EqualFold(text, t)
		})
	})
	if href, ok := p.resolved(anchors); ok {
		return href
	}
	return ""
}

// neighbour returns the URL of page n: the link the widget offers for it,
// one built from the widget's page-numbered link pattern, or p.link's.
func (p *pager) neighbour(n, total int) string {
	if n < 1 || n > total {
		return ""
	}
	if href, ok := p.hrefs[n]; ok {
		return href
	}
	if p.template != "" {
		return strings.Replace(p.template, "{page}", strconv.Itoa(n), 1)
	}
	return p.link(n)
}

// relLink reads <link rel="next|prev"> from the document head.
func (p *pager) relLink(rel string) string {
	href, _ := p.resolved(p.doc.Find(`link[rel="` + rel + `"]`))
	return href
}

func (p *pager) resolved(s *goquery.Selection) (string, bool) {
	href, ok := attrValue(s.First(), "href")
	if !ok {
		return "", false
	}
	return normalize.Resolve(p.base, href).Get()
}
