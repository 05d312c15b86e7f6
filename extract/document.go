package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// parse builds a DOM for page. The HTML parser recovers from nearly
// anything, but if it does give up the result is an empty document so that
// callers degrade instead of failing.
func parse(page string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return goquery.NewDocumentFromNode(&html.Node{Type: html.DocumentNode})
	}
	return doc
}

// firstMatch returns the first node matched by any selector, trying the
// selectors in order.
func firstMatch(s *goquery.Selection, selectors []string) *goquery.Selection {
	for _, sel := range selectors {
		if sel == "" {
			continue
		}
		if found := s.Find(sel).First(); found.Length() > 0 {
			return found
		}
	}
	return s.Slice(0, 0)
}

// directText joins the text nodes directly under s, leaving out the text of
// child elements.
func directText(s *goquery.Selection) string {
	var b strings.Builder
	for _, n := range s.Nodes {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
