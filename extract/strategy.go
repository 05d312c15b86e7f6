// Package extract turns site HTML into media entities. Every extractor is a
// pure function of the page text and a scraper.Profile: it never fetches,
// never keeps state between calls, and never fails. Missing markup degrades
// the affected field to absent and extraction carries on.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/mo"

	"github.com/pevans/mediascrape/normalize"
)

// Strategy extracts one value from a DOM node, or reports it absent.
type Strategy[T any] func(*goquery.Selection) mo.Option[T]

// FirstOf tries strategies in order and returns the first present value.
func FirstOf[T any](strategies ...Strategy[T]) Strategy[T] {
	return func(s *goquery.Selection) mo.Option[T] {
		for _, strategy := range strategies {
			if strategy == nil {
				continue
			}
			if v := strategy(s); v.IsPresent() {
				return v
			}
		}
		return mo.None[T]()
	}
}

// Then feeds a present value through parse. Parse failures are absent.
func Then[T, U any](strategy Strategy[T], parse func(T) mo.Option[U]) Strategy[U] {
	return func(s *goquery.Selection) mo.Option[U] {
		v, ok := strategy(s).Get()
		if !ok {
			return mo.None[U]()
		}
		return parse(v)
	}
}

// TextOf returns the whitespace-collapsed text of the first node matched by
// any selector, trying selectors in order and skipping empty text.
func TextOf(selectors ...string) Strategy[string] {
	return func(s *goquery.Selection) mo.Option[string] {
		for _, sel := range selectors {
			if text := normalize.Text(s.Find(sel).First().Text()); text != "" {
				return mo.Some(text)
			}
		}
		return mo.None[string]()
	}
}

// AttrOf returns the first non-blank value of attr on nodes matched by the
// selectors, in selector order.
func AttrOf(attr string, selectors ...string) Strategy[string] {
	return func(s *goquery.Selection) mo.Option[string] {
		for _, sel := range selectors {
			if v, ok := attrValue(s.Find(sel).First(), attr); ok {
				return mo.Some(v)
			}
		}
		return mo.None[string]()
	}
}

// OwnText returns the node's text with the given child elements removed,
// e.g. the label after an icon.
func OwnText(drop string, selectors ...string) Strategy[string] {
	return func(s *goquery.Selection) mo.Option[string] {
		for _, sel := range selectors {
			node := s.Find(sel).First()
			if node.Length() == 0 {
				continue
			}
			if text := normalize.Text(node.Clone().Find(drop).Remove().End().Text()); text != "" {
				return mo.Some(text)
			}
		}
		return mo.None[string]()
	}
}

// imageURL reads an image reference off an img or meta node. The first
// srcset candidate wins over lazy-load and plain src attributes.
func imageURL(node *goquery.Selection) mo.Option[string] {
	if v, ok := attrValue(node, "srcset"); ok {
		if first := normalize.FirstSrcset(v); first != "" {
			return mo.Some(first)
		}
	}
	for _, attr := range []string{"data-src", "src", "content"} {
		if v, ok := attrValue(node, attr); ok {
			return mo.Some(v)
		}
	}
	return mo.None[string]()
}

// ImageOf returns the image reference of the first node matched by the
// selectors that carries one.
func ImageOf(selectors ...string) Strategy[string] {
	return func(s *goquery.Selection) mo.Option[string] {
		for _, sel := range selectors {
			if v := imageURL(s.Find(sel).First()); v.IsPresent() {
				return v
			}
		}
		return mo.None[string]()
	}
}

// bareAnchor is the first link that does not wrap an image. Cards usually
// carry a poster link followed by a text link; the text link is the title.
func bareAnchor(s *goquery.Selection) *goquery.Selection {
	return s.Find("a[href]").FilterFunction(func(_ int, a *goquery.Selection) bool {
		return a.Find("img").Length() == 0 && normalize.Text(a.Text()) != ""
	}).First()
}

// BareAnchorText is the title fallback: text of the first non-image link.
func BareAnchorText(s *goquery.Selection) mo.Option[string] {
	return optional(normalize.Text(bareAnchor(s).Text()))
}

// BareAnchorHref is the link fallback paired with BareAnchorText.
func BareAnchorHref(s *goquery.Selection) mo.Option[string] {
	v, ok := attrValue(bareAnchor(s), "href")
	if !ok {
		return mo.None[string]()
	}
	return mo.Some(v)
}

func attrValue(node *goquery.Selection, attr string) (string, bool) {
	if node.Length() == 0 {
		return "", false
	}
	v, ok := node.Attr(attr)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

func optional(s string) mo.Option[string] {
	if s == "" {
		return mo.None[string]()
	}
	return mo.Some(s)
}

// hasAnyFold reports whether text contains any of the words, ignoring case.
func hasAnyFold(text string, words []string) bool {
	text = strings.ToLower(text)
	for _, w := range words {
		if w != "" && strings.Contains(text, strings.ToLower(w)) {
			return true
		}
	}
	return false
}
