package extract

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
)

func fragment(t *testing.T, markup string) *goquery.Selection {
	t.Helper()
	return parse(markup).Find("body")
}

func TestFirstOf_StopsAtFirstPresent(t *testing.T) {
	calls := 0
	never := func(*goquery.Selection) mo.Option[string] {
		calls++
		return mo.Some("late")
	}

	s := FirstOf(TextOf("h3"), TextOf("h2"), never)
	got := s(fragment(t, `<h2>Second</h2>`))

	assert.Equal(t, "Second", got.OrEmpty())
	assert.Equal(t, 0, calls)
}

func TestFirstOf_AllAbsent(t *testing.T) {
	s := FirstOf(TextOf("h3"), nil, AttrOf("href", "a"))

	assert.True(t, s(fragment(t, `<p>nothing</p>`)).IsAbsent())
}

func TestTextOf_SkipsEmptyMatches(t *testing.T) {
	s := TextOf("span.empty", "span.full")

	got := s(fragment(t, `<span class="empty">  </span><span class="full"> Hello
		World </span>`))
	assert.Equal(t, "Hello World", got.OrEmpty())
}

func TestAttrOf(t *testing.T) {
	s := AttrOf("href", "a.missing", "a")

	assert.Equal(t, "/x", s(fragment(t, `<a href=" /x ">x</a>`)).OrEmpty())
	assert.True(t, s(fragment(t, `<a href="">x</a>`)).IsAbsent())
}

func TestThen_ParseFailureIsAbsent(t *testing.T) {
	s := Then(TextOf("span"), func(v string) mo.Option[int] {
		return mo.None[int]()
	})

	assert.True(t, s(fragment(t, `<span>abc</span>`)).IsAbsent())
}

func TestImageOf_PrefersSrcset(t *testing.T) {
	s := ImageOf("img")

	got := s(fragment(t, `<img src="/small.jpg" srcset="/a-300.jpg 300w, /a-600.jpg 600w">`))
	assert.Equal(t, "/a-300.jpg", got.OrEmpty())

	got = s(fragment(t, `<img src="/placeholder.gif" data-src="/lazy.jpg">`))
	assert.Equal(t, "/lazy.jpg", got.OrEmpty())

	got = s(fragment(t, `<img src="/plain.jpg">`))
	assert.Equal(t, "/plain.jpg", got.OrEmpty())
}

func TestBareAnchor_SkipsImageLinks(t *testing.T) {
	body := fragment(t, `<a href="/poster"><img src="/p.jpg"></a><a href="/title">The Title</a>`)

	assert.Equal(t, "The Title", BareAnchorText(body).OrEmpty())
	assert.Equal(t, "/title", BareAnchorHref(body).OrEmpty())
}

func TestOwnText_DropsIcons(t *testing.T) {
	s := OwnText("i", "div.day")

	got := s(fragment(t, `<div class="day"><i class="fa fa-calendar">cal</i> Sabtu</div>`))
	assert.Equal(t, "Sabtu", got.OrEmpty())
}

func TestParse_NeverNil(t *testing.T) {
	doc := parse("<<<not html")

	assert.NotNil(t, doc)
	assert.Equal(t, 0, doc.Find("article").Length())
}
