package extract

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/pevans/mediascrape/media"
	"github.com/pevans/mediascrape/scraper"
)

func paginate(t *testing.T, site, page string, fallback, extracted int) media.Pagination {
	t.Helper()

	e := newTestExtractor(t, site)
	p := Paginate(parse(page), e.Profile().BaseURL, e.Profile().Paging, fallback, extracted, nil)
	assertPaginationInvariants(t, p)
	return p
}

func TestPaginate_NumberedWithCurrentMarker(t *testing.T) {
	p := paginate(t, scraper.OtakuDesu, `<div class="pagination"><div class="pagenavix">
		<a class="prev page-numbers" href="/ongoing-anime/page/1/">&laquo; Sebelumnya</a>
		<a class="page-numbers" href="/ongoing-anime/page/1/">1</a>
		<span aria-current="page" class="page-numbers current">2</span>
		<a class="page-numbers" href="/ongoing-anime/page/3/">3</a>
		<a class="page-numbers" href="/ongoing-anime/page/7/">7</a>
		<a class="next page-numbers" href="/ongoing-anime/page/3/">Berikutnya &raquo;</a>
	</div></div>`, 1, 25)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 7, p.TotalPages)
	assert.Equal(t, lo.ToPtr("https://otakudesu.best/ongoing-anime/page/3/"), p.NextURL)
	assert.Equal(t, lo.ToPtr("https://otakudesu.best/ongoing-anime/page/1/"), p.PreviousURL)
	assert.Equal(t, []int{1, 2, 3, 7}, p.PageNumbers)
	assert.Equal(t, 25, p.PerPage)
}

func TestPaginate_ActiveListItemWithoutArrows(t *testing.T) {
	p := paginate(t, scraper.LK21, `<nav class="pagination-wrapper"><ul class="pagination">
		<li><a href="/genre/action/page/1/">1</a></li>
		<li class="active"><a href="/genre/action/page/2/">2</a></li>
		<li><a href="/genre/action/page/3/">3</a></li>
	</ul></nav>`, 1, 24)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, lo.ToPtr("https://tv8.lk21official.cc/genre/action/page/3/"), p.NextURL)
	assert.Equal(t, lo.ToPtr("https://tv8.lk21official.cc/genre/action/page/1/"), p.PreviousURL)
}

func TestPaginate_PageOfTakesPriority(t *testing.T) {
	p := paginate(t, scraper.LK21, `<div class="pagination">
		<span class="naviright">Page 4 of 9</span>
		<span class="current">2</span>
	</div>`, 1, 10)

	assert.Equal(t, 4, p.CurrentPage)
	assert.Equal(t, 9, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrevious)
	assert.Equal(t, lo.ToPtr("https://tv8.lk21official.cc/page/5/"), p.NextURL)
	assert.Equal(t, lo.ToPtr("https://tv8.lk21official.cc/page/3/"), p.PreviousURL)
}

func TestPaginate_PageOfWithoutLinksUsesPageLink(t *testing.T) {
	e := newTestExtractor(t, scraper.LK21)
	link := PathPageLink("https://tv8.lk21official.cc/genre/drama/page/2/", e.Profile().Paging)

	p := Paginate(parse(`<div class="pagination"><span class="naviright">Page 2 of 5</span></div>`),
		e.Profile().BaseURL, e.Profile().Paging, 2, 3, link)
	assertPaginationInvariants(t, p)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 5, p.TotalPages)
	assert.Equal(t, lo.ToPtr("https://tv8.lk21official.cc/genre/drama/page/3/"), p.NextURL)
	assert.Equal(t, lo.ToPtr("https://tv8.lk21official.cc/genre/drama/page/1/"), p.PreviousURL)
}

func TestPaginate_LastPageHasNoNext(t *testing.T) {
	p := paginate(t, scraper.LK21, `<div class="pagination"><span class="naviright">Page 5 of 5</span></div>`, 5, 3)

	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrevious)
	assert.Equal(t, lo.ToPtr("https://tv8.lk21official.cc/page/4/"), p.PreviousURL)
}

func TestPathPageLink(t *testing.T) {
	sel := newTestExtractor(t, scraper.LK21).Profile().Paging

	cases := map[string]string{
		"https://tv8.lk21official.cc/year/2024/page/7/":      "https://tv8.lk21official.cc/year/2024/page/3/",
		"https://tv8.lk21official.cc/latest-movies/":         "https://tv8.lk21official.cc/latest-movies/page/3/",
		"https://tv8.lk21official.cc/search.php?s=ab&page=2": "https://tv8.lk21official.cc/search.php?page=3&s=ab",
		"https://otakudesu.best/ongoing-anime":               "https://otakudesu.best/ongoing-anime/page/3/",
	}
	for in, want := range cases {
		assert.Equal(t, want, PathPageLink(in, sel)(3), in)
	}
	assert.Empty(t, PathPageLink("not a url", sel)(3))
}

func TestPaginate_PageOfBuildsNeighbourFromPattern(t *testing.T) {
	p := paginate(t, scraper.LK21, `<div class="pagination">
		<span class="naviright">Page 1 of 3</span>
		<a href="/year/2024/page/2/">2</a>
	</div>`, 1, 10)

	assert.Equal(t, 1, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, lo.ToPtr("https://tv8.lk21official.cc/year/2024/page/2/"), p.NextURL)
	assert.Nil(t, p.PreviousURL)
}

func TestPaginate_RelLinksOnly(t *testing.T) {
	p := paginate(t, scraper.LK21, `<html><head>
		<link rel="next" href="/latest-movies/page/3/">
		<link rel="prev" href="/latest-movies/page/1/">
	</head><body></body></html>`, 2, 0)

	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 2, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrevious)
	assert.Equal(t, lo.ToPtr("https://tv8.lk21official.cc/latest-movies/page/3/"), p.NextURL)
	assert.Equal(t, []int{}, p.PageNumbers)
	assert.Equal(t, media.DefaultPerPage, p.PerPage)
}

func TestPaginate_None(t *testing.T) {
	p := paginate(t, scraper.LK21, `<html><body><p>single page</p></body></html>`, 3, 12)

	want := media.NoPagination(3)
	want.PerPage = 12
	assert.Equal(t, want, p)
}

func TestPaginate_NoneWithoutItems(t *testing.T) {
	p := paginate(t, scraper.LK21, `<p>empty</p>`, 0, 0)

	assert.Equal(t, media.NoPagination(1), p)
}

func TestPaginate_InvariantsAcrossFixtures(t *testing.T) {
	fixtures := []string{
		latestMoviesPage,
		`<div class="pagination"><span class="naviright">Page 9 of 3</span></div>`,
		`<div class="pagination"><a href="/page/0/">0</a><span class="current">x</span></div>`,
		`<ul class="pagination"><li><a href="/page/5/">5</a></li><li><a href="/page/2/">2</a></li><li><a href="/page/5/">5</a></li></ul>`,
		`<head><link rel="next" href=""></head>`,
	}

	for _, fixture := range fixtures {
		for _, fallback := range []int{-1, 1, 4} {
			paginate(t, scraper.LK21, fixture, fallback, 7)
		}
	}
}
