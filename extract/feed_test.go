package extract

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pevans/mediascrape/media"
	"github.com/pevans/mediascrape/scraper"
)

const movieFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>LK21</title>
  <link>https://tv8.lk21official.cc</link>
  <description>Latest uploads</description>
  <item>
    <title>The Wrecking Crew (2026)</title>
    <link>https://tv8.lk21official.cc/the-wrecking-crew-2026/</link>
    <pubDate>Wed, 28 Jan 2026 10:00:00 +0000</pubDate>
    <category>Action</category>
    <category>Comedy</category>
    <description><![CDATA[<p>Two <b>brothers</b>.</p>]]></description>
    <enclosure url="https://img.test/wc.jpg" type="image/jpeg" length="0"/>
  </item>
  <item>
    <title></title>
    <link>https://tv8.lk21official.cc/untitled/</link>
  </item>
</channel>
</rss>`

func TestFeed(t *testing.T) {
	e := newTestExtractor(t, scraper.LK21)

	items, err := e.Feed(movieFeed)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assertListingsValid(t, items)

	l := items[0]
	assert.Equal(t, "The Wrecking Crew (2026)", l.Title)
	assert.Equal(t, "https://tv8.lk21official.cc/the-wrecking-crew-2026/", l.URL)
	assert.Equal(t, lo.ToPtr("2026-01-28T10:00:00Z"), l.ReleaseDate)
	assert.Equal(t, lo.ToPtr(2026), l.Year)
	assert.Equal(t, media.GenreList{{Name: "Action"}, {Name: "Comedy"}}, l.Genre)
	assert.Equal(t, lo.ToPtr("Two brothers."), l.Synopsis)
	assert.Equal(t, lo.ToPtr("https://img.test/wc.jpg"), l.Thumbnail)
}

func TestFeed_NotAFeed(t *testing.T) {
	e := newTestExtractor(t, scraper.LK21)

	_, err := e.Feed("<html><body>nope</body></html>")
	assert.Error(t, err)
}
