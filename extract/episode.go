package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/pevans/mediascrape/media"
	"github.com/pevans/mediascrape/normalize"
)

var episodeNumber = regexp.MustCompile(`(?i)Episode\s*(\d+(?:\.\d+)?)`)

// Episode scrapes the page of a single episode: its player, uploader and
// time, navigation links, sibling picklist, and download table. The next
// episode URL is never set; sites link forward only through the picklist.
func (e *Extractor) Episode(page, pageURL string) media.EpisodePage {
	doc := parse(page)
	root := doc.Selection
	sel := e.profile.Episode

	ep := media.EpisodePage{
		Title:     TextOf(sel.Title...)(root).OrEmpty(),
		URL:       pageURL,
		Players:   e.players(root, sel.PlayerList),
		Siblings:  []media.TaggedRef{},
		Downloads: []media.Download{},
	}

	number := episodeNumber.FindStringSubmatch(ep.Title)
	if number == nil {
		number = episodeNumber.FindStringSubmatch(doc.Find("title").First().Text())
	}
	if number != nil {
		ep.EpisodeNumber = lo.ToPtr(number[1])
	}

	ep.PlayerURL = Then(AttrOf("src", sel.Player...), e.resolve)(root).ToPointer()
	if ep.PlayerURL == nil && len(ep.Players) > 0 {
		ep.PlayerURL = lo.ToPtr(ep.Players[0].URL)
	}
	ep.TrailerURL = Then(AttrOf("href", sel.Trailer...), e.resolve)(root).ToPointer()
	if sel.DownloadButton != "" {
		ep.DownloadURL = Then(AttrOf("href", sel.DownloadButton), e.resolve)(root).ToPointer()
	}

	if sel.Meta != "" {
		meta := root.Find(sel.Meta).First()
		ep.Uploader = iconLabel(meta, sel.UploaderIcon).ToPointer()
		ep.ReleaseTime = iconLabel(meta, sel.TimeIcon).ToPointer()
	}

	if sel.Nav != "" {
		root.Find(sel.Nav).Each(func(_ int, a *goquery.Selection) {
			text := normalize.Text(a.Text())
			switch {
			case ep.PreviousURL == nil && hasAnyFold(text, sel.PreviousWords):
				ep.PreviousURL = e.resolve(a.AttrOr("href", "")).ToPointer()
			case ep.AllEpisodesURL == nil && hasAnyFold(text, sel.AllWords):
				ep.AllEpisodesURL = e.resolve(a.AttrOr("href", "")).ToPointer()
			}
		})
	}

	if sel.Picklist != "" {
		// The first option is the "choose an episode" placeholder.
		root.Find(sel.Picklist).Each(func(i int, opt *goquery.Selection) {
			if i == 0 {
				return
			}
			name := normalize.Text(opt.Text())
			u, ok := e.resolve(opt.AttrOr("value", "")).Get()
			if name == "" || !ok {
				return
			}
			ep.Siblings = append(ep.Siblings, media.TaggedRef{Name: name, URL: &u})
		})
	}

	if sel.Downloads != "" {
		root.Find(sel.Downloads).Each(func(_ int, group *goquery.Selection) {
			ep.Downloads = append(ep.Downloads, e.downloadGroup(group)...)
		})
	}

	return ep
}

// downloadGroup reads one download table. The group heading ("MP4 720p")
// gives the container format and quality; each row holds named links and
// an optional size.
func (e *Extractor) downloadGroup(group *goquery.Selection) []media.Download {
	heading := group.Find("strong").First()
	if heading.Length() == 0 {
		return nil
	}

	parts := strings.Fields(heading.Text())
	var format, quality *string
	if len(parts) > 0 {
		format = lo.ToPtr(parts[0])
	}
	if len(parts) > 1 {
		quality = lo.ToPtr(parts[1])
	}

	var downloads []media.Download
	group.Find("li").Each(func(_ int, row *goquery.Selection) {
		size := optional(normalize.Text(row.Find("i").First().Text())).ToPointer()

		row.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
			href := strings.TrimSpace(a.AttrOr("href", ""))
			name := normalize.Text(a.Text())
			if href == "" || name == "" || strings.HasPrefix(href, "#") {
				return
			}
			u, ok := e.resolve(href).Get()
			if !ok {
				return
			}
			if quality != nil {
				name += " [" + *quality + "]"
			}
			downloads = append(downloads, media.Download{
				Name:    name,
				URL:     u,
				Size:    size,
				Quality: quality,
				Format:  format,
			})
		})
	})
	return downloads
}

// iconLabel reads the label that follows an icon, as in
// <i class="fa fa-user"></i><span>uploader</span>.
func iconLabel(scope *goquery.Selection, icon string) mo.Option[string] {
	if icon == "" {
		return mo.None[string]()
	}
	label := scope.Find(icon).First().NextAllFiltered("span").First()
	return optional(normalize.Text(label.Text()))
}
