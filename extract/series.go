package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/pevans/mediascrape/media"
	"github.com/pevans/mediascrape/normalize"
)

var episodeInText = regexp.MustCompile(`(?i)Episode\s+(\d+)`)

// seasonMap holds episode URLs by season and episode number.
type seasonMap map[int]map[int]string

func (m seasonMap) add(season, episode int, url string) {
	if m[season] == nil {
		m[season] = map[int]string{}
	}
	m[season][episode] = url
}

// Series scrapes a series page: the detail record plus its season and
// episode tree. Seasons are discovered from, in order, the embedded season
// JSON, "season-N-episode-M" links, and the season select with its episode
// list.
func (e *Extractor) Series(page, pageURL string) media.Series {
	doc := parse(page)
	s := media.Series{
		Detail:  e.detail(doc, pageURL),
		Seasons: []media.Season{},
	}
	s.Status = e.status(doc).ToPointer()

	seasons := e.seasonData(doc)
	if len(seasons) == 0 {
		seasons = e.seasonLinks(doc)
	}

	if len(seasons) == 0 {
		e.seasonSelect(doc, &s)
		return s
	}

	numbers := lo.Keys(seasons)
	slices.Sort(numbers)
	total := numbers[len(numbers)-1]

	current, ok := e.watchedSeason(doc)
	if !ok {
		current = total
	}
	s.CurrentSeason = current
	s.SeasonName = lo.ToPtr(fmt.Sprintf("Season %d", current))

	for _, n := range numbers {
		episodes := seasons[n]
		order := lo.Keys(episodes)
		slices.Sort(order)

		refs := make([]media.EpisodeRef, 0, len(order))
		for _, ep := range order {
			refs = append(refs, media.EpisodeRef{Number: ep, URL: episodes[ep]})
		}
		s.Seasons = append(s.Seasons, media.Season{Number: n, Total: total, Episodes: refs})
	}
	return s
}

// status reads a "Status: Ongoing" line anywhere on the page.
func (e *Extractor) status(doc *goquery.Document) mo.Option[string] {
	if e.statusLabel == nil {
		return optional("")
	}

	// The label's own text node decides, so the value may sit in a child:
	// <span>Status: <a>Ongoing</a></span>.
	node := doc.Find("body *").Not("script, style").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return e.statusLabel.MatchString(directText(s))
	}).First()
	if node.Length() == 0 {
		return optional("")
	}

	value := e.afterStatus(node.Text())
	if value == "" {
		// <p><b>Status:</b> Ongoing</p>
		value = e.afterStatus(node.Parent().Text())
	}
	return optional(value)
}

func (e *Extractor) afterStatus(text string) string {
	text = normalize.Text(text)
	loc := e.statusLabel.FindStringIndex(text)
	if loc == nil {
		return ""
	}
	return strings.TrimSpace(text[loc[1]:])
}

// seasonData decodes the embedded {"<season>": [{"episode_no", "slug"}]}
// blob. Malformed JSON or entries are skipped.
func (e *Extractor) seasonData(doc *goquery.Document) seasonMap {
	seasons := seasonMap{}
	sel := e.profile.Series.SeasonData
	if sel == "" {
		return seasons
	}

	raw := strings.TrimSpace(doc.Find(sel).First().Text())
	if raw == "" {
		return seasons
	}

	var data map[string][]map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return seasons
	}

	for key, episodes := range data {
		season, ok := normalize.Int(key).Get()
		if !ok {
			continue
		}
		for _, ep := range episodes {
			raw := ep["episode_no"]
			if raw == nil {
				raw = ep["episode"]
			}
			number, ok := jsonInt(raw)
			if !ok {
				continue
			}
			slug, _ := ep["slug"].(string)
			if strings.TrimSpace(slug) == "" {
				continue
			}
			if u, ok := e.resolve("/" + strings.TrimLeft(slug, "/")).Get(); ok {
				seasons.add(season, number, u)
			}
		}
	}
	return seasons
}

// watchedSeason reads current_season from the embedded watch history.
func (e *Extractor) watchedSeason(doc *goquery.Document) (int, bool) {
	sel := e.profile.Series.WatchHistory
	if sel == "" {
		return 0, false
	}
	raw := strings.TrimSpace(doc.Find(sel).First().Text())
	if raw == "" {
		return 0, false
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return 0, false
	}
	return jsonInt(data["current_season"])
}

// seasonLinks infers the tree from anchors like ".../season-2-episode-5".
func (e *Extractor) seasonLinks(doc *goquery.Document) seasonMap {
	seasons := seasonMap{}
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		m := e.episodeHref.FindStringSubmatch(href)
		if m == nil {
			return
		}
		season, err1 := strconv.Atoi(m[1])
		episode, err2 := strconv.Atoi(m[2])
		if err1 != nil || err2 != nil {
			return
		}
		if u, ok := e.resolve(href).Get(); ok {
			seasons.add(season, episode, u)
		}
	})
	return seasons
}

// seasonSelect is the last resort: a season dropdown plus the episode list
// of the season on screen. Without a dropdown the page is season 1 of 1.
func (e *Extractor) seasonSelect(doc *goquery.Document, s *media.Series) {
	sel := e.profile.Series
	current, total := 1, 1

	if sel.SeasonSelect != "" {
		dropdown := doc.Find(sel.SeasonSelect).First()
		if options := dropdown.Find("option"); options.Length() > 0 {
			total = options.Length()
		}
		selected := dropdown.Find("option[selected]").First()
		if selected.Length() > 0 {
			if n, ok := normalize.Int(selected.AttrOr("value", "")).Get(); ok && n > 0 {
				current = n
				s.SeasonName = optional(normalize.Text(selected.Text())).ToPointer()
			}
		}
	}

	episodes := []media.EpisodeRef{}
	if sel.EpisodeList != "" {
		doc.Find(sel.EpisodeList).Each(func(_ int, li *goquery.Selection) {
			a := li.Find("a[href]").First()
			u, ok := e.resolve(a.AttrOr("href", "")).Get()
			if !ok {
				return
			}
			number := 0
			if m := episodeInText.FindStringSubmatch(a.Text()); m != nil {
				number, _ = strconv.Atoi(m[1])
			}
			episodes = append(episodes, media.EpisodeRef{Number: number, URL: u})
		})
	}

	s.CurrentSeason = current
	s.Seasons = append(s.Seasons, media.Season{
		Number:   current,
		Total:    max(total, current),
		Episodes: episodes,
	})
}

// jsonInt reads a number that may be encoded as a JSON number or string.
func jsonInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), n == float64(int(n))
	case string:
		return normalize.Int(n).Get()
	default:
		return 0, false
	}
}
