package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samber/mo"
)

// ISOLayout is the UTC timestamp format emitted by Date.
const ISOLayout = "2006-01-02T15:04:05Z"

// DefaultDateLayouts are the date formats tried when a caller supplies none.
var DefaultDateLayouts = []string{
	"2 Jan 2006",
	"2 Jan 2006 15:04:05",
	"Jan 2, 2006",
	"2 January 2006",
	"January 2, 2006",
	"2006-01-02",
}

var (
	clockPattern = regexp.MustCompile(`^\d+(:\d+){1,2}$`)
	hoursToken   = regexp.MustCompile(`(?i)(\d+)\s*h`)
	minutesToken = regexp.MustCompile(`(?i)(\d+)\s*m`)
	yearPattern  = regexp.MustCompile(`\b(\d{4})\b`)
	titleYear    = regexp.MustCompile(`\((\d{4})\)`)
)

// localMonths maps Indonesian month names to the English names time.Parse
// understands. Longer names come first so "Agustus" is not rewritten as
// "Augustus".
var localMonths = strings.NewReplacer(
	"Januari", "January",
	"Februari", "February",
	"Maret", "March",
	"Juni", "June",
	"Juli", "July",
	"Agustus", "August",
	"Oktober", "October",
	"Desember", "December",
	"Mei", "May",
	"Agu", "Aug",
	"Okt", "Oct",
	"Des", "Dec",
)

// Text collapses runs of whitespace into single spaces and trims the ends.
func Text(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Duration parses "HH:MM:SS", "MM:SS", or free text with "<n>h" and/or
// "<n>m" tokens ("2h 4m", "24 min") into seconds.
func Duration(text string) mo.Option[int] {
	text = strings.TrimSpace(text)
	if text == "" {
		return mo.None[int]()
	}

	if clockPattern.MatchString(text) {
		return clockDuration(text)
	}

	total := 0
	if m := hoursToken.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		total += h * 3600
	}
	if m := minutesToken.FindStringSubmatch(text); m != nil {
		mins, _ := strconv.Atoi(m[1])
		total += mins * 60
	}
	if total <= 0 {
		return mo.None[int]()
	}
	return mo.Some(total)
}

func clockDuration(text string) mo.Option[int] {
	parts := strings.Split(text, ":")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return mo.None[int]()
		}
		values = append(values, n)
	}

	if len(values) == 2 {
		return mo.Some(values[0]*60 + values[1])
	}
	return mo.Some(values[0]*3600 + values[1]*60 + values[2])
}

// Date parses text with the first matching layout and returns it as a UTC
// ISO-8601 timestamp with ok set. When no layout matches, the raw text is
// passed through unchanged and ok is false; callers must not assume ISO
// output without checking ok.
func Date(text string, layouts ...string) (string, bool) {
	raw := text
	text = Text(text)
	if text == "" {
		return raw, false
	}
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}

	candidates := []string{text}
	if translated := localMonths.Replace(text); translated != text {
		candidates = append(candidates, translated)
	}

	for _, candidate := range candidates {
		for _, layout := range layouts {
			t, err := time.Parse(layout, candidate)
			if err == nil {
				return t.UTC().Format(ISOLayout), true
			}
		}
	}
	return raw, false
}

// Int parses an integer, ignoring surrounding whitespace and thousands
// separators.
func Int(text string) mo.Option[int] {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if text == "" {
		return mo.None[int]()
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return mo.None[int]()
	}
	return mo.Some(n)
}

// Float parses a decimal number such as a rating.
func Float(text string) mo.Option[float64] {
	text = strings.TrimSpace(text)
	if text == "" {
		return mo.None[float64]()
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return mo.None[float64]()
	}
	return mo.Some(f)
}

// Year finds the first four-digit year in text.
func Year(text string) mo.Option[int] {
	m := yearPattern.FindStringSubmatch(text)
	if m == nil {
		return mo.None[int]()
	}
	return Int(m[1])
}

// TitleYear finds a "(YYYY)" year embedded in a title.
func TitleYear(title string) mo.Option[int] {
	m := titleYear.FindStringSubmatch(title)
	if m == nil {
		return mo.None[int]()
	}
	return Int(m[1])
}
