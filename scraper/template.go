package scraper

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/pevans/mediascrape/normalize"
)

// Vars fills the placeholders of a URL template.
type Vars struct {
	Slug  string
	Query string
	Year  string
}

// URL expands the template registered for op and resolves it against the
// profile's base URL. Pages above 1 use the "<op>_paged" template when the
// profile has one. The query is escaped; other values are used as given.
func (p Profile) URL(op string, page int, vars Vars) (string, error) {
	tmpl, ok := "", false
	if page > 1 {
		tmpl, ok = p.Templates[op+"_paged"]
	}
	if !ok {
		tmpl, ok = p.Templates[op]
	}
	if !ok {
		return "", fmt.Errorf("profile %q has no %q template", p.Name, op)
	}

	if page < 1 {
		page = 1
	}

	expanded := strings.NewReplacer(
		"{slug}", strings.Trim(vars.Slug, "/"),
		"{query}", url.QueryEscape(vars.Query),
		"{year}", vars.Year,
		"{page}", strconv.Itoa(page),
	).Replace(tmpl)

	resolved, ok := normalize.Resolve(p.BaseURL, expanded).Get()
	if !ok {
		return "", fmt.Errorf("profile %q: cannot resolve %q", p.Name, expanded)
	}
	return resolved, nil
}

// HasTemplate reports whether the profile can build URLs for op.
func (p Profile) HasTemplate(op string) bool {
	_, ok := p.Templates[op]
	return ok
}
