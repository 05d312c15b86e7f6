// Package scraper holds the per-site selector tables that drive extraction.
// Sites differ only in class names, label keywords and date formats, so each
// one is described by a Profile instead of its own scraper implementation.
package scraper

// Site families. Movie and anime entities stay distinct; a profile declares
// which family its pages belong to.
const (
	FamilyMovie = "movie"
	FamilyAnime = "anime"
)

// Profile defines how to extract entities from one content site.
type Profile struct {
	Name      string                `yaml:"name" json:"name"`
	BaseURL   string                `yaml:"base_url" json:"base_url"`
	Family    string                `yaml:"family" json:"family"`
	Layouts   map[string]ListLayout `yaml:"layouts" json:"layouts"`
	Home      HomeConfig            `yaml:"home" json:"home"`
	Paging    PaginationSelectors   `yaml:"pagination" json:"pagination"`
	Detail    DetailSelectors       `yaml:"detail" json:"detail"`
	Series    SeriesSelectors       `yaml:"series" json:"series"`
	Episode   EpisodeSelectors      `yaml:"episode" json:"episode"`
	Anime     AnimeSelectors        `yaml:"anime" json:"anime"`
	Templates map[string]string     `yaml:"templates" json:"templates"`
}

// Layout returns the named list layout and whether the profile defines it.
func (p Profile) Layout(name string) (ListLayout, bool) {
	l, ok := p.Layouts[name]
	return l, ok
}

// ListLayout describes a grid of listing entries: where the grid is, what
// one entry looks like, and how to read its fields.
type ListLayout struct {
	// Containers are tried in order; the first one present is the grid.
	Containers []string `yaml:"containers" json:"containers"`
	// Item selects one entry inside the grid.
	Item string `yaml:"item" json:"item"`
	// Direct restricts Item to direct children of the grid.
	Direct bool `yaml:"direct,omitempty" json:"direct,omitempty"`
	// Skip drops entries that contain a match (e.g. an embedded pager).
	Skip   string           `yaml:"skip,omitempty" json:"skip,omitempty"`
	Fields ListingSelectors `yaml:"fields" json:"fields"`
	// Status is a fixed status for every entry of this layout, e.g.
	// "Ongoing" for the ongoing-anime grid.
	Status string `yaml:"status,omitempty" json:"status,omitempty"`
}

// ListingSelectors holds an ordered selector chain for every listing field.
// Each chain is tried front to back and stops at the first non-empty value.
type ListingSelectors struct {
	Title         []string `yaml:"title" json:"title"`
	Link          []string `yaml:"link" json:"link"`
	Thumbnail     []string `yaml:"thumbnail" json:"thumbnail"`
	Year          []string `yaml:"year,omitempty" json:"year,omitempty"`
	Rating        []string `yaml:"rating,omitempty" json:"rating,omitempty"`
	Duration      []string `yaml:"duration,omitempty" json:"duration,omitempty"`
	Quality       []string `yaml:"quality,omitempty" json:"quality,omitempty"`
	GenreMeta     []string `yaml:"genre_meta,omitempty" json:"genre_meta,omitempty"`
	GenreLinks    []string `yaml:"genre_links,omitempty" json:"genre_links,omitempty"`
	ReleaseDate   []string `yaml:"release_date,omitempty" json:"release_date,omitempty"`
	TotalEpisodes []string `yaml:"total_episodes,omitempty" json:"total_episodes,omitempty"`
	ReleasedDay   []string `yaml:"released_day,omitempty" json:"released_day,omitempty"`

	// GenreLabel marks a release-date node that actually holds a genre
	// list ("Genres: Action, Comedy").
	GenreLabel string `yaml:"genre_label,omitempty" json:"genre_label,omitempty"`
	// EpisodePattern, when set, narrows TotalEpisodes to its first capture
	// group ("Episode 12" becomes "12").
	EpisodePattern string `yaml:"episode_pattern,omitempty" json:"episode_pattern,omitempty"`
}

// HomeConfig describes the named carousels of a home page and the trailing
// grid of all recent items.
type HomeConfig struct {
	Layout    string        `yaml:"layout" json:"layout"`
	Slider    string        `yaml:"slider" json:"slider"`
	LabelAttr string        `yaml:"label_attr" json:"label_attr"`
	Headings  string        `yaml:"headings" json:"headings"`
	Wrapper   string        `yaml:"wrapper" json:"wrapper"`
	Header    string        `yaml:"header" json:"header"`
	ViewAll   string        `yaml:"view_all" json:"view_all"`
	Sections  []HomeSection `yaml:"sections" json:"sections"`
	Grid      GridSection   `yaml:"grid" json:"grid"`
}

// HomeSection is one carousel, reported under Key and located by Label.
type HomeSection struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
	// FallbackGrids are grid headings scraped when the carousel is empty.
	FallbackGrids []string `yaml:"fallback_grids,omitempty" json:"fallback_grids,omitempty"`
}

// GridSection is the trailing "all items" grid, located by heading text.
type GridSection struct {
	Key         string   `yaml:"key" json:"key"`
	Headings    []string `yaml:"headings" json:"headings"`
	ViewAllPath string   `yaml:"view_all_path,omitempty" json:"view_all_path,omitempty"`
}

// PaginationSelectors describes every pagination idiom a site might use.
type PaginationSelectors struct {
	Containers []string `yaml:"containers" json:"containers"`
	// PageOf are nodes holding "Page X of Y" text.
	PageOf  []string `yaml:"page_of" json:"page_of"`
	Current []string `yaml:"current" json:"current"`
	Next    []string `yaml:"next" json:"next"`
	Prev    []string `yaml:"prev" json:"prev"`
	// NextText and PrevText match arrow anchors such as "»".
	NextText []string `yaml:"next_text" json:"next_text"`
	PrevText []string `yaml:"prev_text" json:"prev_text"`
	// PageHref captures the page number from a pager link.
	PageHref string `yaml:"page_href" json:"page_href"`
}

// DetailSelectors describes a single-item page.
type DetailSelectors struct {
	Title         []string     `yaml:"title" json:"title"`
	TitlePrefixes []string     `yaml:"title_prefixes" json:"title_prefixes"`
	TitleSuffixes []string     `yaml:"title_suffixes" json:"title_suffixes"`
	Synopsis      []string     `yaml:"synopsis" json:"synopsis"`
	SynopsisAttr  string       `yaml:"synopsis_attr" json:"synopsis_attr"`
	Thumbnail     []string     `yaml:"thumbnail" json:"thumbnail"`
	InfoTag       string       `yaml:"info_tag" json:"info_tag"`
	InfoOrder     []string     `yaml:"info_order" json:"info_order"`
	TagList       string       `yaml:"tag_list" json:"tag_list"`
	GenreHref     string       `yaml:"genre_href" json:"genre_href"`
	CountryHref   string       `yaml:"country_href" json:"country_href"`
	MetaBlock     string       `yaml:"meta_block" json:"meta_block"`
	Labels        DetailLabels `yaml:"labels" json:"labels"`
	Trailer       []string     `yaml:"trailer" json:"trailer"`
	PlayerList    string       `yaml:"player_list" json:"player_list"`
	SimilarLayout string       `yaml:"similar_layout" json:"similar_layout"`
	DateLayouts   []string     `yaml:"date_layouts" json:"date_layouts"`
}

// DetailLabels are the keywords that identify paragraphs of the metadata
// block. Any keyword of a field matches.
type DetailLabels struct {
	Directors []string `yaml:"directors" json:"directors"`
	Cast      []string `yaml:"cast" json:"cast"`
	Countries []string `yaml:"countries" json:"countries"`
	Votes     []string `yaml:"votes" json:"votes"`
	Release   []string `yaml:"release" json:"release"`
	Updated   []string `yaml:"updated" json:"updated"`
}

// SeriesSelectors describes how seasons and episodes are published.
type SeriesSelectors struct {
	SeasonData   string `yaml:"season_data" json:"season_data"`
	WatchHistory string `yaml:"watch_history" json:"watch_history"`
	EpisodeHref  string `yaml:"episode_href" json:"episode_href"`
	SeasonSelect string `yaml:"season_select" json:"season_select"`
	EpisodeList  string `yaml:"episode_list" json:"episode_list"`
	StatusLabel  string `yaml:"status_label" json:"status_label"`
}

// EpisodeSelectors describes a single-episode page.
type EpisodeSelectors struct {
	Title          []string `yaml:"title" json:"title"`
	Player         []string `yaml:"player" json:"player"`
	PlayerList     string   `yaml:"player_list" json:"player_list"`
	Trailer        []string `yaml:"trailer" json:"trailer"`
	Meta           string   `yaml:"meta" json:"meta"`
	UploaderIcon   string   `yaml:"uploader_icon" json:"uploader_icon"`
	TimeIcon       string   `yaml:"time_icon" json:"time_icon"`
	Nav            string   `yaml:"nav" json:"nav"`
	PreviousWords  []string `yaml:"previous_words" json:"previous_words"`
	AllWords       []string `yaml:"all_words" json:"all_words"`
	Picklist       string   `yaml:"picklist" json:"picklist"`
	Downloads      string   `yaml:"downloads" json:"downloads"`
	DownloadButton string   `yaml:"download_button" json:"download_button"`
}

// AnimeSelectors describes the anime detail page and the genre index.
type AnimeSelectors struct {
	Title        []string    `yaml:"title" json:"title"`
	Thumbnail    []string    `yaml:"thumbnail" json:"thumbnail"`
	Info         string      `yaml:"info" json:"info"`
	Labels       AnimeLabels `yaml:"labels" json:"labels"`
	EpisodeLists string      `yaml:"episode_lists" json:"episode_lists"`
	EpisodeDate  string      `yaml:"episode_date" json:"episode_date"`
	GenreHref    string      `yaml:"genre_href" json:"genre_href"`
}

// AnimeLabels are the keywords of the anime info block, checked in field
// order.
type AnimeLabels struct {
	Japanese      []string `yaml:"japanese" json:"japanese"`
	Score         []string `yaml:"score" json:"score"`
	Producer      []string `yaml:"producer" json:"producer"`
	Type          []string `yaml:"type" json:"type"`
	Status        []string `yaml:"status" json:"status"`
	TotalEpisodes []string `yaml:"total_episodes" json:"total_episodes"`
	Duration      []string `yaml:"duration" json:"duration"`
	ReleaseDate   []string `yaml:"release_date" json:"release_date"`
	Studio        []string `yaml:"studio" json:"studio"`
	Genre         []string `yaml:"genre" json:"genre"`
}
