package scraper

// Layout names shared by the built-in profiles.
const (
	LayoutGrid    = "grid"
	LayoutSimilar = "similar"
	LayoutArchive = "archive"
	LayoutOngoing = "ongoing"
	LayoutGenre   = "genre"
)

// Names of the built-in profiles.
const (
	LK21        = "lk21"
	NontonDrama = "nontondrama"
	OtakuDesu   = "otakudesu"
)

// articleFields reads the poster cards used by the movie-family sites.
var articleFields = ListingSelectors{
	Title:     []string{"h3.poster-title", "span.video-title"},
	Link:      []string{"a[itemprop=url]", "a[href]"},
	Thumbnail: []string{"img[itemprop=image]", "img"},
	Year:      []string{"span.year", "span.video-year"},
	Rating:    []string{"span[itemprop=ratingValue]"},
	Duration:  []string{"span.duration"},
	Quality:   []string{"span.label"},
	GenreMeta: []string{"meta[itemprop=genre]"},
}

var moviePagination = PaginationSelectors{
	Containers: []string{"div.pagination", "nav.pagination-wrapper ul.pagination", "ul.pagination"},
	PageOf:     []string{"span.naviright", "span.pages"},
	Current:    []string{"span.current", "[aria-current=page]", "li.active a", "li.active span"},
	Next:       []string{"a.next", "a[rel=next]"},
	Prev:       []string{"a.prev", "a[rel=prev]"},
	NextText:   []string{"»", "Next", "Selanjutnya"},
	PrevText:   []string{"«", "Prev", "Previous", "Sebelumnya"},
	PageHref:   `/page/(\d+)`,
}

var movieDetail = DetailSelectors{
	Title:         []string{"div.movie-info h1", "h1"},
	TitlePrefixes: []string{"Nonton ", "Watch "},
	TitleSuffixes: []string{" Sub Indo di Lk21", " Sub Indo di Nontondrama", " Sub Indo"},
	Synopsis:      []string{"div.synopsis"},
	SynopsisAttr:  "data-full",
	Thumbnail:     []string{"div.detail img[itemprop=image]", "div.detail img", "meta[property='og:image']"},
	InfoTag:       "div.info-tag",
	InfoOrder:     []string{"rating", "quality", "resolution", "duration"},
	TagList:       "div.tag-list",
	GenreHref:     "/genre/",
	CountryHref:   "/country/",
	MetaBlock:     "div.detail",
	Labels: DetailLabels{
		Directors: []string{"Sutradara:", "Director:"},
		Cast:      []string{"Bintang Film:", "Stars:", "Cast:"},
		Countries: []string{"Negara:", "Country:"},
		Votes:     []string{"Votes:"},
		Release:   []string{"Release:", "Rilis:"},
		Updated:   []string{"Updated:", "Diperbarui:"},
	},
	Trailer:       []string{"a.yt-lightbox"},
	PlayerList:    "ul#player-list li a",
	SimilarLayout: LayoutSimilar,
	DateLayouts:   []string{"2 Jan 2006", "2 Jan 2006 15:04:05"},
}

var movieSeries = SeriesSelectors{
	SeasonData:   "#season-data",
	WatchHistory: "#watch-history-data",
	EpisodeHref:  `(?i)season-(\d+)-episode-(\d+)`,
	SeasonSelect: "select.season-select",
	EpisodeList:  "ul.episode-list li",
	StatusLabel:  "Status",
}

var movieEpisode = EpisodeSelectors{
	Title:          []string{"div.movie-info h1", "h1", "title"},
	PlayerList:     "ul#player-list li a",
	Trailer:        []string{"a.yt-lightbox"},
	DownloadButton: "a.btn-download",
}

func movieLayouts() map[string]ListLayout {
	return map[string]ListLayout{
		LayoutGrid: {
			Containers: []string{"div.gallery-grid"},
			Item:       "article",
			Fields:     articleFields,
		},
		LayoutSimilar: {
			Containers: []string{"div.related-content ul.video-list"},
			Item:       "li",
			Fields:     articleFields,
		},
	}
}

func movieHome(sections []HomeSection, gridHeadings []string) HomeConfig {
	return HomeConfig{
		Layout:    LayoutGrid,
		Slider:    "div.slider-wrapper",
		LabelAttr: "aria-label",
		Headings:  "h2, h3",
		Wrapper:   "section",
		Header:    "div.header",
		ViewAll:   "SEMUA",
		Sections:  sections,
		Grid: GridSection{
			Key:         "All Latest Movies",
			Headings:    gridHeadings,
			ViewAllPath: "/latest-movies",
		},
	}
}

var homeSections = []HomeSection{
	{Key: "New Movies", Label: "TERBARU"},
	{Key: "Featured Series", Label: "Film Unggulan"},
	{Key: "Series Updates", Label: "LK21 TERBARU"},
	{Key: "Top Of The Month", Label: "TOP BULAN INI"},
	{Key: "Recommendation For You", Label: "Rekomendasi Untukmu"},
	{Key: "Watch With Family", Label: "Nonton Bareng Keluarga"},
	{Key: "Latest Action Movies", Label: "Action Terbaru"},
	{Key: "Korean Drama Marathon", Label: "Maraton Drakor"},
	{Key: "Latest Horror Movies", Label: "Horror Terbaru"},
	{Key: "Latest Romance Movies", Label: "Romance Terbaru"},
	{Key: "Latest Comedy Movies", Label: "Comedy Terbaru"},
	{Key: "Latest Korean Movies", Label: "Korea Terbaru"},
	{Key: "Latest Thailand Movies", Label: "Thailand Terbaru"},
	{Key: "Latest Indian Movies", Label: "India Terbaru"},
}

func movieTemplates() map[string]string {
	return map[string]string{
		"home":          "/",
		"list":          "/latest-movies/",
		"list_paged":    "/latest-movies/page/{page}/",
		"latest":        "/latest-movies/",
		"latest_paged":  "/latest-movies/page/{page}/",
		"genre":         "/genre/{slug}/",
		"genre_paged":   "/genre/{slug}/page/{page}/",
		"country":       "/country/{slug}/",
		"country_paged": "/country/{slug}/page/{page}/",
		"year":          "/year/{year}/",
		"year_paged":    "/year/{year}/page/{page}/",
		"feature":       "/{slug}/",
		"feature_paged": "/{slug}/page/{page}/",
		"special":       "/{slug}/",
		"special_paged": "/{slug}/page/{page}/",
		"search":        "/search.php?s={query}",
		"search_paged":  "/search.php?s={query}&page={page}",
		"detail":        "/{slug}/",
		"series":        "/{slug}/",
		"feed":          "/feed/",
	}
}

func lk21() Profile {
	return Profile{
		Name:      LK21,
		BaseURL:   "https://tv8.lk21official.cc",
		Family:    FamilyMovie,
		Layouts:   movieLayouts(),
		Home:      movieHome(homeSections, []string{"Daftar Lengkap Film Terbaru", "Daftar Lengkap Series Terbaru"}),
		Paging:    moviePagination,
		Detail:    movieDetail,
		Series:    movieSeries,
		Episode:   movieEpisode,
		Templates: movieTemplates(),
	}
}

func nontonDrama() Profile {
	sections := make([]HomeSection, len(homeSections))
	copy(sections, homeSections)
	sections[0].FallbackGrids = []string{"Episode Terbaru"}

	return Profile{
		Name:      NontonDrama,
		BaseURL:   "https://tv3.nontondrama.my",
		Family:    FamilyMovie,
		Layouts:   movieLayouts(),
		Home:      movieHome(sections, []string{"Daftar Lengkap Series Terbaru", "Daftar Lengkap Film Terbaru"}),
		Paging:    moviePagination,
		Detail:    movieDetail,
		Series:    movieSeries,
		Episode:   movieEpisode,
		Templates: movieTemplates(),
	}
}

func otakuDesu() Profile {
	archive := ListLayout{
		Containers: []string{"ul.chivsrc"},
		Item:       "li",
		Direct:     true,
		Skip:       "div.pagination",
		Fields: ListingSelectors{
			Title:         []string{"h2 a"},
			Link:          []string{"h2 a"},
			Thumbnail:     []string{"img"},
			Rating:        []string{"div.rating"},
			GenreLinks:    []string{"div.genrenya a"},
			ReleaseDate:   []string{"div.set"},
			TotalEpisodes: []string{"div.epz", "span.ep"},
			GenreLabel:    "Genres",
		},
	}

	ongoing := ListLayout{
		Containers: []string{"div.venutama div.rseries div.rapi div.venz ul", "div.venz ul"},
		Item:       "li",
		Direct:     true,
		Fields: ListingSelectors{
			Title:          []string{"div.thumbz h2.jdlflm"},
			Link:           []string{"div.thumb a"},
			Thumbnail:      []string{"div.thumbz img"},
			ReleaseDate:    []string{"div.newnime"},
			TotalEpisodes:  []string{"div.epz"},
			ReleasedDay:    []string{"div.epztipe"},
			EpisodePattern: `(?i)Episode\s*(\d+(?:\.\d+)?)`,
		},
		Status: "Ongoing",
	}

	genre := ListLayout{
		Containers: []string{"div.page"},
		Item:       "div.col-anime",
		Fields: ListingSelectors{
			Title:         []string{"div.col-anime-title a"},
			Link:          []string{"div.col-anime-title a"},
			Thumbnail:     []string{"div.col-anime-cover img"},
			Rating:        []string{"div.col-anime-rating"},
			GenreLinks:    []string{"div.col-anime-genre a"},
			ReleaseDate:   []string{"div.col-anime-date"},
			TotalEpisodes: []string{"div.col-anime-eps"},
		},
	}

	return Profile{
		Name:    OtakuDesu,
		BaseURL: "https://otakudesu.best",
		Family:  FamilyAnime,
		Layouts: map[string]ListLayout{
			LayoutArchive: archive,
			LayoutOngoing: ongoing,
			LayoutGenre:   genre,
		},
		Paging: PaginationSelectors{
			Containers: []string{"div.pagination div.pagenavix", "div.pagination"},
			PageOf:     []string{"span.naviright"},
			Current:    []string{"span.current", "[aria-current=page]"},
			Next:       []string{"a.next"},
			Prev:       []string{"a.prev"},
			NextText:   []string{"»"},
			PrevText:   []string{"«"},
			PageHref:   `/page/(\d+)`,
		},
		Episode: EpisodeSelectors{
			Title:         []string{"h1.posttl"},
			Player:        []string{"div#embed_holder div.responsive-embed-stream iframe"},
			Meta:          "div.kategoz",
			UploaderIcon:  "i.fa-user",
			TimeIcon:      "i.fa-clock-o",
			Nav:           "div.prevnext div.flir a",
			PreviousWords: []string{"previous", "sebelumnya", "prev"},
			AllWords:      []string{"see all", "all episodes", "semua episode"},
			Picklist:      "select#selectcog option",
			Downloads:     "div.download ul",
		},
		Anime: AnimeSelectors{
			Title:     []string{"div.jdlrx h1"},
			Thumbnail: []string{"div.fotoanime img"},
			Info:      "div.infozingle p span",
			Labels: AnimeLabels{
				Japanese:      []string{"Japanese:"},
				Score:         []string{"Skor:", "Score:"},
				Producer:      []string{"Produser:", "Producer:"},
				Type:          []string{"Tipe:", "Type:"},
				Status:        []string{"Status:"},
				TotalEpisodes: []string{"Total Episode:"},
				Duration:      []string{"Durasi:", "Duration:"},
				ReleaseDate:   []string{"Tanggal Rilis:", "Released:"},
				Studio:        []string{"Studio:"},
				Genre:         []string{"Genre"},
			},
			EpisodeLists: "div.episodelist ul li",
			EpisodeDate:  "span.zeebr",
			GenreHref:    "/genres/",
		},
		Templates: map[string]string{
			"latest":        "/?post_type=anime",
			"latest_paged":  "/page/{page}/?post_type=anime",
			"search":        "/?s={query}&post_type=anime",
			"search_paged":  "/?s={query}&post_type=anime&page={page}",
			"ongoing":       "/ongoing-anime/",
			"ongoing_paged": "/ongoing-anime/page/{page}/",
			"genre":         "/genres/{slug}/",
			"genre_paged":   "/genres/{slug}/page/{page}/",
			"genres":        "/genre-list/",
			"detail":        "/anime/{slug}/",
			"feed":          "/feed/",
		},
	}
}

// Builtin returns fresh copies of the built-in profiles.
func Builtin() []Profile {
	return []Profile{lk21(), nontonDrama(), otakuDesu()}
}
