package media

// AnimeDetail is the detail record of the anime family. It stays separate
// from Detail: anime pages describe a show through a label/value info block
// and list episodes instead of players.
type AnimeDetail struct {
	Listing

	JapaneseTitle *string           `json:"japanese_title,omitempty"`
	Score         *string           `json:"score,omitempty"`
	Producer      *string           `json:"producer,omitempty"`
	Type          *string           `json:"type,omitempty"`
	DurationText  *string           `json:"duration_text,omitempty"`
	Studio        *string           `json:"studio,omitempty"`
	Episodes      []AnimeEpisodeRef `json:"episodes"`
}

// AnimeEpisodeRef is an entry of an anime's episode list, oldest first.
type AnimeEpisodeRef struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	ReleaseDate *string `json:"release_date,omitempty"`
}
