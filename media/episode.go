package media

// EpisodePage is everything scraped from the page of a single episode.
type EpisodePage struct {
	Title          string         `json:"title"`
	URL            string         `json:"url"`
	EpisodeNumber  *string        `json:"episode_number,omitempty"`
	PlayerURL      *string        `json:"player_url,omitempty"`
	Players        []PlayerSource `json:"players"`
	TrailerURL     *string        `json:"trailer_url,omitempty"`
	Uploader       *string        `json:"uploader,omitempty"`
	ReleaseTime    *string        `json:"release_time,omitempty"`
	PreviousURL    *string        `json:"previous_url,omitempty"`
	NextURL        *string        `json:"next_url,omitempty"`
	AllEpisodesURL *string        `json:"all_episodes_url,omitempty"`
	Siblings       []TaggedRef    `json:"siblings"`
	Downloads      []Download     `json:"downloads"`
	DownloadURL    *string        `json:"download_url,omitempty"`
}

// Download is one download link. Links are grouped on the page under a
// heading such as "MP4 720p", which supplies Format and Quality.
type Download struct {
	Name    string  `json:"name"`
	URL     string  `json:"url"`
	Size    *string `json:"size,omitempty"`
	Quality *string `json:"quality,omitempty"`
	Format  *string `json:"format,omitempty"`
}
