package store

// Show is a tracked series. Rows are created by the importer and immutable
// afterwards; the colors drive the web UI legend.
type Show struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	BackgroundColor string `json:"background_color"`
	ForegroundColor string `json:"foreground_color"`
	Image           string `json:"image"`
}

// Season groups a show's episodes. (ShowID, Number) pairs are unique in
// practice; the importer resolves episodes through that pair.
type Season struct {
	ID     int64 `json:"id"`
	ShowID int64 `json:"show_id"`
	Number int   `json:"number"`
}

// Episode is a single aired episode. AirDate is kept as a YYYY-MM-DD string
// so lexicographic order matches chronological order.
type Episode struct {
	ID       int64  `json:"id"`
	SeasonID int64  `json:"season_id"`
	Number   int    `json:"number"`
	Name     string `json:"name"`
	AirDate  string `json:"air_date"`
	Image    string `json:"image"`
}

// Watchlist is a named, UUID-addressed collection of watch flags. The UUID is
// the caller-facing identity; the numeric ID exists for joins.
type Watchlist struct {
	ID          int64  `json:"id"`
	UUID        string `json:"uuid"`
	DisplayName string `json:"display_name"`
}

// EpisodeView is the denormalized row the UI consumes: an episode joined with
// its show and season, plus the watch flag for the requesting watchlist.
type EpisodeView struct {
	EpisodeID       int64  `json:"episode_id"`
	ShowName        string `json:"show_name"`
	SeasonNumber    int    `json:"season_number"`
	EpisodeNumber   int    `json:"episode_number"`
	Name            string `json:"name"`
	AirDate         string `json:"air_date"`
	Image           string `json:"image"`
	BackgroundColor string `json:"background_color"`
	ForegroundColor string `json:"foreground_color"`
	Watched         bool   `json:"watched"`
}

// WatchState is one client-submitted change: mark an episode watched or
// unwatched within a watchlist.
type WatchState struct {
	EpisodeID int64 `json:"episode_id"`
	Watched   bool  `json:"watched"`
}
