package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrSeasonNotFound indicates an episode insert referenced a (show, season
// number) pair with no season row. Seasons must be inserted before episodes.
var ErrSeasonNotFound = errors.New("season not found")

// CreateShow inserts a show and assigns the generated id. The importer owns
// show creation; nothing in the serving path mutates the catalog.
func (s *Store) CreateShow(ctx context.Context, show *Show) error {
	if show == nil {
		return errors.New("show is nil")
	}
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO shows (name, background_color, foreground_color, image) VALUES (?, ?, ?, ?)`,
		show.Name,
		show.BackgroundColor,
		show.ForegroundColor,
		nullableString(show.Image),
	)
	if err != nil {
		return fmt.Errorf("insert show: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	show.ID = id
	return nil
}

// ShowIDByName returns the id of the first show with the given name, if any.
// Names are not unique; re-imports can create duplicate rows.
func (s *Store) ShowIDByName(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRowContext(
		ctx,
		`SELECT show_id FROM shows WHERE name = ? ORDER BY show_id LIMIT 1`,
		name,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("show id by name: %w", err)
	}
	return id, true, nil
}

// CreateSeason inserts a season and assigns the generated id.
func (s *Store) CreateSeason(ctx context.Context, season *Season) error {
	if season == nil {
		return errors.New("season is nil")
	}
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO seasons (show_id, season_number) VALUES (?, ?)`,
		season.ShowID,
		season.Number,
	)
	if err != nil {
		return fmt.Errorf("insert season: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	season.ID = id
	return nil
}

// SeasonID resolves a season row by show and season number.
func (s *Store) SeasonID(ctx context.Context, showID int64, seasonNumber int) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(
		ctx,
		`SELECT season_id FROM seasons WHERE show_id = ? AND season_number = ? LIMIT 1`,
		showID,
		seasonNumber,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("show %d season %d: %w", showID, seasonNumber, ErrSeasonNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("season id: %w", err)
	}
	return id, nil
}

// CreateEpisode inserts an episode and assigns the generated id.
func (s *Store) CreateEpisode(ctx context.Context, episode *Episode) error {
	if episode == nil {
		return errors.New("episode is nil")
	}
	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO episodes (season_id, episode_number, name, air_date, image) VALUES (?, ?, ?, ?, ?)`,
		episode.SeasonID,
		episode.Number,
		episode.Name,
		episode.AirDate,
		nullableString(episode.Image),
	)
	if err != nil {
		return fmt.Errorf("insert episode: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	episode.ID = id
	return nil
}

// ListShows returns every show in insertion order.
func (s *Store) ListShows(ctx context.Context) ([]Show, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT show_id, name, background_color, foreground_color, image FROM shows`,
	)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer rows.Close()

	var shows []Show
	for rows.Next() {
		var (
			show  Show
			image sql.NullString
		)
		if err := rows.Scan(&show.ID, &show.Name, &show.BackgroundColor, &show.ForegroundColor, &image); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		show.Image = image.String
		shows = append(shows, show)
	}
	return shows, rows.Err()
}

// ListEpisodesJoined returns every episode joined with its season and show,
// ordered ascending by air date. Air dates sort as strings, which matches
// chronology for the YYYY-MM-DD values the importer writes.
func (s *Store) ListEpisodesJoined(ctx context.Context) ([]EpisodeView, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT
            episodes.episode_id,
            shows.name,
            seasons.season_number,
            episodes.episode_number,
            episodes.name,
            episodes.air_date,
            episodes.image,
            shows.background_color,
            shows.foreground_color
        FROM shows
        JOIN seasons ON shows.show_id = seasons.show_id
        JOIN episodes ON seasons.season_id = episodes.season_id
        ORDER BY episodes.air_date ASC, episodes.episode_id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}
	defer rows.Close()

	return scanEpisodeViews(rows, false)
}

func scanEpisodeViews(rows *sql.Rows, withWatched bool) ([]EpisodeView, error) {
	var views []EpisodeView
	for rows.Next() {
		var (
			view    EpisodeView
			image   sql.NullString
			watched int
		)
		dest := []any{
			&view.EpisodeID,
			&view.ShowName,
			&view.SeasonNumber,
			&view.EpisodeNumber,
			&view.Name,
			&view.AirDate,
			&image,
			&view.BackgroundColor,
			&view.ForegroundColor,
		}
		if withWatched {
			dest = append(dest, &watched)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan episode view: %w", err)
		}
		view.Image = image.String
		view.Watched = watched != 0
		views = append(views, view)
	}
	return views, rows.Err()
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
