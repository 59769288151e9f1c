package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"watchlog/internal/watchlist"
)

// ProjectShows returns the show list the UI renders. Pass-through of
// ListShows; watch state never affects the show legend.
func (s *Store) ProjectShows(ctx context.Context) ([]Show, error) {
	return s.ListShows(ctx)
}

// ProjectEpisodes returns every episode in air-date order, merged with the
// watch state of the referenced watchlist. With an absent ref every row is
// unwatched. A token that matches no stored watchlist is not an error: the
// outer join simply yields no matches and every row comes back unwatched.
func (s *Store) ProjectEpisodes(ctx context.Context, ref watchlist.Ref) ([]EpisodeView, error) {
	uuid, ok := ref.UUID()
	if !ok {
		return s.ListEpisodesJoined(ctx)
	}

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
            shows.foreground_color,
            COALESCE(items.watched, 0)
        FROM episodes
        JOIN seasons ON episodes.season_id = seasons.season_id
        JOIN shows ON seasons.show_id = shows.show_id
        LEFT JOIN (
            SELECT watchlist_items.episode_id, watchlist_items.watched
            FROM watchlist_items
            JOIN watchlists ON watchlist_items.watchlist_id = watchlists.watchlist_id
            WHERE watchlists.watchlist_uuid = ?
        ) AS items ON episodes.episode_id = items.episode_id
        ORDER BY episodes.air_date ASC, episodes.episode_id ASC`,
		uuid,
	)
	if err != nil {
		return nil, fmt.Errorf("project episodes: %w", err)
	}
	defer rows.Close()

	return scanEpisodeViews(rows, true)
}

// WatchlistDisplayName returns the stored display name for the referenced
// watchlist. The second return is false both when the ref is absent and when
// no watchlist matches the token; callers that need to tell those apart must
// check ref.Present() themselves.
func (s *Store) WatchlistDisplayName(ctx context.Context, ref watchlist.Ref) (string, bool, error) {
	uuid, ok := ref.UUID()
	if !ok {
		return "", false, nil
	}

	var name string
	err := s.db.QueryRowContext(
		ctx,
		`SELECT display_name FROM watchlists WHERE watchlist_uuid = ?`,
		uuid,
	).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("watchlist display name: %w", err)
	}
	return name, true, nil
}
