package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// EnsureWatchlist creates the watchlist for uuid if it does not exist yet.
// Idempotent: a repeat call is a no-op and never updates the stored display
// name, even when a different one is supplied.
func (s *Store) EnsureWatchlist(ctx context.Context, uuid, displayName string) error {
	if uuid == "" {
		return errors.New("watchlist uuid is empty")
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO watchlists (watchlist_uuid, display_name) VALUES (?, ?)
         ON CONFLICT (watchlist_uuid) DO NOTHING`,
		uuid,
		displayName,
	)
	if err != nil {
		return fmt.Errorf("ensure watchlist: %w", err)
	}
	return nil
}

// WatchlistIDByUUID resolves the internal join id for a watchlist token.
func (s *Store) WatchlistIDByUUID(ctx context.Context, uuid string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRowContext(
		ctx,
		`SELECT watchlist_id FROM watchlists WHERE watchlist_uuid = ?`,
		uuid,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("watchlist id: %w", err)
	}
	return id, true, nil
}

// ApplyWatchStates persists a batch of watch-state changes for the watchlist
// identified by uuid, creating it with displayName on first use. Each episode
// gets at most one row: an existing (watchlist, episode) row is updated,
// otherwise one is inserted. The whole batch commits in a single transaction,
// so re-submitting a batch is idempotent and a failure leaves no partial mix.
//
// If the watchlist cannot be resolved after EnsureWatchlist (only possible
// under a cross-process race) the batch is dropped without error; absence is
// data here, not a failure.
func (s *Store) ApplyWatchStates(ctx context.Context, uuid, displayName string, changes []WatchState) error {
	if err := s.EnsureWatchlist(ctx, uuid, displayName); err != nil {
		return err
	}

	watchlistID, ok, err := s.WatchlistIDByUUID(ctx, uuid)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin watch state tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, change := range changes {
		res, err := tx.ExecContext(
			ctx,
			`UPDATE watchlist_items SET watched = ? WHERE watchlist_id = ? AND episode_id = ?`,
			boolToInt(change.Watched),
			watchlistID,
			change.EpisodeID,
		)
		if err != nil {
			return fmt.Errorf("update watch state: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}
		if affected > 0 {
			continue
		}
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO watchlist_items (watchlist_id, episode_id, watched) VALUES (?, ?, ?)`,
			watchlistID,
			change.EpisodeID,
			boolToInt(change.Watched),
		); err != nil {
			return fmt.Errorf("insert watch state: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit watch states: %w", err)
	}
	return nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
