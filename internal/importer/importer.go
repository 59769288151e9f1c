package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"

	"watchlog/internal/config"
	"watchlog/internal/store"
	"watchlog/internal/tvmaze"
)

// ErrImportInProgress indicates another process holds the import lock.
var ErrImportInProgress = errors.New("import already in progress")

// Importer populates the catalog from TVMaze. Imports are append-only; running
// against a populated database creates duplicate rows, so the importer warns
// when a tracked show already exists.
type Importer struct {
	store    *store.Store
	fetcher  tvmaze.Fetcher
	cache    *Cache
	logger   *slog.Logger
	lockPath string
	shows    []TrackedShow
}

// Option configures an Importer.
type Option func(*Importer)

// WithShows overrides the tracked show table.
func WithShows(shows []TrackedShow) Option {
	return func(imp *Importer) {
		if len(shows) > 0 {
			imp.shows = shows
		}
	}
}

// New creates an importer wired to the configured TVMaze API and cache
// directory.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger, opts ...Option) (*Importer, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if st == nil {
		return nil, errors.New("store is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := tvmaze.New(
		cfg.TVMaze.BaseURL,
		tvmaze.WithTimeout(time.Duration(cfg.TVMaze.RequestTimeout)*time.Second),
	)
	if err != nil {
		return nil, err
	}

	imp := &Importer{
		store:    st,
		fetcher:  client,
		cache:    NewCache(cfg.TVMaze.CacheDir),
		logger:   logger,
		lockPath: cfg.ImportLockPath(),
		shows:    DefaultShows(),
	}
	for _, opt := range opts {
		opt(imp)
	}
	return imp, nil
}

// Run imports every tracked show. The whole run is guarded by a lock file so
// two concurrent imports cannot interleave their inserts.
func (imp *Importer) Run(ctx context.Context) error {
	lock := flock.New(imp.lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire import lock: %w", err)
	}
	if !locked {
		return ErrImportInProgress
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			imp.logger.Warn("failed to release import lock", "path", imp.lockPath, "error", err)
		}
	}()

	for _, tracked := range imp.shows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := imp.importShow(ctx, tracked); err != nil {
			return fmt.Errorf("import %s: %w", tracked.Name, err)
		}
	}
	return nil
}

func (imp *Importer) importShow(ctx context.Context, tracked TrackedShow) error {
	payload, err := imp.fetchShow(ctx, tracked)
	if err != nil {
		return err
	}

	if _, exists, err := imp.store.ShowIDByName(ctx, tracked.Name); err != nil {
		return err
	} else if exists {
		imp.logger.Warn("show already in catalog, import will create duplicate rows",
			"show", tracked.Name)
	}

	show := &store.Show{
		Name:            tracked.Name,
		BackgroundColor: tracked.BackgroundColor,
		ForegroundColor: tracked.ForegroundColor,
	}
	if payload.Image != nil {
		show.Image = payload.Image.Original
	}
	if err := imp.store.CreateShow(ctx, show); err != nil {
		return err
	}

	for _, season := range payload.Embedded.Seasons {
		if season.Number == nil {
			return fmt.Errorf("season %d has no number", season.ID)
		}
		if err := imp.store.CreateSeason(ctx, &store.Season{
			ShowID: show.ID,
			Number: *season.Number,
		}); err != nil {
			return err
		}
	}

	for _, episode := range payload.Embedded.Episodes {
		if episode.Season == nil || episode.Number == nil {
			return fmt.Errorf("episode %d (%s) missing season or episode number", episode.ID, episode.Name)
		}
		seasonID, err := imp.store.SeasonID(ctx, show.ID, *episode.Season)
		if err != nil {
			return err
		}
		record := &store.Episode{
			SeasonID: seasonID,
			Number:   *episode.Number,
			Name:     episode.Name,
			AirDate:  episode.AirDate,
		}
		if episode.Image != nil {
			record.Image = episode.Image.Original
		}
		if err := imp.store.CreateEpisode(ctx, record); err != nil {
			return err
		}
	}

	imp.logger.Info("imported show",
		"show", tracked.Name,
		"seasons", len(payload.Embedded.Seasons),
		"episodes", len(payload.Embedded.Episodes))
	return nil
}

func (imp *Importer) fetchShow(ctx context.Context, tracked TrackedShow) (*tvmaze.Show, error) {
	cached, found, err := imp.cache.Load(tracked.Name)
	if err != nil {
		imp.logger.Warn("ignoring unreadable cached response", "show", tracked.Name, "error", err)
	} else if found {
		show, err := tvmaze.ParseShow(cached)
		if err == nil {
			imp.logger.Info("using cached response", "show", tracked.Name)
			return show, nil
		}
		imp.logger.Warn("ignoring malformed cached response", "show", tracked.Name, "error", err)
	}

	show, raw, err := imp.fetcher.ShowWithEmbeds(ctx, tracked.Code)
	if err != nil {
		return nil, err
	}
	if err := imp.cache.Store(tracked.Name, raw); err != nil {
		imp.logger.Warn("failed to cache response", "show", tracked.Name, "error", err)
	}
	return show, nil
}
