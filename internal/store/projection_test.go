package store_test

import (
	"context"
	"testing"

	"watchlog/internal/store"
	"watchlog/internal/testsupport"
	"watchlog/internal/watchlist"
)

func TestProjectEpisodesWithoutRef(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ordered := testsupport.SeedCatalog(t, st)

	views, err := st.ProjectEpisodes(context.Background(), watchlist.Ref{})
	if err != nil {
		t.Fatalf("ProjectEpisodes: %v", err)
	}
	if len(views) != len(ordered) {
		t.Fatalf("expected %d views, got %d", len(ordered), len(views))
	}
	for _, view := range views {
		if view.Watched {
			t.Fatalf("episode %d watched without a watchlist", view.EpisodeID)
		}
	}
}

func TestProjectEpisodesUnknownUUIDMatchesAbsent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedCatalog(t, st)
	ctx := context.Background()

	absent, err := st.ProjectEpisodes(ctx, watchlist.Ref{})
	if err != nil {
		t.Fatalf("ProjectEpisodes absent: %v", err)
	}
	unknown, err := st.ProjectEpisodes(ctx, watchlist.RefFor("nonexistent"))
	if err != nil {
		t.Fatalf("ProjectEpisodes unknown: %v", err)
	}

	if len(absent) != len(unknown) {
		t.Fatalf("row counts differ: %d vs %d", len(absent), len(unknown))
	}
	for i := range absent {
		if absent[i] != unknown[i] {
			t.Fatalf("row %d differs: %#v vs %#v", i, absent[i], unknown[i])
		}
		if unknown[i].Watched {
			t.Fatalf("unknown watchlist must read all-unwatched, episode %d", unknown[i].EpisodeID)
		}
	}
}

func TestProjectEpisodesMergesWatchState(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ordered := testsupport.SeedCatalog(t, st)
	ctx := context.Background()

	err := st.ApplyWatchStates(ctx, "abc-123", "My List", []store.WatchState{
		{EpisodeID: ordered[0], Watched: true},
	})
	if err != nil {
		t.Fatalf("ApplyWatchStates: %v", err)
	}

	views, err := st.ProjectEpisodes(ctx, watchlist.RefFor("abc-123"))
	if err != nil {
		t.Fatalf("ProjectEpisodes: %v", err)
	}
	for i, view := range views {
		wantWatched := view.EpisodeID == ordered[0]
		if view.Watched != wantWatched {
			t.Fatalf("row %d episode %d: watched=%v, want %v", i, view.EpisodeID, view.Watched, wantWatched)
		}
	}

	// Another watchlist's state must not leak in.
	other, err := st.ProjectEpisodes(ctx, watchlist.RefFor("other-uuid"))
	if err != nil {
		t.Fatalf("ProjectEpisodes other: %v", err)
	}
	for _, view := range other {
		if view.Watched {
			t.Fatalf("episode %d watched for a watchlist that never wrote", view.EpisodeID)
		}
	}
}

func TestWatchlistDisplayName(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := st.EnsureWatchlist(ctx, "abc-123", "My List"); err != nil {
		t.Fatalf("EnsureWatchlist: %v", err)
	}

	name, ok, err := st.WatchlistDisplayName(ctx, watchlist.RefFor("abc-123"))
	if err != nil {
		t.Fatalf("WatchlistDisplayName: %v", err)
	}
	if !ok || name != "My List" {
		t.Fatalf("unexpected display name: %q (ok=%v)", name, ok)
	}

	// Unknown token and absent ref collapse to the same absent signal.
	if _, ok, err := st.WatchlistDisplayName(ctx, watchlist.RefFor("nonexistent")); err != nil || ok {
		t.Fatalf("unknown token should read absent, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := st.WatchlistDisplayName(ctx, watchlist.Ref{}); err != nil || ok {
		t.Fatalf("absent ref should read absent, got ok=%v err=%v", ok, err)
	}
}
