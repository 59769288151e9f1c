package store_test

import (
	"context"
	"testing"

	"watchlog/internal/store"
	"watchlog/internal/testsupport"
	"watchlog/internal/watchlist"
)

func countItems(t *testing.T, st *store.Store, uuid string) int {
	t.Helper()
	views, err := st.ProjectEpisodes(context.Background(), watchlist.RefFor(uuid))
	if err != nil {
		t.Fatalf("ProjectEpisodes: %v", err)
	}
	watched := 0
	for _, view := range views {
		if view.Watched {
			watched++
		}
	}
	return watched
}

func TestEnsureWatchlistIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := st.EnsureWatchlist(ctx, "abc-123", "My List"); err != nil {
		t.Fatalf("EnsureWatchlist: %v", err)
	}
	if err := st.EnsureWatchlist(ctx, "abc-123", "Another Name"); err != nil {
		t.Fatalf("repeat EnsureWatchlist: %v", err)
	}

	name, ok, err := st.WatchlistDisplayName(ctx, watchlist.RefFor("abc-123"))
	if err != nil || !ok {
		t.Fatalf("WatchlistDisplayName: %q %v %v", name, ok, err)
	}
	if name != "My List" {
		t.Fatalf("display name must not change on repeat ensure, got %q", name)
	}
}

func TestEnsureWatchlistRejectsEmptyUUID(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	if err := st.EnsureWatchlist(context.Background(), "", "My List"); err == nil {
		t.Fatal("expected error for empty uuid")
	}
}

func TestApplyWatchStatesCreatesWatchlistAndItem(t *testing.T) {
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

	id, ok, err := st.WatchlistIDByUUID(ctx, "abc-123")
	if err != nil || !ok || id == 0 {
		t.Fatalf("expected watchlist row, got id=%d ok=%v err=%v", id, ok, err)
	}
	if got := countItems(t, st, "abc-123"); got != 1 {
		t.Fatalf("expected exactly one watched episode, got %d", got)
	}
}

func TestApplyWatchStatesIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ordered := testsupport.SeedCatalog(t, st)
	ctx := context.Background()

	batch := []store.WatchState{
		{EpisodeID: ordered[0], Watched: true},
		{EpisodeID: ordered[1], Watched: true},
	}
	for i := 0; i < 2; i++ {
		if err := st.ApplyWatchStates(ctx, "abc-123", "My List", batch); err != nil {
			t.Fatalf("ApplyWatchStates round %d: %v", i+1, err)
		}
	}

	if got := countItems(t, st, "abc-123"); got != 2 {
		t.Fatalf("expected two watched episodes after duplicate submit, got %d", got)
	}
}

func TestApplyWatchStatesLastWriteWins(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ordered := testsupport.SeedCatalog(t, st)
	ctx := context.Background()

	err := st.ApplyWatchStates(ctx, "abc-123", "My List", []store.WatchState{
		{EpisodeID: ordered[0], Watched: true},
	})
	if err != nil {
		t.Fatalf("first ApplyWatchStates: %v", err)
	}
	err = st.ApplyWatchStates(ctx, "abc-123", "Ignored Name", []store.WatchState{
		{EpisodeID: ordered[0], Watched: false},
	})
	if err != nil {
		t.Fatalf("second ApplyWatchStates: %v", err)
	}

	if got := countItems(t, st, "abc-123"); got != 0 {
		t.Fatalf("expected episode unwatched after second submit, got %d watched", got)
	}

	name, ok, err := st.WatchlistDisplayName(ctx, watchlist.RefFor("abc-123"))
	if err != nil || !ok {
		t.Fatalf("WatchlistDisplayName: %v %v", ok, err)
	}
	if name != "My List" {
		t.Fatalf("display name changed on resubmission: %q", name)
	}
}

func TestApplyWatchStatesDuplicateEpisodeInBatch(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ordered := testsupport.SeedCatalog(t, st)
	ctx := context.Background()

	// The same episode twice in one batch: the later value sticks and only
	// one row exists.
	err := st.ApplyWatchStates(ctx, "abc-123", "My List", []store.WatchState{
		{EpisodeID: ordered[0], Watched: true},
		{EpisodeID: ordered[0], Watched: false},
	})
	if err != nil {
		t.Fatalf("ApplyWatchStates: %v", err)
	}

	if got := countItems(t, st, "abc-123"); got != 0 {
		t.Fatalf("expected later value in batch to win, got %d watched", got)
	}
}

func TestApplyWatchStatesEmptyBatchStillCreatesWatchlist(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := st.ApplyWatchStates(ctx, "abc-123", "My List", nil); err != nil {
		t.Fatalf("ApplyWatchStates: %v", err)
	}
	if _, ok, err := st.WatchlistIDByUUID(ctx, "abc-123"); err != nil || !ok {
		t.Fatalf("expected watchlist created for empty batch, ok=%v err=%v", ok, err)
	}
}
