package testsupport

import (
	"context"
	"testing"

	"watchlog/internal/config"
	"watchlog/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// SeedCatalog inserts a small fixed catalog and returns the episode ids in
// air-date order: Arrow S1E1 "Pilot" (2012-10-10), The Flash S1E1 "Pilot"
// (2014-10-07), Arrow S1E2 "Honor Thy Father" (2012-10-17).
func SeedCatalog(t testing.TB, st *store.Store) []int64 {
	t.Helper()
	ctx := context.Background()

	arrow := &store.Show{Name: "Arrow", BackgroundColor: "#013300", ForegroundColor: "#ffffff"}
	flash := &store.Show{Name: "The Flash", BackgroundColor: "#AB0020", ForegroundColor: "#ffffff"}
	for _, show := range []*store.Show{arrow, flash} {
		if err := st.CreateShow(ctx, show); err != nil {
			t.Fatalf("CreateShow %s: %v", show.Name, err)
		}
	}

	arrowSeason := &store.Season{ShowID: arrow.ID, Number: 1}
	flashSeason := &store.Season{ShowID: flash.ID, Number: 1}
	for _, season := range []*store.Season{arrowSeason, flashSeason} {
		if err := st.CreateSeason(ctx, season); err != nil {
			t.Fatalf("CreateSeason: %v", err)
		}
	}

	episodes := []*store.Episode{
		{SeasonID: arrowSeason.ID, Number: 1, Name: "Pilot", AirDate: "2012-10-10"},
		{SeasonID: flashSeason.ID, Number: 1, Name: "Pilot", AirDate: "2014-10-07"},
		{SeasonID: arrowSeason.ID, Number: 2, Name: "Honor Thy Father", AirDate: "2012-10-17"},
	}
	ids := make([]int64, 0, len(episodes))
	for _, episode := range episodes {
		if err := st.CreateEpisode(ctx, episode); err != nil {
			t.Fatalf("CreateEpisode %s: %v", episode.Name, err)
		}
		ids = append(ids, episode.ID)
	}

	// air-date order: Arrow Pilot, Arrow E2, Flash Pilot
	return []int64{ids[0], ids[2], ids[1]}
}
