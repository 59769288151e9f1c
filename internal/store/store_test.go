package store_test

import (
	"context"
	"errors"
	"testing"

	"watchlog/internal/store"
	"watchlog/internal/testsupport"
)

func TestOpenCreatesSchema(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	shows, err := st.ListShows(ctx)
	if err != nil {
		t.Fatalf("ListShows on empty store: %v", err)
	}
	if len(shows) != 0 {
		t.Fatalf("expected empty catalog, got %d shows", len(shows))
	}
}

func TestOpenExistingDatabase(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedCatalog(t, st)
	if err := st.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	t.Cleanup(func() { reopened.Close() })

	shows, err := reopened.ListShows(context.Background())
	if err != nil {
		t.Fatalf("ListShows after reopen: %v", err)
	}
	if len(shows) != 2 {
		t.Fatalf("expected seeded catalog to survive reopen, got %d shows", len(shows))
	}
}

func TestCreateShowAssignsIDAndDefaults(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	show := &store.Show{Name: "Arrow", BackgroundColor: "#013300", ForegroundColor: "#ffffff"}
	if err := st.CreateShow(ctx, show); err != nil {
		t.Fatalf("CreateShow: %v", err)
	}
	if show.ID == 0 {
		t.Fatal("expected show ID to be assigned")
	}

	id, ok, err := st.ShowIDByName(ctx, "Arrow")
	if err != nil {
		t.Fatalf("ShowIDByName: %v", err)
	}
	if !ok || id != show.ID {
		t.Fatalf("expected to resolve show id %d, got %d (ok=%v)", show.ID, id, ok)
	}

	if _, ok, err := st.ShowIDByName(ctx, "Unknown"); err != nil || ok {
		t.Fatalf("expected no match for unknown show, got ok=%v err=%v", ok, err)
	}
}

func TestSeasonIDRequiresExistingSeason(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	show := &store.Show{Name: "Arrow", BackgroundColor: "#013300", ForegroundColor: "#ffffff"}
	if err := st.CreateShow(ctx, show); err != nil {
		t.Fatalf("CreateShow: %v", err)
	}

	if _, err := st.SeasonID(ctx, show.ID, 1); !errors.Is(err, store.ErrSeasonNotFound) {
		t.Fatalf("expected ErrSeasonNotFound, got %v", err)
	}

	season := &store.Season{ShowID: show.ID, Number: 1}
	if err := st.CreateSeason(ctx, season); err != nil {
		t.Fatalf("CreateSeason: %v", err)
	}

	id, err := st.SeasonID(ctx, show.ID, 1)
	if err != nil {
		t.Fatalf("SeasonID: %v", err)
	}
	if id != season.ID {
		t.Fatalf("expected season id %d, got %d", season.ID, id)
	}
}

func TestListEpisodesJoinedOrdersByAirDate(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	ordered := testsupport.SeedCatalog(t, st)

	views, err := st.ListEpisodesJoined(context.Background())
	if err != nil {
		t.Fatalf("ListEpisodesJoined: %v", err)
	}
	if len(views) != len(ordered) {
		t.Fatalf("expected %d episodes, got %d", len(ordered), len(views))
	}
	for i, view := range views {
		if view.EpisodeID != ordered[i] {
			t.Fatalf("position %d: expected episode %d, got %d", i, ordered[i], view.EpisodeID)
		}
		if i > 0 && views[i-1].AirDate > view.AirDate {
			t.Fatalf("air dates out of order: %q before %q", views[i-1].AirDate, view.AirDate)
		}
		if view.Watched {
			t.Fatalf("episode %d should be unwatched in the joined listing", view.EpisodeID)
		}
	}

	first := views[0]
	if first.ShowName != "Arrow" || first.SeasonNumber != 1 || first.EpisodeNumber != 1 || first.Name != "Pilot" {
		t.Fatalf("unexpected first view: %#v", first)
	}
	if first.BackgroundColor != "#013300" || first.ForegroundColor != "#ffffff" {
		t.Fatalf("expected show colors on view, got %#v", first)
	}
}
