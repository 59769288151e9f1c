package server

import (
	"encoding/json"
	"net/http"

	"log/slog"

	"watchlog/internal/store"
	"watchlog/internal/watchlist"
)

const defaultDisplayName = "My Watchlist"

type indexData struct {
	WatchlistUUID        string
	WatchlistDisplayName string
	HasDisplayName       bool
	Shows                []store.Show
	Episodes             []store.EpisodeView
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	query := r.URL.Query()
	ref := watchlist.RefFor(query.Get("watchlist"))

	displayName, hasName, err := s.store.WatchlistDisplayName(ctx, ref)
	if err != nil {
		s.internalError(w, "resolve display name", err)
		return
	}
	shows, err := s.store.ProjectShows(ctx)
	if err != nil {
		s.internalError(w, "project shows", err)
		return
	}
	episodes, err := s.store.ProjectEpisodes(ctx, ref)
	if err != nil {
		s.internalError(w, "project episodes", err)
		return
	}

	if raw := query.Get("shownames"); raw != "" {
		selected, err := mapShortCodes(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		shows = filterShows(shows, selected)
		episodes = filterEpisodes(episodes, selected)
	}

	uuid, _ := ref.UUID()
	data := indexData{
		WatchlistUUID:        uuid,
		WatchlistDisplayName: displayName,
		HasDisplayName:       hasName,
		Shows:                shows,
		Episodes:             episodes,
	}
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.log().Error("render index", slog.String("error", err.Error()))
	}
}

type watchStatePayload struct {
	EpisodeID int64 `json:"episode_id"`
	Watched   int   `json:"watched"`
}

type saveWatchlistPayload struct {
	WatchlistUUID any                 `json:"watchlist_uuid"`
	DisplayName   any                 `json:"watchlist_display_name"`
	WatchStates   []watchStatePayload `json:"episode_watch_states"`
}

// handleSaveWatchlist persists a batch of watch-state changes. Malformed
// bodies and missing identifiers redirect back to the index without touching
// the database.
func (s *Server) handleSaveWatchlist(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload saveWatchlistPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	uuid, ok := payload.WatchlistUUID.(string)
	if !ok || uuid == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	displayName := defaultDisplayName
	if name, ok := payload.DisplayName.(string); ok && name != "" {
		displayName = name
	}

	changes := make([]store.WatchState, 0, len(payload.WatchStates))
	for _, state := range payload.WatchStates {
		changes = append(changes, store.WatchState{
			EpisodeID: state.EpisodeID,
			Watched:   state.Watched != 0,
		})
	}

	if err := s.store.ApplyWatchStates(r.Context(), uuid, displayName, changes); err != nil {
		s.internalError(w, "apply watch states", err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func filterShows(shows []store.Show, selected map[string]bool) []store.Show {
	filtered := make([]store.Show, 0, len(shows))
	for _, show := range shows {
		if selected[show.Name] {
			filtered = append(filtered, show)
		}
	}
	return filtered
}

func filterEpisodes(episodes []store.EpisodeView, selected map[string]bool) []store.EpisodeView {
	filtered := make([]store.EpisodeView, 0, len(episodes))
	for _, episode := range episodes {
		if selected[episode.ShowName] {
			filtered = append(filtered, episode)
		}
	}
	return filtered
}

func (s *Server) internalError(w http.ResponseWriter, action string, err error) {
	s.log().Error(action, slog.String("error", err.Error()))
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
