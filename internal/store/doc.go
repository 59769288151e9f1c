// Package store persists the episode catalog and per-viewer watchlists in
// SQLite and exposes the read and write paths the web UI is built on.
//
// The catalog side (shows, seasons, episodes) is written once by the importer
// and read-only afterwards. The watchlist side (watchlists, watchlist_items)
// is created lazily on first write and reconciled batch-by-batch: each
// (watchlist, episode) pair holds at most one row, enforced by a unique
// constraint and update-or-insert inside a single transaction.
//
// "Not found" is modeled as data throughout: unknown watchlist tokens read as
// all-unwatched, and display-name lookups return an ok bool instead of an
// error. Schema changes bump schemaVersion in schema.go.
package store
