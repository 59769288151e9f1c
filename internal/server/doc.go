// Package server provides the HTTP boundary for the watchlist UI.
//
// Two routes exist: GET / renders the episode table with per-watchlist watch
// state merged in, and POST /save_watchlist accepts a JSON batch of watch
// state changes and redirects back to the index.
package server
