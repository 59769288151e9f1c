// Package main hosts the watchlog CLI entrypoint and command graph.
//
// The Cobra-based command tree surfaces the catalog importer, the web server,
// read-only catalog listings, and watchlist management. It centralizes
// configuration resolution so subcommands can focus on user experience
// instead of wiring.
package main
