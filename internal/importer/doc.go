// Package importer performs one-shot catalog ingestion from TVMaze.
//
// It walks a fixed table of tracked shows, fetches each show with seasons and
// episodes embedded, and inserts the rows into the catalog. Raw API responses
// are cached on disk so repeated runs avoid re-fetching; a lock file prevents
// two imports from running at once.
package importer
