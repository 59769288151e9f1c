// Package tvmaze provides the minimal TVMaze API client used during catalog
// import.
//
// It fetches a show with its seasons and episodes embedded in one request and
// hands back the raw body alongside the decoded payload so the importer can
// cache responses on disk. Options allow tests to supply custom HTTP clients.
package tvmaze
