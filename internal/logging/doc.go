// Package logging assembles the structured slog loggers used across watchlog.
//
// It centralizes level and format parsing and the optional log-file tee so the
// server, importer, and CLI all emit data with the same shape. Prefer these
// constructors over hand-rolled slog setup.
package logging
