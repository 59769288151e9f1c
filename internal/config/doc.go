// Package config loads, normalizes, and validates watchlog configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// server, importer, and CLI need, so the database location, HTTP bind address,
// and TVMaze settings are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
