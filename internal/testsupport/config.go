package testsupport

import (
	"path/filepath"
	"testing"

	"watchlog/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.Bind = "127.0.0.1:0"
	cfg.TVMaze.CacheDir = filepath.Join(base, "cache")

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithTVMazeBaseURL points the config at a test server.
func WithTVMazeBaseURL(baseURL string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.TVMaze.BaseURL = baseURL
	}
}
