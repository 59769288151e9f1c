package importer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Cache stores raw TVMaze responses on disk, one JSON file per show, so a
// re-run of the importer does not hammer the API. Delete a show's file to
// force a re-fetch.
type Cache struct {
	dir string
}

// NewCache creates a cache rooted at dir. An empty dir disables caching.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

// Load returns the cached payload for a show name, if present.
func (c *Cache) Load(showName string) ([]byte, bool, error) {
	if c.dir == "" {
		return nil, false, nil
	}
	data, err := os.ReadFile(c.path(showName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read cached response for %q: %w", showName, err)
	}
	return data, true, nil
}

// Store writes a show payload to the cache.
func (c *Cache) Store(showName string, data []byte) error {
	if c.dir == "" {
		return nil
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}
	if err := os.WriteFile(c.path(showName), data, 0o644); err != nil {
		return fmt.Errorf("write cached response for %q: %w", showName, err)
	}
	return nil
}

func (c *Cache) path(showName string) string {
	name := strings.ReplaceAll(showName, string(os.PathSeparator), "_")
	return filepath.Join(c.dir, name+".json")
}
