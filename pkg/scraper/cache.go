package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// GroupCache is the on-disk record of the last group-list fetch. There is
// no schema version; a file that is missing, unreadable, or carries no
// timestamp simply counts as stale.
type GroupCache struct {
	LastUpdated time.Time `json:"last_updated"`
	Groups      []Group   `json:"groups"`
}

// defaultCachePath resolves where the group cache lives. The CACHE_FILE
// environment variable wins; otherwise it goes under the user's home.
func defaultCachePath() (string, error) {
	if path := os.Getenv("CACHE_FILE"); path != "" {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".shedule-zsm-1")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	return filepath.Join(cacheDir, "group_cache.json"), nil
}

// readCache loads the cache file if one exists and parses.
func readCache(path string) (*GroupCache, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false // File doesn't exist or can't be read
	}

	var cache GroupCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, false
	}

	return &cache, true
}

// writeCache replaces the cache file wholesale. Refreshes never merge
// into the old list. Write failures are not fatal: the fresh list is
// still served, it just won't be cached.
func writeCache(path string, cache *GroupCache) {
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
