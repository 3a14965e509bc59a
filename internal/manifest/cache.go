package manifest

import (
	"path/filepath"

	"github.com/winpack/cli/internal/output"
)

// Cache maps manifest paths to loaded manifests. Holders of a cached
// Manifest share it, so edits are visible to every caller.
//
// Cache has no internal locking; callers must serialize access.
type Cache struct {
	entries map[string]*Manifest
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Manifest)}
}

func cacheKey(path string) string {
	return filepath.Clean(path)
}

// Get returns the manifest at path. A cached instance is returned as is,
// without re-reading the file. With ignoreCache the file is always parsed and
// the result is neither read from nor stored in the cache.
func (c *Cache) Get(path string, ignoreCache bool) (*Manifest, error) {
	if ignoreCache {
		return Load(path)
	}

	key := cacheKey(path)
	if m, ok := c.entries[key]; ok {
		output.Debug("manifest cache hit", "path", key)
		return m, nil
	}

	m, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.entries[key] = m
	return m, nil
}

// Purge drops the given paths from the cache, or every entry when called
// without arguments.
func (c *Cache) Purge(paths ...string) {
	if len(paths) == 0 {
		c.entries = make(map[string]*Manifest)
		return
	}
	for _, p := range paths {
		delete(c.entries, cacheKey(p))
	}
}

// Has reports whether path is cached.
func (c *Cache) Has(path string) bool {
	_, ok := c.entries[cacheKey(path)]
	return ok
}

// Len returns the number of cached manifests.
func (c *Cache) Len() int {
	return len(c.entries)
}
