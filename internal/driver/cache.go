package driver

import (
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"lumen/internal/project"
)

// CacheEntry records the outcome of a prior check run keyed by the combined
// digest of the manifest and every file it covers, so a later run with the
// identical inputs can skip straight to reporting the same counts instead of
// rebuilding the whole symbol table.
type CacheEntry struct {
	ErrorCount   int `msgpack:"errors"`
	WarningCount int `msgpack:"warnings"`
}

// Cache is an on-disk, digest-keyed record of prior check runs, serialized
// with msgpack the way the teacher's declaration-info cache is.
type Cache struct {
	path    string
	entries map[project.Digest]CacheEntry
}

// LoadCache reads a cache file, returning an empty cache if it does not
// exist yet.
func LoadCache(path string) (*Cache, error) {
	c := &Cache{path: path, entries: make(map[project.Digest]CacheEntry)}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return c, nil
	}
	if err := msgpack.Unmarshal(data, &c.entries); err != nil {
		// A corrupt or foreign-format cache file is treated as empty rather
		// than fatal: a cache is an optimization, never a correctness
		// requirement.
		return &Cache{path: path, entries: make(map[project.Digest]CacheEntry)}, nil
	}
	return c, nil
}

// Lookup returns the cached entry for digest, if any.
func (c *Cache) Lookup(digest project.Digest) (CacheEntry, bool) {
	if c == nil {
		return CacheEntry{}, false
	}
	e, ok := c.entries[digest]
	return e, ok
}

// Store records entry under digest.
func (c *Cache) Store(digest project.Digest, entry CacheEntry) {
	if c == nil {
		return
	}
	c.entries[digest] = entry
}

// Save writes the cache back to disk.
func (c *Cache) Save() error {
	if c == nil || c.path == "" {
		return nil
	}
	data, err := msgpack.Marshal(c.entries)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644)
}
