package storage

import (
	"cmp"
	"image"
	"slices"
	"sync"

	"github.com/gogpu/pathanim"
)

// DefaultCacheLimit is the soft limit used by the command line tool.
const DefaultCacheLimit = 16

// Loader opens a referenced image. *Store implements Loader.
type Loader interface {
	Open(ref pathanim.ImageRef) (image.Image, error)
}

// cacheEntry holds a decoded background with its access time.
type cacheEntry struct {
	ref   pathanim.ImageRef
	img   image.Image
	atime int64 // tick value
}

// Cache holds the decoded background of each document, keyed by a
// caller-chosen document identity (typically its file path). When more
// than softLimit documents are cached, the least recently used entries are
// evicted.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache struct {
	loader    Loader
	softLimit int

	mu      sync.Mutex
	entries map[string]*cacheEntry
	tick    int64 // monotonic access counter
}

// NewCache returns an empty cache backed by loader. A softLimit of 0
// means unlimited.
func NewCache(loader Loader, softLimit int) *Cache {
	return &Cache{
		loader:    loader,
		softLimit: max(softLimit, 0),
		entries:   make(map[string]*cacheEntry),
	}
}

// Background returns the background image of the document identified by
// key. The image is fetched on a miss or when ref differs from the cached
// reference. A nil ref clears the entry and returns nil.
//
// The loader runs under the cache lock so concurrent callers never fetch
// the same document twice.
func (c *Cache) Background(key string, ref *pathanim.ImageRef) (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ref == nil {
		delete(c.entries, key)
		return nil, nil
	}
	c.tick++
	if e, ok := c.entries[key]; ok && e.ref == *ref {
		e.atime = c.tick
		return e.img, nil
	}

	img, err := c.loader.Open(*ref)
	if err != nil {
		delete(c.entries, key)
		return nil, err
	}
	pathanim.Logger().Debug("storage: cached background", "key", key, "name", ref.Name)
	c.entries[key] = &cacheEntry{ref: *ref, img: img, atime: c.tick}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return img, nil
}

// Forget drops the entry for key.
func (c *Cache) Forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of cached backgrounds.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest removes the least recently used quarter of the entries.
// Caller must hold c.mu.
func (c *Cache) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	n := len(c.entries) - target
	if n <= 0 {
		return
	}

	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		return cmp.Compare(c.entries[a].atime, c.entries[b].atime)
	})
	for _, k := range keys[:n] {
		delete(c.entries, k)
	}
}
