// Package facecache provides a small LRU cache for parsed font faces.
//
// Parsing an OpenType font is far more expensive than drawing a short label
// with it, and charts tend to ask for the same two or three faces over and
// over. The cache is keyed by a content hash of the font data plus the
// requested size.
package facecache

import (
	"container/list"
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// DefaultCapacity is the default maximum number of entries.
const DefaultCapacity = 32

// Key identifies a face: the FNV-1a hash of the font bytes and its size in
// points.
type Key struct {
	Sum  uint64
	Size float64
}

// KeyFor computes the cache key for font data at the given size.
func KeyFor(data []byte, size float64) Key {
	h := fnv.New64a()
	_, _ = h.Write(data) // fnv.Write never returns an error
	return Key{Sum: h.Sum64(), Size: size}
}

// Cache is a mutex-guarded LRU cache. It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]*list.Element
	lru      *list.List // front = most recently used
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates a cache holding at most capacity entries.
// If capacity <= 0, DefaultCapacity is used.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache[K, V]{
		entries:  make(map[K]*list.Element),
		lru:      list.New(),
		capacity: capacity,
	}
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// Values for which create fails are not stored.
//
// create runs with the lock held so that concurrent callers asking for the
// same face parse the font only once.
func (c *Cache[K, V]) GetOrCreate(key K, create func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.lru.MoveToFront(el)
		c.hits.Add(1)
		return el.Value.(*entry[K, V]).value, nil
	}
	c.misses.Add(1)

	value, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.insert(key, value)
	return value, nil
}

// insert adds a new entry. Caller holds c.mu.
func (c *Cache[K, V]) insert(key K, value V) {
	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		c.lru.Remove(oldest)
		delete(c.entries, oldest.Value.(*entry[K, V]).key)
		c.evictions.Add(1)
	}
	c.entries[key] = c.lru.PushFront(&entry[K, V]{key: key, value: value})
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Stats holds cache statistics.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Stats returns current cache statistics.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
