package svgnorm

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache memoizes NormalizeAndScale results keyed by a hash of the path
// data and the scale. Entries are evicted least recently used first and
// expire after the cache's TTL. A Cache is safe for concurrent use.
type Cache struct {
	lru *expirable.LRU[string, string]
}

// NewCache creates a cache holding up to size entries for ttl each. A
// zero size means unlimited and a zero ttl disables expiry.
func NewCache(size int, ttl time.Duration) *Cache {
	return &Cache{lru: expirable.NewLRU[string, string](size, nil, ttl)}
}

// NormalizeAndScale returns the cached result for d and scale, computing
// and storing it on a miss.
func (c *Cache) NormalizeAndScale(d string, scale float64) string {
	key := cacheKey(d, scale)
	if out, ok := c.lru.Get(key); ok {
		return out
	}
	out := NormalizeAndScale(d, scale)
	c.lru.Add(key, out)
	return out
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.lru.Purge()
}

func cacheKey(d string, scale float64) string {
	h := sha256.New()
	h.Write([]byte(d))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatFloat(scale, 'g', -1, 64)))
	return hex.EncodeToString(h.Sum(nil))
}
