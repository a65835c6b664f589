package cache

import (
	"encoding/base64"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"

	"vidlink/domain/model"
	"vidlink/domain/repository"
	"vidlink/infrastructure/logger"
)

const (
	cachePrefix  = "video_cache_"
	expiryPrefix = "video_cache_expiry_"
)

// cacheEntry pairs a stored VideoInfo with its creation timestamp in
// milliseconds. The timestamp drives oldest-first eviction.
type cacheEntry struct {
	Data      model.VideoInfo `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// VideoCache memoizes normalized parse results per source URL on top of an
// IKeyValueStore. Entries expire after a fixed TTL and the live set is capped;
// exceeding the cap evicts oldest-creation-first. Storage failures are
// absorbed: every operation degrades to a no-op rather than surfacing errors.
type VideoCache struct {
	store      repository.IKeyValueStore
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewVideoCache(store repository.IKeyValueStore, ttl time.Duration, maxEntries int) *VideoCache {
	return &VideoCache{
		store:      store,
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// WithClock overrides the time source (tests).
func (c *VideoCache) WithClock(now func() time.Time) *VideoCache {
	c.now = now
	return c
}

// cacheKey derives the payload key from a source URL: prefix plus the first
// 32 characters of the base64-encoded URL. Long URLs differing only past the
// truncation point collide; accepted as out of scope.
func cacheKey(url string) string {
	return cachePrefix + truncatedDigest(url)
}

func expiryKey(url string) string {
	return expiryPrefix + truncatedDigest(url)
}

func truncatedDigest(url string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(url))
	if len(encoded) > 32 {
		encoded = encoded[:32]
	}
	return encoded
}

// Put stores the entry plus a separate expiry marker, then enforces the
// capacity cap. A failed write clears the whole cache as a recovery step
// before giving up.
func (c *VideoCache) Put(url string, info *model.VideoInfo) {
	if c.store == nil || info == nil {
		return
	}
	timestamp := c.now().UnixMilli()
	payload, err := json.Marshal(cacheEntry{Data: *info, Timestamp: timestamp})
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Failed to marshal cache entry")
		return
	}
	if err := c.store.Set(cacheKey(url), string(payload)); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Cache write failed; clearing cache")
		c.ClearAll()
		return
	}
	expiry := timestamp + c.ttl.Milliseconds()
	if err := c.store.Set(expiryKey(url), strconv.FormatInt(expiry, 10)); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Cache expiry write failed; clearing cache")
		c.ClearAll()
		return
	}
	c.evictOldest()
}

// Get returns the cached VideoInfo for a URL. An absent or elapsed expiry
// marker deletes both keys and reports a miss; malformed stored JSON is a
// miss as well.
func (c *VideoCache) Get(url string) (*model.VideoInfo, bool) {
	if c.store == nil {
		return nil, false
	}
	raw, ok := c.store.Get(expiryKey(url))
	expiry, err := strconv.ParseInt(raw, 10, 64)
	if !ok || err != nil || c.now().UnixMilli() > expiry {
		c.store.Remove(cacheKey(url))
		c.store.Remove(expiryKey(url))
		return nil, false
	}

	cached, ok := c.store.Get(cacheKey(url))
	if !ok {
		return nil, false
	}
	var entry cacheEntry
	if err := json.Unmarshal([]byte(cached), &entry); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Malformed cache entry; treating as miss")
		return nil, false
	}
	return &entry.Data, true
}

// ClearOne removes the entry and expiry marker for a single URL.
func (c *VideoCache) ClearOne(url string) {
	if c.store == nil {
		return
	}
	c.store.Remove(cacheKey(url))
	c.store.Remove(expiryKey(url))
}

// ClearAll removes every key under both cache prefixes.
func (c *VideoCache) ClearAll() {
	if c.store == nil {
		return
	}
	for _, key := range c.store.Keys() {
		if strings.HasPrefix(key, cachePrefix) || strings.HasPrefix(key, expiryPrefix) {
			c.store.Remove(key)
		}
	}
}

// CleanExpired removes every entry whose expiry marker has elapsed.
func (c *VideoCache) CleanExpired() {
	if c.store == nil {
		return
	}
	now := c.now().UnixMilli()
	for _, key := range c.store.Keys() {
		if !strings.HasPrefix(key, expiryPrefix) {
			continue
		}
		raw, ok := c.store.Get(key)
		if !ok {
			continue
		}
		expiry, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || now > expiry {
			c.store.Remove(cachePrefix + key[len(expiryPrefix):])
			c.store.Remove(key)
		}
	}
}

// Stats reports the live entry count, the total stored payload bytes and the
// oldest/newest creation timestamps in milliseconds.
func (c *VideoCache) Stats() (totalItems, totalSize int, oldest, newest *int64) {
	if c.store == nil {
		return 0, 0, nil, nil
	}
	for _, key := range c.store.Keys() {
		if !strings.HasPrefix(key, cachePrefix) || strings.HasPrefix(key, expiryPrefix) {
			continue
		}
		cached, ok := c.store.Get(key)
		if !ok {
			continue
		}
		totalItems++
		totalSize += len(cached)
		var entry cacheEntry
		if err := json.Unmarshal([]byte(cached), &entry); err != nil {
			continue
		}
		ts := entry.Timestamp
		if oldest == nil || ts < *oldest {
			oldest = &ts
		}
		if newest == nil || ts > *newest {
			newest = &ts
		}
	}
	return totalItems, totalSize, oldest, newest
}

// evictOldest deletes oldest-creation-first until the live entry count is
// back at or below the cap.
func (c *VideoCache) evictOldest() {
	type item struct {
		key       string
		timestamp int64
	}
	var items []item
	for _, key := range c.store.Keys() {
		if !strings.HasPrefix(key, cachePrefix) || strings.HasPrefix(key, expiryPrefix) {
			continue
		}
		cached, ok := c.store.Get(key)
		if !ok {
			continue
		}
		var entry cacheEntry
		if err := json.Unmarshal([]byte(cached), &entry); err != nil {
			continue
		}
		items = append(items, item{key: key, timestamp: entry.Timestamp})
	}
	if len(items) <= c.maxEntries {
		return
	}
	sort.Slice(items, func(i, j int) bool { return items[i].timestamp < items[j].timestamp })
	for _, it := range items[:len(items)-c.maxEntries] {
		c.store.Remove(it.key)
		c.store.Remove(expiryPrefix + it.key[len(cachePrefix):])
	}
}
