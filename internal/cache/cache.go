// Package cache keeps rendered responses in memory keyed by request
// fingerprint, each with a weak ETag and a fixed lifetime.
//
// Keys are "<kind>:<fields>" (see card.Config.CacheKey); the kind prefix is
// only used to break down Stats.
package cache

import (
	"crypto/md5"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTTL matches the public max-age advertised on card responses.
const DefaultTTL = 30 * time.Minute

// DefaultMaxEntries bounds memory when Options.MaxEntries is unset.
const DefaultMaxEntries = 2000

const sweepInterval = 5 * time.Minute

// Options configures a Cache. The zero value is a disabled cache.
type Options struct {
	Enabled    bool
	TTL        time.Duration
	MaxEntries int
}

type item struct {
	body    []byte
	etag    string
	expires time.Time
}

// Cache is safe for concurrent use. A disabled Cache still computes ETags
// so conditional requests keep working.
type Cache struct {
	opts  Options
	clock func() time.Time

	mu    sync.RWMutex
	items map[string]item

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64

	done      chan struct{}
	closeOnce sync.Once
}

// New builds a Cache and, when enabled, starts its expiry sweeper. Call
// Close to stop the sweeper.
func New(opts Options) *Cache {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}
	c := &Cache{
		opts:  opts,
		clock: time.Now,
		items: make(map[string]item),
		done:  make(chan struct{}),
	}
	if opts.Enabled {
		go c.sweepLoop()
	}
	return c
}

// TTL is the lifetime given to every entry.
func (c *Cache) TTL() time.Duration { return c.opts.TTL }

// Get returns the live entry for key.
func (c *Cache) Get(key string) (body []byte, etag string, ok bool) {
	if !c.opts.Enabled {
		return nil, "", false
	}
	c.mu.RLock()
	it, found := c.items[key]
	c.mu.RUnlock()
	if !found || !c.clock().Before(it.expires) {
		c.misses.Add(1)
		return nil, "", false
	}
	c.hits.Add(1)
	return it.body, it.etag, true
}

// Set stores body under key for one TTL and returns its ETag. When the
// cache is full, expired entries go first, then whichever live entry
// expires soonest.
func (c *Cache) Set(key string, body []byte) string {
	etag := ComputeETag(body)
	if !c.opts.Enabled {
		return etag
	}
	now := c.clock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, replacing := c.items[key]; !replacing && len(c.items) >= c.opts.MaxEntries {
		c.makeRoomLocked(now)
	}
	c.items[key] = item{body: body, etag: etag, expires: now.Add(c.opts.TTL)}
	return etag
}

func (c *Cache) makeRoomLocked(now time.Time) {
	if c.dropExpiredLocked(now) > 0 {
		return
	}
	var oldestKey string
	var oldest time.Time
	for k, it := range c.items {
		if oldestKey == "" || it.expires.Before(oldest) {
			oldestKey, oldest = k, it.expires
		}
	}
	if oldestKey != "" {
		delete(c.items, oldestKey)
		c.evictions.Add(1)
	}
}

func (c *Cache) dropExpiredLocked(now time.Time) int {
	n := 0
	for k, it := range c.items {
		if !now.Before(it.expires) {
			delete(c.items, k)
			n++
		}
	}
	c.evictions.Add(int64(n))
	return n
}

// Stats is a point-in-time view for the health endpoint.
type Stats struct {
	Enabled    bool           `json:"enabled"`
	TTLSeconds int            `json:"ttl_seconds"`
	MaxEntries int            `json:"max_entries"`
	Entries    int            `json:"entries"`
	Live       int            `json:"live"`
	ByKind     map[string]int `json:"by_kind"`
	Hits       int64          `json:"hits"`
	Misses     int64          `json:"misses"`
	Evictions  int64          `json:"evictions"`
}

// Stats counts entries, live entries per card kind and the running
// hit/miss/eviction totals.
func (c *Cache) Stats() Stats {
	now := c.clock()
	s := Stats{
		Enabled:    c.opts.Enabled,
		TTLSeconds: int(c.opts.TTL.Seconds()),
		MaxEntries: c.opts.MaxEntries,
		ByKind:     make(map[string]int),
		Hits:       c.hits.Load(),
		Misses:     c.misses.Load(),
		Evictions:  c.evictions.Load(),
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	s.Entries = len(c.items)
	for k, it := range c.items {
		if !now.Before(it.expires) {
			continue
		}
		s.Live++
		kind, _, _ := strings.Cut(k, ":")
		s.ByKind[kind]++
	}
	return s
}

// Close stops the sweeper. It is safe to call more than once.
func (c *Cache) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *Cache) sweepLoop() {
	t := time.NewTicker(sweepInterval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			c.sweep()
		case <-c.done:
			return
		}
	}
}

func (c *Cache) sweep() {
	now := c.clock()
	c.mu.Lock()
	c.dropExpiredLocked(now)
	c.mu.Unlock()
}

// ComputeETag is a weak validator over the first 8 bytes of the body's MD5.
func ComputeETag(body []byte) string {
	sum := md5.Sum(body)
	return fmt.Sprintf(`W/"%x"`, sum[:8])
}

// CheckETagMatch reports whether an If-None-Match header value (a tag, a
// comma-separated list of tags, or "*") matches etag.
func CheckETagMatch(ifNoneMatch, etag string) bool {
	for _, tag := range strings.Split(ifNoneMatch, ",") {
		switch strings.TrimSpace(tag) {
		case "":
			continue
		case "*", etag:
			return true
		}
	}
	return false
}
