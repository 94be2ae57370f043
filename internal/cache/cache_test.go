package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frozen(c *Cache, start time.Time) *time.Time {
	now := start
	c.clock = func() time.Time { return now }
	return &now
}

func TestSetGet(t *testing.T) {
	c := New(Options{Enabled: true, TTL: time.Minute})
	defer c.Close()

	etag := c.Set("stats:u=octo", []byte("<svg/>"))
	body, got, ok := c.Get("stats:u=octo")
	require.True(t, ok)
	assert.Equal(t, []byte("<svg/>"), body)
	assert.Equal(t, etag, got)

	_, _, ok = c.Get("stats:u=ghost")
	assert.False(t, ok)

	s := c.Stats()
	assert.EqualValues(t, 1, s.Hits)
	assert.EqualValues(t, 1, s.Misses)
	assert.Equal(t, 60, s.TTLSeconds)
	assert.Equal(t, DefaultMaxEntries, s.MaxEntries)
}

func TestExpiry(t *testing.T) {
	c := New(Options{Enabled: true, TTL: time.Minute})
	defer c.Close()
	now := frozen(c, time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	c.Set("wave:text=hi", []byte("v"))
	*now = now.Add(59 * time.Second)
	_, _, ok := c.Get("wave:text=hi")
	assert.True(t, ok)

	*now = now.Add(time.Second)
	_, _, ok = c.Get("wave:text=hi")
	assert.False(t, ok, "entry is dead at exactly its expiry")

	c.sweep()
	s := c.Stats()
	assert.Equal(t, 0, s.Entries)
	assert.EqualValues(t, 1, s.Evictions)
}

func TestBoundedEvictsSoonestExpiry(t *testing.T) {
	c := New(Options{Enabled: true, TTL: time.Minute, MaxEntries: 2})
	defer c.Close()
	now := frozen(c, time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	c.Set("loader:a", []byte("a"))
	*now = now.Add(time.Second)
	c.Set("loader:b", []byte("b"))
	*now = now.Add(time.Second)

	// Replacing an existing key never evicts.
	c.Set("loader:b", []byte("b2"))
	assert.Equal(t, 2, c.Stats().Entries)

	c.Set("typing:c", []byte("c"))
	_, _, ok := c.Get("loader:a")
	assert.False(t, ok)
	for _, k := range []string{"loader:b", "typing:c"} {
		_, _, ok := c.Get(k)
		assert.True(t, ok, k)
	}

	s := c.Stats()
	assert.Equal(t, map[string]int{"loader": 1, "typing": 1}, s.ByKind)
	assert.EqualValues(t, 1, s.Evictions)
}

func TestBoundedPrefersExpired(t *testing.T) {
	c := New(Options{Enabled: true, TTL: time.Minute, MaxEntries: 2})
	defer c.Close()
	now := frozen(c, time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	c.Set("stats:old", []byte("1"))
	*now = now.Add(50 * time.Second)
	c.Set("stats:mid", []byte("2"))
	*now = now.Add(20 * time.Second)

	c.Set("stats:new", []byte("3"))
	s := c.Stats()
	assert.Equal(t, 2, s.Entries)
	assert.Equal(t, 2, s.Live)
}

func TestDisabledCache(t *testing.T) {
	c := New(Options{})
	assert.Equal(t, DefaultTTL, c.TTL())
	etag := c.Set("k", []byte("v"))
	assert.Equal(t, ComputeETag([]byte("v")), etag)
	_, _, ok := c.Get("k")
	assert.False(t, ok)
	assert.False(t, c.Stats().Enabled)
	c.Close()
	c.Close()
}

func TestComputeETagStable(t *testing.T) {
	a := ComputeETag([]byte("abc"))
	assert.Equal(t, a, ComputeETag([]byte("abc")))
	assert.NotEqual(t, a, ComputeETag([]byte("abd")))
	assert.Regexp(t, `^W/"[0-9a-f]{16}"$`, a)
}

func TestCheckETagMatch(t *testing.T) {
	etag := `W/"0123456789abcdef"`
	assert.False(t, CheckETagMatch("", etag))
	assert.True(t, CheckETagMatch("*", etag))
	assert.True(t, CheckETagMatch(etag, etag))
	assert.True(t, CheckETagMatch(`W/"other", `+etag, etag))
	assert.False(t, CheckETagMatch(`W/"other"`, etag))
	assert.False(t, CheckETagMatch(" , ", etag))
}
