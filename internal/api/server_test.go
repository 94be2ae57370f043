package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/readme-svg/internal/cache"
	"github.com/albapepper/readme-svg/internal/catalog"
	"github.com/albapepper/readme-svg/internal/config"
	"github.com/albapepper/readme-svg/internal/generator"
	"github.com/albapepper/readme-svg/internal/profile"
)

type stubSource struct {
	calls atomic.Int32
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(_ context.Context, username string) (profile.Stats, error) {
	s.calls.Add(1)
	if username == "ghost" {
		return profile.Stats{}, &profile.NotFoundError{Username: username}
	}
	return profile.Stats{
		Identity: profile.Identity{Name: "Octo", Username: username, JoinedYear: 2011},
		Counts:   profile.Counts{TotalStars: 1500, PublicRepos: 3},
	}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		CORSAllowOrigins:  []string{"*"},
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		CacheEnabled:      true,
		CacheTTL:          30 * time.Minute,
		CacheMaxEntries:   100,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) (*httptest.Server, *stubSource) {
	t.Helper()
	src := &stubSource{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat, err := catalog.Load()
	require.NoError(t, err)
	c := cache.New(cache.Options{Enabled: cfg.CacheEnabled, TTL: cfg.CacheTTL, MaxEntries: cfg.CacheMaxEntries})
	t.Cleanup(c.Close)

	srv := httptest.NewServer(NewRouter(generator.New(src, logger), c, cat, cfg, logger))
	t.Cleanup(srv.Close)
	return srv, src
}

func get(t *testing.T, url string, header map[string]string) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestStatsSuccessHeaders(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	resp, body := get(t, srv.URL+"/api/stats?username=octo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Equal(t, "public, max-age=1800", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))
	assert.NotEmpty(t, resp.Header.Get("ETag"))
	assert.NotEmpty(t, resp.Header.Get("X-Process-Time"))
	assert.True(t, strings.HasPrefix(body, "<svg"))
	assert.Contains(t, body, `viewBox="0 0 920 650"`)
}

func TestStatsCacheAndETag(t *testing.T) {
	srv, src := newTestServer(t, testConfig())

	first, body := get(t, srv.URL+"/api/stats?username=octo&theme=dark", nil)
	require.Equal(t, http.StatusOK, first.StatusCode)

	// auto renders as dark, so it shares the cache entry.
	second, body2 := get(t, srv.URL+"/api/stats?username=octo&theme=auto", nil)
	require.Equal(t, http.StatusOK, second.StatusCode)
	assert.Equal(t, "HIT", second.Header.Get("X-Cache"))
	assert.Equal(t, body, body2)
	assert.EqualValues(t, 1, src.calls.Load())

	third, _ := get(t, srv.URL+"/api/stats?username=octo", map[string]string{
		"If-None-Match": first.Header.Get("ETag"),
	})
	assert.Equal(t, http.StatusNotModified, third.StatusCode)
}

func TestStatsMissingUsername(t *testing.T) {
	srv, src := newTestServer(t, testConfig())

	resp, body := get(t, srv.URL+"/api/stats?theme=light", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, body, "Username parameter is required")
	assert.Contains(t, body, "Oops! Something went wrong")
	assert.Contains(t, body, `viewBox="0 0 920 650"`)
	assert.Zero(t, src.calls.Load())

	resp, body = get(t, srv.URL+"/api/stats?width=500&height=300", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, `viewBox="0 0 500 300"`)
}

func TestParamErrorCardsKeepRequestedSize(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	for path, viewBox := range map[string]string{
		"/api/wave":                         `viewBox="0 0 1200 200"`,
		"/api/wave?width=800&height=120":    `viewBox="0 0 800 120"`,
		"/api/typing?width=400&height=50":   `viewBox="0 0 400 50"`,
		"/api/terminal":                     `viewBox="0 0 700 400"`,
		"/api/terminal?width=640&height=90": `viewBox="0 0 640 90"`,
	} {
		resp, body := get(t, srv.URL+path, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Contains(t, body, viewBox, path)
	}
}

func TestStatsUnknownUserNotCached(t *testing.T) {
	srv, src := newTestServer(t, testConfig())

	for range 2 {
		resp, body := get(t, srv.URL+"/api/stats?username=ghost", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "User &#34;ghost&#34; not found")
		assert.Contains(t, resp.Header.Get("Cache-Control"), "no-cache")
	}
	assert.EqualValues(t, 2, src.calls.Load())
}

func TestSiblingRoutes(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	for _, path := range []string{
		"/api/wave?text=Hello",
		"/api/typing?lines=one;two",
		"/api/terminal?commands=ls",
		"/api/loader?type=dots",
		"/api/loader",
	} {
		resp, body := get(t, srv.URL+path, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"), path)
		assert.True(t, strings.HasPrefix(body, "<svg"), path)
	}

	for path, msg := range map[string]string{
		"/api/wave":     "Text parameter is required",
		"/api/typing":   "Lines parameter is required",
		"/api/terminal": "Commands parameter is required",
	} {
		resp, body := get(t, srv.URL+path, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Contains(t, body, msg, path)
	}
}

func TestReferenceRoutes(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	resp, body := get(t, srv.URL+"/api/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var metrics []catalog.MetricInfo
	require.NoError(t, json.Unmarshal([]byte(body), &metrics))
	assert.Len(t, metrics, 6)
	assert.Equal(t, "commits", metrics[0].Key)

	resp, body = get(t, srv.URL+"/api/examples", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var examples []catalog.Example
	require.NoError(t, json.Unmarshal([]byte(body), &examples))
	assert.NotEmpty(t, examples)

	resp, body = get(t, srv.URL+"/api/options", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"label":"Spinner"`)
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))

	resp, _ = get(t, srv.URL+"/api/options", nil)
	assert.Equal(t, "HIT", resp.Header.Get("X-Cache"))
	resp, _ = get(t, srv.URL+"/api/options", map[string]string{"If-None-Match": resp.Header.Get("ETag")})
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	resp, body = get(t, srv.URL+"/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"source":"stub"`)
	resp, body = get(t, srv.URL+"/health/cache", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"by_kind":{"catalog":3}`)
	assert.Contains(t, body, `"max_entries":100`)
}

func TestUnknownRoute(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	resp, body := get(t, srv.URL+"/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, `"code":"NOT_FOUND"`)
	assert.Contains(t, body, `"detail":"/api/nope"`)
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Hour
	srv, _ := newTestServer(t, cfg)

	resp, _ := get(t, srv.URL+"/api/loader", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := get(t, srv.URL+"/api/loader", nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "3600", resp.Header.Get("Retry-After"))
	assert.Contains(t, body, "RATE_LIMITED")
}
