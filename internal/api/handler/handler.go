// Package handler provides HTTP handlers for all API endpoints.
// Card routes answer with SVG on success and failure alike; the reference
// routes answer with JSON.
package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/albapepper/readme-svg/internal/api/respond"
	"github.com/albapepper/readme-svg/internal/cache"
	"github.com/albapepper/readme-svg/internal/catalog"
	"github.com/albapepper/readme-svg/internal/config"
	"github.com/albapepper/readme-svg/internal/generator"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	gen     *generator.Generator
	cache   *cache.Cache
	cfg     *config.Config
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(gen *generator.Generator, c *cache.Cache, cat *catalog.Catalog, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		gen:     gen,
		cache:   c,
		cfg:     cfg,
		catalog: cat,
		logger:  logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, profile source and the card routes.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "readme-svg",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"source":  h.gen.Source(),
		"cards": []string{
			"/api/stats",
			"/api/wave",
			"/api/typing",
			"/api/terminal",
			"/api/loader",
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"source":    h.gen.Source(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory card cache statistics: entry counts per card kind, hits, misses and evictions.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// queryParams flattens the raw query string, keeping the first value of
// each key. url.ParseQuery rejects pairs containing ';', which the list
// parameters use as their separator, so pairs are split on '&' only.
func queryParams(rawQuery string) map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil || key == "" {
			continue
		}
		val, err := url.QueryUnescape(v)
		if err != nil {
			continue
		}
		if _, seen := out[key]; !seen {
			out[key] = val
		}
	}
	return out
}
