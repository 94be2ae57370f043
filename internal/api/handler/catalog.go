package handler

import (
	"encoding/json"
	"net/http"

	"github.com/albapepper/readme-svg/internal/api/respond"
	"github.com/albapepper/readme-svg/internal/cache"
	"github.com/albapepper/readme-svg/internal/catalog"
)

// GetMetrics lists the metrics a stats card can show.
// @Summary Metric catalog
// @Description Returns every metric key with its display name, description and icon.
// @Tags reference
// @Produce json
// @Success 200 {array} catalog.MetricInfo
// @Success 304 {string} string "Not modified"
// @Router /api/metrics [get]
func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	h.serveJSON(w, r, "catalog:metrics", h.catalog.Metrics)
}

// GetExamples lists canned example requests.
// @Summary Usage examples
// @Description Returns example card URLs with a short description of each.
// @Tags reference
// @Produce json
// @Success 200 {array} catalog.Example
// @Success 304 {string} string "Not modified"
// @Router /api/examples [get]
func (h *Handler) GetExamples(w http.ResponseWriter, r *http.Request) {
	h.serveJSON(w, r, "catalog:examples", h.catalog.Examples)
}

// GetOptions lists the accepted values for enumerated parameters.
// @Summary Parameter options
// @Description Returns accepted theme, animation and loader values with display labels.
// @Tags reference
// @Produce json
// @Success 200 {object} map[string][]catalog.Option
// @Success 304 {string} string "Not modified"
// @Router /api/options [get]
func (h *Handler) GetOptions(w http.ResponseWriter, r *http.Request) {
	h.serveJSON(w, r, "catalog:options", map[string][]catalog.Option{
		"themes":     catalog.Themes(),
		"animations": catalog.Animations(),
		"loaders":    catalog.Loaders(),
	})
}

// serveJSON marshals v once per cache lifetime and serves it with an ETag.
func (h *Handler) serveJSON(w http.ResponseWriter, r *http.Request, key string, v any) {
	ttl := h.cache.TTL()

	data, etag, hit := h.cache.Get(key)
	if !hit {
		var err error
		data, err = json.Marshal(v)
		if err != nil {
			h.logger.Error("Failed to encode catalog", "key", key, "error", err)
			respond.WriteError(w, http.StatusInternalServerError, "ENCODE_FAILED", "failed to encode response")
			return
		}
		etag = h.cache.Set(key, data)
	}

	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, ttl, hit)
}

// NotFound answers unknown routes with the JSON error envelope.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	respond.WriteErrorDetail(w, http.StatusNotFound, "NOT_FOUND", "route not found", r.URL.Path)
}
