// Package respond writes handler responses: SVG cards on the image routes,
// JSON everywhere else.
package respond

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// Content types.
const (
	SVGContentType  = "image/svg+xml"
	JSONContentType = "application/json"
)

const noStore = "no-cache, no-store, must-revalidate"

// ErrorBody is the detail inside an ErrorResponse.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// ErrorResponse wraps every JSON API error.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// WriteSVG writes a rendered card. Cards are always embeddable from any
// origin; image fetches rarely send Origin, so the CORS middleware alone
// would leave the header unset.
func WriteSVG(w http.ResponseWriter, data []byte, etag string, ttl time.Duration, cacheHit bool) {
	anyOrigin(w.Header())
	writeCached(w, SVGContentType, data, etag, ttl, cacheHit)
}

// WriteSVGError writes an error card with status 400 and no caching.
// Browsers still draw the body, so a README shows the message rather than a
// broken image.
func WriteSVGError(w http.ResponseWriter, data []byte) {
	h := w.Header()
	anyOrigin(h)
	h.Set("Content-Type", SVGContentType)
	h.Set("Cache-Control", noStore)
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write(data)
}

// WriteJSON writes pre-encoded JSON with the same caching headers as cards.
func WriteJSON(w http.ResponseWriter, data []byte, etag string, ttl time.Duration, cacheHit bool) {
	writeCached(w, JSONContentType, data, etag, ttl, cacheHit)
}

// WriteNotModified answers a matching If-None-Match.
func WriteNotModified(w http.ResponseWriter, etag string) {
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusNotModified)
}

// WriteError sends a JSON error without detail.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteErrorDetail(w, status, code, message, "")
}

// WriteErrorDetail sends a JSON error.
func WriteErrorDetail(w http.ResponseWriter, status int, code, message, detail string) {
	w.Header().Set("Cache-Control", noStore)
	WriteJSONObject(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message, Detail: detail}})
}

// WriteJSONObject encodes v as the response body.
func WriteJSONObject(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", JSONContentType)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeCached(w http.ResponseWriter, contentType string, data []byte, etag string, ttl time.Duration, cacheHit bool) {
	h := w.Header()
	h.Set("Content-Type", contentType)
	h.Set("ETag", etag)
	h.Set("Vary", "Accept-Encoding")
	h.Set("Cache-Control", "public, max-age="+strconv.Itoa(int(ttl.Seconds())))
	if cacheHit {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func anyOrigin(h http.Header) {
	if h.Get("Access-Control-Allow-Origin") == "" {
		h.Set("Access-Control-Allow-Origin", "*")
	}
}
