package handler

import (
	"net/http"

	"github.com/albapepper/readme-svg/internal/api/respond"
	"github.com/albapepper/readme-svg/internal/cache"
	"github.com/albapepper/readme-svg/internal/card"
	"github.com/albapepper/readme-svg/internal/generator"
)

// GetStats renders the profile statistics card.
// @Summary Profile stats card
// @Description Renders an animated SVG card with identity, up to four stat cards, top languages, contribution insights and a footer. Any failure returns 400 with an error card as the body.
// @Tags cards
// @Produce image/svg+xml
// @Param username query string true "GitHub username"
// @Param metrics query string false "Comma-separated metric keys; first four recognized are shown" default(commits,prs,issues,stars)
// @Param theme query string false "Colour theme" Enums(dark, light, auto) default(dark)
// @Param animation query string false "Reveal animation" Enums(countUp, slideIn, pulse) default(countUp)
// @Param width query int false "Canvas width" default(920)
// @Param height query int false "Canvas height" default(650)
// @Param showAvatar query bool false "Draw the avatar; only the literal false disables it" default(true)
// @Param gradientType query string false "Accepted for compatibility; not rendered"
// @Success 200 {string} string "SVG document"
// @Success 304 {string} string "Not modified"
// @Failure 400 {string} string "SVG error card"
// @Router /api/stats [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	cfg, err := card.ParseParams(queryParams(r.URL.RawQuery))
	if err != nil {
		h.fail(w, r, err, generator.ErrorCard(err, cfg.Width, cfg.Height))
		return
	}
	h.serveCard(w, r, cfg.CacheKey(), func() ([]byte, error) {
		return h.gen.Generate(r.Context(), cfg)
	})
}

// GetWave renders a wave banner.
// @Summary Wave banner
// @Description Renders a title and optional subtitle over layered animated waves.
// @Tags cards
// @Produce image/svg+xml
// @Param text query string true "Banner title"
// @Param subtitle query string false "Line under the title"
// @Param theme query string false "Colour theme" Enums(dark, light, auto) default(dark)
// @Param color query string false "Wave colour as hex; defaults to the theme accent"
// @Param waves query int false "Wave layers, 1 to 5" default(3)
// @Param speed query number false "Seconds per scroll cycle" default(8)
// @Param width query int false "Canvas width" default(1200)
// @Param height query int false "Canvas height" default(200)
// @Success 200 {string} string "SVG document"
// @Failure 400 {string} string "SVG error card"
// @Router /api/wave [get]
func (h *Handler) GetWave(w http.ResponseWriter, r *http.Request) {
	cfg, err := card.ParseWaveParams(queryParams(r.URL.RawQuery))
	if err != nil {
		h.fail(w, r, err, generator.ErrorCard(err, cfg.Width, cfg.Height))
		return
	}
	h.serveCard(w, r, cfg.CacheKey(), func() ([]byte, error) { return h.gen.Wave(cfg) })
}

// GetTyping renders a typing animation.
// @Summary Typing effect
// @Description Types each line in turn behind a blinking cursor, looping forever.
// @Tags cards
// @Produce image/svg+xml
// @Param lines query string true "Semicolon-separated lines"
// @Param font_size query int false "Font size in pixels" default(24)
// @Param color query string false "Text colour as hex"
// @Param duration query int false "Milliseconds to type one line" default(3000)
// @Param pause query int false "Milliseconds to hold a typed line" default(1000)
// @Param center query bool false "Centre lines horizontally" default(false)
// @Param theme query string false "Colour theme" Enums(dark, light, auto) default(dark)
// @Param width query int false "Canvas width" default(600)
// @Param height query int false "Canvas height" default(60)
// @Success 200 {string} string "SVG document"
// @Failure 400 {string} string "SVG error card"
// @Router /api/typing [get]
func (h *Handler) GetTyping(w http.ResponseWriter, r *http.Request) {
	cfg, err := card.ParseTypingParams(queryParams(r.URL.RawQuery))
	if err != nil {
		h.fail(w, r, err, generator.ErrorCard(err, cfg.Width, cfg.Height))
		return
	}
	h.serveCard(w, r, cfg.CacheKey(), func() ([]byte, error) { return h.gen.Typing(cfg) })
}

// GetTerminal renders a terminal window.
// @Summary Terminal window
// @Description Prints each command after the prompt, followed by its paired output.
// @Tags cards
// @Produce image/svg+xml
// @Param commands query string true "Semicolon-separated commands"
// @Param output query string false "Semicolon-separated outputs, paired with commands by position"
// @Param title query string false "Window title" default(bash)
// @Param prompt query string false "Prompt symbol" default($)
// @Param theme query string false "Colour theme" Enums(dark, light, auto) default(dark)
// @Param width query int false "Canvas width" default(700)
// @Param height query int false "Minimum canvas height; grows to fit" default(400)
// @Success 200 {string} string "SVG document"
// @Failure 400 {string} string "SVG error card"
// @Router /api/terminal [get]
func (h *Handler) GetTerminal(w http.ResponseWriter, r *http.Request) {
	cfg, err := card.ParseTerminalParams(queryParams(r.URL.RawQuery))
	if err != nil {
		h.fail(w, r, err, generator.ErrorCard(err, cfg.Width, cfg.MinHeight()))
		return
	}
	h.serveCard(w, r, cfg.CacheKey(), func() ([]byte, error) { return h.gen.Terminal(cfg) })
}

// GetLoader renders a loading indicator.
// @Summary Loader
// @Description Renders a looping loading indicator.
// @Tags cards
// @Produce image/svg+xml
// @Param type query string false "Loader style" Enums(spinner, dots, bars, pulse) default(spinner)
// @Param color query string false "Colour as hex; defaults to the theme accent"
// @Param size query int false "Width and height in pixels" default(64)
// @Param speed query number false "Seconds per cycle" default(1.2)
// @Param theme query string false "Colour theme" Enums(dark, light, auto) default(dark)
// @Success 200 {string} string "SVG document"
// @Router /api/loader [get]
func (h *Handler) GetLoader(w http.ResponseWriter, r *http.Request) {
	cfg := card.ParseLoaderParams(queryParams(r.URL.RawQuery))
	h.serveCard(w, r, cfg.CacheKey(), func() ([]byte, error) { return h.gen.Loader(cfg) })
}

// serveCard answers from cache when it can, otherwise renders, caches a
// successful result and writes it. Failed renders are never cached.
func (h *Handler) serveCard(w http.ResponseWriter, r *http.Request, key string, render func() ([]byte, error)) {
	ttl := h.cache.TTL()

	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteSVG(w, data, etag, ttl, true)
		return
	}

	data, err := render()
	if err != nil {
		h.fail(w, r, err, data)
		return
	}

	etag := h.cache.Set(key, data)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteSVG(w, data, etag, ttl, false)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, body []byte) {
	h.logger.Info("Card request failed", "path", r.URL.Path, "error", err)
	respond.WriteSVGError(w, body)
}
