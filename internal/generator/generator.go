// Package generator is the single fallible entry point between a parsed
// card request and SVG bytes. Every failure, including a panic inside a
// renderer, comes back as an error card plus the error, so callers always
// have a document to send.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/albapepper/readme-svg/internal/card"
	"github.com/albapepper/readme-svg/internal/profile"
	"github.com/albapepper/readme-svg/internal/render"
)

// Generator renders cards from an Aggregator's data.
type Generator struct {
	source profile.Aggregator
	logger *slog.Logger
}

// New creates a Generator. A nil logger uses slog.Default().
func New(source profile.Aggregator, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{source: source, logger: logger}
}

// Source names the aggregator backing this generator.
func (g *Generator) Source() string {
	return g.source.Name()
}

// Generate fetches the profile for cfg.Username and renders the stats card.
// On failure it returns the error card sized like the request and a
// non-nil error.
func (g *Generator) Generate(ctx context.Context, cfg card.Config) (out []byte, err error) {
	w, h := cfg.Size()
	defer g.rescue("stats", w, h, &out, &err)

	if cfg.Username == "" {
		return render.Error(card.ErrUsernameRequired.Error(), w, h), card.ErrUsernameRequired
	}

	start := time.Now()
	data, err := g.source.Fetch(ctx, cfg.Username)
	if err != nil {
		g.logger.Warn("Profile fetch failed",
			"username", cfg.Username, "source", g.source.Name(), "error", err)
		return render.Error(err.Error(), w, h), fmt.Errorf("fetch %s: %w", cfg.Username, err)
	}
	g.logger.Debug("Profile fetched",
		"username", cfg.Username, "source", g.source.Name(), "elapsed", time.Since(start))

	return render.Stats(cfg, data), nil
}

// Wave renders a wave banner.
func (g *Generator) Wave(cfg card.WaveConfig) (out []byte, err error) {
	defer g.rescue("wave", cfg.Width, cfg.Height, &out, &err)
	return render.Wave(cfg), nil
}

// Typing renders a typing animation.
func (g *Generator) Typing(cfg card.TypingConfig) (out []byte, err error) {
	defer g.rescue("typing", cfg.Width, cfg.Height, &out, &err)
	return render.Typing(cfg), nil
}

// Terminal renders a terminal window.
func (g *Generator) Terminal(cfg card.TerminalConfig) (out []byte, err error) {
	defer g.rescue("terminal", cfg.Width, cfg.Height, &out, &err)
	return render.Terminal(cfg), nil
}

// Loader renders a loading indicator.
func (g *Generator) Loader(cfg card.LoaderConfig) (out []byte, err error) {
	defer g.rescue("loader", cfg.Size, cfg.Size, &out, &err)
	return render.Loader(cfg), nil
}

// rescue converts a renderer panic into the error card.
func (g *Generator) rescue(kind string, width, height int, out *[]byte, err *error) {
	r := recover()
	if r == nil {
		return
	}
	g.logger.Error("Render panicked", "kind", kind, "panic", r)
	*err = fmt.Errorf("render %s: %v", kind, r)
	*out = render.Error((*err).Error(), width, height)
}

// ErrorCard renders err as an error card of the given size. Non-positive
// dimensions fall back to the stats card defaults.
func ErrorCard(err error, width, height int) []byte {
	return render.Error(err.Error(), width, height)
}
