// Package card defines the stats card request (GeneratorConfig) and the
// metric lookup table shared by the parser and the renderer.
package card

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/albapepper/readme-svg/internal/anim"
	"github.com/albapepper/readme-svg/internal/layout"
	"github.com/albapepper/readme-svg/internal/theme"
)

// Canvas defaults. Query parsing uses RouteDefaultHeight; a config that
// reaches the renderer with no height gets RendererDefaultHeight. Both are
// kept because existing embeds depend on each.
const (
	DefaultWidth          = 920
	RouteDefaultHeight    = 650
	RendererDefaultHeight = 600
	DefaultMetrics        = "commits,prs,issues,stars"
	DefaultTheme          = theme.Dark
	DefaultAnimation      = string(anim.CountUp)
)

// ErrUsernameRequired is returned when the username parameter is absent.
var ErrUsernameRequired = errors.New("Username parameter is required")

// Config is one stats card request. It is built per request and not
// modified afterwards.
type Config struct {
	Username  string
	Metrics   []MetricKey
	Theme     string
	Animation anim.Kind
	Width     int
	Height    int
	// ShowAvatar switches the identity block between the avatar layout
	// and the text-only layout.
	ShowAvatar bool
	// GradientType is accepted and carried through but not rendered.
	GradientType string
}

// ParseParams builds a Config from flat query parameters, applying the
// route-layer defaults. On error the returned Config still carries the
// requested canvas size so the error card can match it.
func ParseParams(params map[string]string) (Config, error) {
	username := strings.TrimSpace(params["username"])
	if username == "" {
		return Config{
			Width:  dimension(params["width"], DefaultWidth),
			Height: dimension(params["height"], RouteDefaultHeight),
		}, ErrUsernameRequired
	}

	metrics := params["metrics"]
	if strings.TrimSpace(metrics) == "" {
		metrics = DefaultMetrics
	}

	themeName := strings.TrimSpace(params["theme"])
	if themeName == "" {
		themeName = DefaultTheme
	}

	animation := params["animation"]
	if strings.TrimSpace(animation) == "" {
		animation = DefaultAnimation
	}

	return Config{
		Username:     username,
		Metrics:      SplitMetrics(metrics),
		Theme:        themeName,
		Animation:    anim.ParseKind(animation),
		Width:        dimension(params["width"], DefaultWidth),
		Height:       dimension(params["height"], RouteDefaultHeight),
		ShowAvatar:   params["showAvatar"] != "false",
		GradientType: params["gradientType"],
	}, nil
}

// SplitMetrics splits a comma-joined metric list, dropping blanks.
func SplitMetrics(s string) []MetricKey {
	parts := strings.Split(s, ",")
	out := make([]MetricKey, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, MetricKey(p))
		}
	}
	return out
}

// StatMetrics returns the definitions for the first layout.MaxStatCards
// recognized keys, in request order. Unknown keys are skipped.
func (c Config) StatMetrics() []Metric {
	out := make([]Metric, 0, layout.MaxStatCards)
	for _, k := range c.Metrics {
		if len(out) == layout.MaxStatCards {
			break
		}
		if m, ok := LookupMetric(k); ok {
			out = append(out, m)
		}
	}
	return out
}

// Size returns the canvas size with renderer defaults applied.
func (c Config) Size() (width, height int) {
	width, height = c.Width, c.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = RendererDefaultHeight
	}
	return width, height
}

// CacheKey is a stable fingerprint of everything that affects the output.
func (c Config) CacheKey() string {
	w, h := c.Size()
	keys := make([]string, 0, len(c.Metrics))
	for _, m := range c.StatMetrics() {
		keys = append(keys, string(m.Key))
	}
	fields := map[string]string{
		"u":  strings.ToLower(c.Username),
		"m":  strings.Join(keys, ","),
		"t":  theme.Canonical(c.Theme),
		"a":  string(c.Animation),
		"w":  strconv.Itoa(w),
		"h":  strconv.Itoa(h),
		"av": strconv.FormatBool(c.ShowAvatar),
	}
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	sort.Strings(names)
	var b strings.Builder
	b.WriteString("stats")
	for _, k := range names {
		b.WriteByte(':')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fields[k])
	}
	return b.String()
}

func dimension(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
