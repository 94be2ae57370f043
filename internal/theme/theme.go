// Package theme holds the process-wide palette table and the shared SVG
// definitions (gradients, filters, background patterns) built from it.
//
// All tables are package-level values populated at init and never written
// afterwards, so concurrent readers need no locking.
package theme

import (
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme names accepted on the wire.
const (
	Dark  = "dark"
	Light = "light"
	Auto  = "auto"
)

// Palette is the colour set for one theme.
type Palette struct {
	Name string

	BgStart string
	BgEnd   string

	CardBg     string
	CardBorder string

	TextPrimary   string
	TextSecondary string
	TextMuted     string

	Accent    string
	AccentAlt string
	Success   string
	Warning   string

	Pattern string
	Neutral string
	Shadow  string

	GlassOpacity   float64
	DotOpacity     float64
	LineOpacity    float64
	ShadowOpacity  float64
	HighlightBlend float64
}

var palettes = map[string]Palette{
	Dark: {
		Name:           Dark,
		BgStart:        "#0d1117",
		BgEnd:          "#161b22",
		CardBg:         "#21262d",
		CardBorder:     "#30363d",
		TextPrimary:    "#f0f6fc",
		TextSecondary:  "#c9d1d9",
		TextMuted:      "#8b949e",
		Accent:         "#58a6ff",
		AccentAlt:      "#bc8cff",
		Success:        "#3fb950",
		Warning:        "#f85149",
		Pattern:        "#30363d",
		Neutral:        "#8b949e",
		Shadow:         "#010409",
		GlassOpacity:   0.6,
		DotOpacity:     0.4,
		LineOpacity:    0.15,
		ShadowOpacity:  0.5,
		HighlightBlend: 0.35,
	},
	Light: {
		Name:           Light,
		BgStart:        "#ffffff",
		BgEnd:          "#f6f8fa",
		CardBg:         "#ffffff",
		CardBorder:     "#d0d7de",
		TextPrimary:    "#1f2328",
		TextSecondary:  "#424a53",
		TextMuted:      "#656d76",
		Accent:         "#0969da",
		AccentAlt:      "#8250df",
		Success:        "#1a7f37",
		Warning:        "#cf222e",
		Pattern:        "#d0d7de",
		Neutral:        "#6e7781",
		Shadow:         "#8c959f",
		GlassOpacity:   0.85,
		DotOpacity:     0.5,
		LineOpacity:    0.2,
		ShadowOpacity:  0.2,
		HighlightBlend: 0.45,
	},
}

// Resolve returns the palette for name. "auto" is dark by rule, and so is
// anything unrecognised.
func Resolve(name string) Palette {
	if p, ok := palettes[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p
	}
	return palettes[Dark]
}

// Canonical maps a requested theme name to the palette name it renders as.
func Canonical(name string) string {
	return Resolve(name).Name
}

// Known reports whether name is an accepted theme value (including auto).
func Known(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == Auto {
		return true
	}
	_, ok := palettes[n]
	return ok
}

// Names lists the concrete palette names, sorted.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Highlight lightens hex toward white by the palette's blend factor. Used
// for the shine layer on progress bars and gradient end stops. Invalid
// input is returned unchanged.
func (p Palette) Highlight(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	return c.BlendLab(white, p.HighlightBlend).Clamped().Hex()
}

// ParseHex normalizes a user-supplied colour ("#abc", "abc", "#aabbcc") to
// "#aabbcc". ok is false for anything that is not a hex colour.
func ParseHex(s string) (string, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return "", false
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}
