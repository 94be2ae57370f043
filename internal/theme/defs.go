package theme

import (
	"github.com/albapepper/readme-svg/internal/svg"
)

// Element ids defined by Defs. Renderers reference them with url(#...).
const (
	BackgroundGradientID = "bg-gradient"
	AccentGradientID     = "accent-gradient"
	CardGradientID       = "card-gradient"
	GlassFilterID        = "glass"
	ShadowFilterID       = "shadow"
	GlowFilterID         = "glow"
	DotPatternID         = "dot-grid"
	LinePatternID        = "line-grid"
)

// Defs builds the <defs> block shared by every card: background and accent
// gradients, glass/shadow/glow filters and the two background patterns.
func Defs(p Palette) *svg.Element {
	return svg.El("defs").Add(
		linearGradient(BackgroundGradientID, p.BgStart, p.BgEnd, "0%", "0%", "100%", "100%"),
		linearGradient(AccentGradientID, p.Accent, p.AccentAlt, "0%", "0%", "100%", "0%"),
		svg.El("linearGradient", "id", CardGradientID, "x1", "0%", "y1", "0%", "x2", "0%", "y2", "100%").Add(
			svg.El("stop", "offset", "0%", "stop-color", p.CardBg, "stop-opacity", p.GlassOpacity),
			svg.El("stop", "offset", "100%", "stop-color", p.CardBg, "stop-opacity", p.GlassOpacity*0.7),
		),
		svg.El("filter", "id", GlassFilterID, "x", "-10%", "y", "-10%", "width", "120%", "height", "120%").Add(
			svg.El("feGaussianBlur", "in", "SourceGraphic", "stdDeviation", 0.5, "result", "blur"),
			svg.El("feMerge").Add(
				svg.El("feMergeNode", "in", "blur"),
				svg.El("feMergeNode", "in", "SourceGraphic"),
			),
		),
		svg.El("filter", "id", ShadowFilterID, "x", "-20%", "y", "-20%", "width", "140%", "height", "140%").Add(
			svg.El("feDropShadow", "dx", 0, "dy", 4, "stdDeviation", 6,
				"flood-color", p.Shadow, "flood-opacity", p.ShadowOpacity),
		),
		svg.El("filter", "id", GlowFilterID).Add(
			svg.El("feGaussianBlur", "stdDeviation", 2, "result", "coloredBlur"),
			svg.El("feMerge").Add(
				svg.El("feMergeNode", "in", "coloredBlur"),
				svg.El("feMergeNode", "in", "SourceGraphic"),
			),
		),
		svg.El("pattern", "id", DotPatternID, "width", 20, "height", 20, "patternUnits", "userSpaceOnUse").Add(
			svg.El("circle", "cx", 2, "cy", 2, "r", 1, "fill", p.Pattern),
		),
		svg.El("pattern", "id", LinePatternID, "width", 40, "height", 40, "patternUnits", "userSpaceOnUse").Add(
			svg.El("path", "d", "M 40 0 L 0 0 0 40", "fill", "none", "stroke", p.Pattern, "stroke-width", 0.5),
		),
	)
}

// Background fills width×height with the gradient and lays both patterns
// over it at the palette's opacities.
func Background(p Palette, width, height int, radius float64) *svg.Element {
	return svg.Group("class", "background").Add(
		svg.El("rect", "width", width, "height", height, "rx", radius, "fill", url(BackgroundGradientID)),
		svg.El("rect", "width", width, "height", height, "rx", radius, "fill", url(DotPatternID), "opacity", p.DotOpacity),
		svg.El("rect", "width", width, "height", height, "rx", radius, "fill", url(LinePatternID), "opacity", p.LineOpacity),
		svg.El("rect", "x", 0.5, "y", 0.5, "width", width-1, "height", height-1, "rx", radius,
			"fill", "none", "stroke", p.CardBorder),
	)
}

// URL returns the url(#id) reference for a def id.
func URL(id string) string { return url(id) }

func url(id string) string { return "url(#" + id + ")" }

func linearGradient(id, from, to, x1, y1, x2, y2 string) *svg.Element {
	return svg.El("linearGradient", "id", id, "x1", x1, "y1", y1, "x2", x2, "y2", y2).Add(
		svg.El("stop", "offset", "0%", "stop-color", from),
		svg.El("stop", "offset", "100%", "stop-color", to),
	)
}
