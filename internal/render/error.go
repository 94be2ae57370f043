package render

import (
	"github.com/albapepper/readme-svg/internal/card"
	"github.com/albapepper/readme-svg/internal/svg"
	"github.com/albapepper/readme-svg/internal/theme"
)

const (
	errorTitle = "Oops! Something went wrong"
	errorHint  = "Check the parameters and try again in a few minutes."
)

// Error renders the fallback card shown whenever anything upstream fails.
// It never fails and never inspects message beyond escaping it as text.
// Non-positive sizes use the renderer defaults.
func Error(message string, width, height int) []byte {
	if width <= 0 {
		width = card.DefaultWidth
	}
	if height <= 0 {
		height = card.RendererDefaultHeight
	}
	p := theme.Resolve(theme.Dark)
	w, h := float64(width), float64(height)
	cx, cy := w/2, h/2

	circles := svg.Group("class", "error-decor", "opacity", 0.12).Add(
		svg.El("circle", "cx", w*0.1, "cy", h*0.15, "r", 60, "fill", p.Warning),
		svg.El("circle", "cx", w*0.9, "cy", h*0.2, "r", 40, "fill", p.Accent),
		svg.El("circle", "cx", w*0.15, "cy", h*0.85, "r", 45, "fill", p.AccentAlt),
		svg.El("circle", "cx", w*0.85, "cy", h*0.8, "r", 70, "fill", p.Warning),
	)

	icon := svg.Group("class", "error-icon", "transform", translate(cx-24, cy-110)).Add(
		svg.El("path", "d", "M24 2 L46 42 H2 Z", "fill", "none", "stroke", p.Warning,
			"stroke-width", 3, "stroke-linejoin", "round"),
		svg.El("rect", "x", 22.5, "y", 14, "width", 3, "height", 16, "rx", 1.5, "fill", p.Warning),
		svg.El("circle", "cx", 24, "cy", 35, "r", 2, "fill", p.Warning),
	)

	return svg.Document(width, height,
		styleBlock(),
		theme.Defs(p),
		theme.Background(p, width, height, cornerRadius),
		circles,
		icon,
		svg.Text(errorTitle, "class", "title", "x", cx, "y", cy-20, "text-anchor", "middle", "fill", p.TextPrimary),
		svg.Text(message, "class", "label error-message", "x", cx, "y", cy+15,
			"text-anchor", "middle", "fill", p.Warning),
		svg.Text(errorHint, "class", "meta", "x", cx, "y", cy+45, "text-anchor", "middle", "fill", p.TextMuted),
	)
}
