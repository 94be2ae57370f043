package render

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/readme-svg/internal/anim"
	"github.com/albapepper/readme-svg/internal/card"
	"github.com/albapepper/readme-svg/internal/svg"
	"github.com/albapepper/readme-svg/internal/theme"
)

const waveSamples = 64

// Wave renders a banner: cfg.Text and an optional subtitle over cfg.Waves
// translucent sine layers that scroll horizontally forever.
func Wave(cfg card.WaveConfig) []byte {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = card.DefaultWaveWidth
	}
	if h <= 0 {
		h = card.DefaultWaveHeight
	}
	n := max(1, min(cfg.Waves, card.MaxWaves))
	p := theme.Resolve(cfg.Theme)
	speed := cfg.Speed
	if speed <= 0 {
		speed = card.DefaultWaveSpeed
	}
	color := cfg.Color
	if color == "" {
		color = p.Accent
	}

	layers := svg.Group("class", "waves")
	for i := range n {
		layers.Add(waveLayer(i, n, w, h, color, p, speed))
	}

	fontSize := max(18, min(h/4, 56))
	tl := anim.NewTimeline(anim.DefaultBase, anim.DefaultStep)
	title := anim.Reveal(svg.Text(cfg.Text,
		"class", "title", "x", float64(w)/2, "y", float64(h)*0.42,
		"text-anchor", "middle", "style", fontStyle(fontSize), "fill", p.TextPrimary, "filter", theme.URL(theme.GlowFilterID),
	), anim.None, tl.Next())

	var subtitle *svg.Element
	if cfg.Subtitle != "" {
		subtitle = anim.Reveal(svg.Text(cfg.Subtitle,
			"class", "label", "x", float64(w)/2, "y", float64(h)*0.42+float64(fontSize)*0.8,
			"text-anchor", "middle", "fill", p.TextSecondary,
		), anim.None, tl.Next())
	}

	return svg.Document(w, h,
		styleBlock(),
		theme.Defs(p),
		svg.El("rect", "width", w, "height", h, "rx", cornerRadius, "fill", theme.URL(theme.BackgroundGradientID)),
		layers,
		title,
		subtitle,
	)
}

// waveLayer draws one layer twice as wide as the canvas; it scrolls left by
// exactly one canvas width per cycle, and every layer has a whole number of
// periods per width, so the loop is seamless.
func waveLayer(i, n, w, h int, color string, p theme.Palette, speed time.Duration) *svg.Element {
	fw, fh := float64(w), float64(h)
	periods := float64(i + 2)
	amp := fh * (0.05 + 0.02*float64(i))
	base := fh * (0.62 + 0.1*float64(i)/float64(n))
	phase := float64(i) * math.Pi / 3

	var d strings.Builder
	d.WriteString("M0 " + svg.Num(fh))
	for s := 0; s <= 2*waveSamples; s++ {
		x := fw * float64(s) / waveSamples
		y := base + amp*math.Sin(2*math.Pi*periods*x/fw+phase)
		d.WriteString(" L" + svg.Num(x) + " " + svg.Num(y))
	}
	d.WriteString(" L" + svg.Num(2*fw) + " " + svg.Num(fh) + " Z")

	fill := color
	if i%2 == 1 {
		fill = p.Highlight(color)
	}
	// Each layer runs a quarter slower than the one before it.
	dur := anim.Seconds(speed + time.Duration(i)*speed/4)
	return svg.El("path", "class", "wave", "d", d.String(), "fill", fill,
		"opacity", 0.5-0.35*float64(i)/float64(max(n, 2)),
	).Add(svg.El("animateTransform",
		"attributeName", "transform",
		"type", "translate",
		"from", "0 0",
		"to", svg.Num(-fw)+" 0",
		"dur", dur,
		"repeatCount", "indefinite",
	))
}

// fontStyle overrides the class font size; CSS beats presentation
// attributes, so a plain font-size attribute would be ignored.
func fontStyle(px int) string {
	return "font-size:" + strconv.Itoa(px) + "px"
}
