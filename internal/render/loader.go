package render

import (
	"math"
	"time"

	"github.com/albapepper/readme-svg/internal/card"
	"github.com/albapepper/readme-svg/internal/svg"
	"github.com/albapepper/readme-svg/internal/theme"
)

// Loader renders a square looping loading indicator of cfg.Size pixels on
// a transparent background.
func Loader(cfg card.LoaderConfig) []byte {
	size := cfg.Size
	if size <= 0 {
		size = card.DefaultLoaderSize
	}
	speed := cfg.Speed
	if speed <= 0 {
		speed = card.DefaultLoaderSpeed
	}
	p := theme.Resolve(cfg.Theme)
	color := cfg.Color
	if color == "" {
		color = p.Accent
	}

	var body *svg.Element
	switch cfg.Type {
	case card.LoaderDots:
		body = loaderDots(float64(size), color, speed)
	case card.LoaderBars:
		body = loaderBars(float64(size), color, speed)
	case card.LoaderPulse:
		body = loaderPulse(float64(size), color, p, speed)
	default:
		body = loaderSpinner(float64(size), color, p, speed)
	}
	return svg.Document(size, size, body)
}

func loaderSpinner(s float64, color string, p theme.Palette, speed time.Duration) *svg.Element {
	c := s / 2
	r := s*0.5 - s*0.1
	stroke := s * 0.1
	circ := 2 * math.Pi * r
	return svg.Group("class", "loader spinner").Add(
		svg.El("circle", "cx", c, "cy", c, "r", r, "fill", "none", "stroke", p.CardBorder, "stroke-width", stroke),
		svg.El("circle", "cx", c, "cy", c, "r", r, "fill", "none", "stroke", color, "stroke-width", stroke,
			"stroke-linecap", "round", "stroke-dasharray", svg.Num(circ*0.25)+" "+svg.Num(circ)).Add(
			svg.El("animateTransform", "attributeName", "transform", "type", "rotate",
				"from", "0 "+svg.Num(c)+" "+svg.Num(c), "to", "360 "+svg.Num(c)+" "+svg.Num(c),
				"dur", seconds(speed), "repeatCount", "indefinite"),
		),
	)
}

func loaderDots(s float64, color string, speed time.Duration) *svg.Element {
	g := svg.Group("class", "loader dots")
	r := s / 10
	for i := range 3 {
		cx := s/2 + float64(i-1)*s*0.3
		g.Add(svg.El("circle", "cx", cx, "cy", s/2, "r", r, "fill", color).Add(
			svg.El("animate", "attributeName", "opacity", "values", "0.2;1;0.2",
				"begin", seconds(speed*time.Duration(i)/3), "dur", seconds(speed), "repeatCount", "indefinite"),
		))
	}
	return g
}

func loaderBars(s float64, color string, speed time.Duration) *svg.Element {
	g := svg.Group("class", "loader bars")
	const n = 4
	barW := s / (2*n + 1)
	for i := range n {
		x := barW * float64(2*i+1)
		g.Add(svg.El("rect", "x", x, "y", s*0.25, "width", barW, "height", s*0.5, "rx", barW/3, "fill", color).Add(
			svg.El("animate", "attributeName", "height",
				"values", values(s*0.5, s*0.8, s*0.5),
				"begin", seconds(speed*time.Duration(i)/n), "dur", seconds(speed), "repeatCount", "indefinite"),
			svg.El("animate", "attributeName", "y",
				"values", values(s*0.25, s*0.1, s*0.25),
				"begin", seconds(speed*time.Duration(i)/n), "dur", seconds(speed), "repeatCount", "indefinite"),
		))
	}
	return g
}

func loaderPulse(s float64, color string, p theme.Palette, speed time.Duration) *svg.Element {
	c := s / 2
	g := svg.Group("class", "loader pulse")
	for i := range 2 {
		begin := seconds(speed * time.Duration(i) / 2)
		g.Add(svg.El("circle", "cx", c, "cy", c, "r", 0, "fill", "none", "stroke", color,
			"stroke-width", max(2, int(s/20))).Add(
			svg.El("animate", "attributeName", "r", "values", values(0, s*0.45),
				"begin", begin, "dur", seconds(speed), "repeatCount", "indefinite"),
			svg.El("animate", "attributeName", "opacity", "values", "1;0",
				"begin", begin, "dur", seconds(speed), "repeatCount", "indefinite"),
		))
	}
	g.Add(svg.El("circle", "cx", c, "cy", c, "r", s*0.12, "fill", p.Highlight(color)))
	return g
}
