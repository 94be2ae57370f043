package render

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/albapepper/readme-svg/internal/card"
	"github.com/albapepper/readme-svg/internal/svg"
	"github.com/albapepper/readme-svg/internal/theme"
)

const (
	// monoAdvance is the advance width of one monospace glyph per pixel of
	// font size.
	monoAdvance  = 0.6
	typingInsetX = 20
	cursorWidth  = 2
	blinkPeriod  = time.Second
)

// Typing renders lines typed out one after another. Each line gets an equal
// slot of Duration+Pause in a shared cycle that loops forever: it types in
// over Duration, holds for Pause, then clears.
func Typing(cfg card.TypingConfig) []byte {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = card.DefaultTypingWidth
	}
	if h <= 0 {
		h = card.DefaultTypingHeight
	}
	fontSize := cfg.FontSize
	if fontSize <= 0 {
		fontSize = card.DefaultTypingFontSize
	}
	typeDur, pause := cfg.Duration, cfg.Pause
	if typeDur <= 0 {
		typeDur = card.DefaultTypingDuration
	}
	if pause < 0 {
		pause = 0
	}
	p := theme.Resolve(cfg.Theme)
	color := cfg.Color
	if color == "" {
		color = p.TextPrimary
	}

	slot := typeDur + pause
	cycle := slot * time.Duration(max(len(cfg.Lines), 1))
	baseline := float64(h)/2 + float64(fontSize)*0.35

	defs := theme.Defs(p)
	lines := svg.Group("class", "typing", "font-family", "'SF Mono',Menlo,Consolas,monospace",
		"style", fontStyle(fontSize))
	for i, line := range cfg.Lines {
		textW := float64(utf8.RuneCountInString(line)) * float64(fontSize) * monoAdvance
		x := float64(typingInsetX)
		if cfg.Center {
			x = (float64(w) - textW) / 2
		}
		start := time.Duration(i) * slot
		keys := keyTimes(0, start, start+typeDur, start+slot, start+slot, cycle)
		clipID := "typing-clip-" + strconv.Itoa(i)

		defs.Add(svg.El("clipPath", "id", clipID).Add(
			svg.El("rect", "x", x, "y", 0, "width", 0, "height", h).Add(
				loop("width", values(0, 0, textW, textW, 0, 0), keys, cycle),
			),
		))

		cursorX := values(x, x, x+textW, x+textW, x, x)
		lines.Add(svg.Group("class", "typing-line").Add(
			svg.Text(line, "x", x, "y", baseline, "fill", color, "clip-path", theme.URL(clipID)),
			svg.El("rect", "class", "cursor", "x", x, "y", baseline-float64(fontSize)*0.8,
				"width", cursorWidth, "height", fontSize, "fill", p.Accent, "opacity", 0).Add(
				loop("x", cursorX, keys, cycle),
				svg.El("animate", "attributeName", "opacity", "calcMode", "discrete",
					"values", "0;1;0;0",
					"keyTimes", keyTimes(0, start, start+slot, cycle),
					"dur", seconds(cycle), "repeatCount", "indefinite"),
				svg.El("animate", "attributeName", "fill-opacity", "values", "1;0;1",
					"dur", seconds(blinkPeriod), "repeatCount", "indefinite"),
			),
		))
	}

	return svg.Document(w, h,
		defs,
		svg.El("rect", "width", w, "height", h, "rx", 8, "fill", theme.URL(theme.BackgroundGradientID)),
		lines,
	)
}

func loop(attr, vals, keys string, cycle time.Duration) *svg.Element {
	return svg.El("animate", "attributeName", attr, "values", vals, "keyTimes", keys,
		"dur", seconds(cycle), "repeatCount", "indefinite")
}

// keyTimes expresses offsets as fractions of the whole cycle, the last
// argument. Equal neighbours produce an instant jump.
func keyTimes(offsets ...time.Duration) string {
	cycle := offsets[len(offsets)-1]
	parts := make([]string, 0, len(offsets)-1)
	for _, o := range offsets[:len(offsets)-1] {
		parts = append(parts, fraction(o, cycle))
	}
	parts = append(parts, "1")
	return strings.Join(parts, ";")
}

func fraction(d, total time.Duration) string {
	if total <= 0 {
		return "0"
	}
	s := strconv.FormatFloat(float64(d)/float64(total), 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func values(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = svg.Num(v)
	}
	return strings.Join(parts, ";")
}

// seconds formats d as an SMIL clock value to the millisecond.
func seconds(d time.Duration) string {
	return strconv.FormatFloat(float64(d.Milliseconds())/1000, 'f', -1, 64) + "s"
}
