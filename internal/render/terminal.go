package render

import (
	"time"

	"github.com/albapepper/readme-svg/internal/anim"
	"github.com/albapepper/readme-svg/internal/card"
	"github.com/albapepper/readme-svg/internal/svg"
	"github.com/albapepper/readme-svg/internal/theme"
)

const (
	titleBarH     = 32
	terminalPadX  = 20
	terminalLineH = 22
	terminalStep  = 500 * time.Millisecond
)

// Traffic-light colours are the same in every theme.
var windowDots = [3]string{"#ff5f56", "#ffbd2e", "#27c93f"}

// Terminal renders a terminal window printing each command after the
// prompt, followed by its paired output, one line at a time. The window
// grows to fit the content when the requested height is too small.
func Terminal(cfg card.TerminalConfig) []byte {
	p := theme.Resolve(cfg.Theme)
	w := cfg.Width
	if w <= 0 {
		w = card.DefaultTerminalWidth
	}
	h := cfg.MinHeight()
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = card.DefaultTerminalPrompt
	}

	lineCount := 0
	for i := range cfg.Commands {
		lineCount++
		if cfg.Output(i) != "" {
			lineCount++
		}
	}
	// One extra line for the idle prompt.
	h = max(h, titleBarH+terminalPadX+(lineCount+1)*terminalLineH+terminalPadX)

	tl := anim.NewTimeline(anim.DefaultBase, terminalStep)
	body := svg.Group("class", "terminal-body", "font-family", "'SF Mono',Menlo,Consolas,monospace", "font-size", 14)
	y := titleBarH + terminalPadX + 14
	for i, cmd := range cfg.Commands {
		body.Add(anim.Reveal(svg.Text("", "class", "command", "x", terminalPadX, "y", y).Add(
			svg.Span(prompt+" ", "fill", p.Success),
			svg.Span(cmd, "fill", p.TextPrimary),
		), anim.None, tl.Next()))
		y += terminalLineH

		if out := cfg.Output(i); out != "" {
			body.Add(anim.Reveal(svg.Text(out, "class", "output", "x", terminalPadX, "y", y, "fill", p.TextMuted),
				anim.None, tl.Next()))
			y += terminalLineH
		}
	}

	idle := tl.Next()
	body.Add(anim.Reveal(svg.Group("class", "idle").Add(
		svg.Text(prompt, "x", terminalPadX, "y", y, "fill", p.Success),
		svg.El("rect", "class", "cursor", "x", terminalPadX+len([]rune(prompt))*9+6, "y", y-12,
			"width", 8, "height", 16, "fill", p.TextPrimary).Add(
			svg.El("animate", "attributeName", "opacity", "values", "1;0;1",
				"dur", seconds(blinkPeriod), "begin", anim.Seconds(idle), "repeatCount", "indefinite"),
		),
	), anim.None, idle))

	chrome := svg.Group("class", "chrome").Add(
		svg.El("rect", "width", w, "height", h, "rx", 10, "fill", p.BgStart, "stroke", p.CardBorder),
		svg.El("path", "d", "M0 10 a10 10 0 0 1 10 -10 H"+svg.Num(float64(w-10))+
			" a10 10 0 0 1 10 10 V"+svg.Num(titleBarH)+" H0 Z", "fill", p.CardBg),
	)
	for i, c := range windowDots {
		chrome.Add(svg.El("circle", "cx", 20+i*20, "cy", titleBarH/2, "r", 6, "fill", c))
	}
	chrome.Add(svg.Text(cfg.Title, "class", "label", "x", float64(w)/2, "y", titleBarH/2+5,
		"text-anchor", "middle", "fill", p.TextMuted))

	return svg.Document(w, h,
		styleBlock(),
		chrome,
		body,
	)
}
