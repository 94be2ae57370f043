// Package anim schedules staggered reveal animations and builds the SMIL
// elements that implement them.
//
// Reveal order is fixed (identity, stat cards, language chart, contribution
// panel, footer) and independent of the animation kind; the kind only
// changes what accompanies each reveal.
package anim

import (
	"strings"
	"time"

	"github.com/albapepper/readme-svg/internal/svg"
)

// Kind selects the decoration played alongside each reveal.
type Kind string

const (
	CountUp Kind = "countUp"
	SlideIn Kind = "slideIn"
	Pulse   Kind = "pulse"
	None    Kind = "none"
)

// Timing defaults.
const (
	DefaultBase     = 200 * time.Millisecond
	DefaultStep     = 150 * time.Millisecond
	RevealDuration  = 600 * time.Millisecond
	SlideDistance   = 20
	PulseDuration   = 2 * time.Second
	minStep         = time.Millisecond
	avatarFadeDelay = 300 * time.Millisecond
)

// ParseKind maps a wire value to a Kind. Matching is case-insensitive;
// anything unrecognised becomes None.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "countup":
		return CountUp
	case "slidein":
		return SlideIn
	case "pulse":
		return Pulse
	default:
		return None
	}
}

// Sequence returns count start offsets beginning at base and spaced by
// step. Offsets are strictly increasing; a non-positive step is raised to
// one millisecond to keep that guarantee.
func Sequence(base time.Duration, count int, step time.Duration) []time.Duration {
	if count <= 0 {
		return nil
	}
	if step < minStep {
		step = minStep
	}
	out := make([]time.Duration, count)
	for i := range out {
		out[i] = base + time.Duration(i)*step
	}
	return out
}

// Timeline hands out strictly increasing offsets across sections, so
// elements drawn later in reading order always start later.
type Timeline struct {
	next time.Duration
	step time.Duration
}

// NewTimeline starts a timeline at base.
func NewTimeline(base, step time.Duration) *Timeline {
	if step < minStep {
		step = minStep
	}
	return &Timeline{next: base, step: step}
}

// Next returns the next start offset.
func (t *Timeline) Next() time.Duration {
	return t.Take(1)[0]
}

// Take reserves n consecutive offsets.
func (t *Timeline) Take(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	seq := Sequence(t.next, n, t.step)
	t.next = seq[n-1] + t.step
	return seq
}

// Seconds formats d as an SMIL clock value ("0.35s").
func Seconds(d time.Duration) string {
	return svg.Num(d.Seconds()) + "s"
}

// Reveal makes el start hidden and fade in at begin, adding the decoration
// that kind calls for. The slide is added to el's own transform, so
// positioned groups end where the layout put them. It returns el for
// chaining.
func Reveal(el *svg.Element, kind Kind, begin time.Duration) *svg.Element {
	el.Set("opacity", 0)
	el.Add(fadeIn(begin))
	switch kind {
	case SlideIn:
		el.Add(svg.El("animateTransform",
			"attributeName", "transform",
			"type", "translate",
			"from", "0 "+svg.Num(SlideDistance),
			"to", "0 0",
			"begin", Seconds(begin),
			"dur", Seconds(RevealDuration),
			"fill", "freeze",
			"additive", "sum",
		))
	case Pulse:
		el.Add(svg.El("animate",
			"attributeName", "opacity",
			"values", "1;0.7;1",
			"begin", Seconds(begin+RevealDuration),
			"dur", Seconds(PulseDuration),
			"repeatCount", "indefinite",
		))
	}
	return el
}

// ValueText is the text shown for an animated numeric value. countUp has no
// scripting to interpolate with, so it shows a literal "0" while the
// reveal plays.
func ValueText(kind Kind, formatted string) string {
	if kind == CountUp {
		return "0"
	}
	return formatted
}

// DelayedFade fades an element in after the default avatar delay relative
// to begin; used for images that load after their frame.
func DelayedFade(el *svg.Element, begin time.Duration) *svg.Element {
	el.Set("opacity", 0)
	return el.Add(fadeIn(begin + avatarFadeDelay))
}

func fadeIn(begin time.Duration) *svg.Element {
	return svg.El("animate",
		"attributeName", "opacity",
		"from", 0,
		"to", 1,
		"begin", Seconds(begin),
		"dur", Seconds(RevealDuration),
		"fill", "freeze",
	)
}
