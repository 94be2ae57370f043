// Package render turns validated configs and profile data into complete,
// self-contained SVG documents.
//
// Renderers are pure: no I/O, no shared mutable state, and the same input
// always produces the same bytes. They are safe to call concurrently.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/readme-svg/internal/anim"
	"github.com/albapepper/readme-svg/internal/card"
	"github.com/albapepper/readme-svg/internal/format"
	"github.com/albapepper/readme-svg/internal/layout"
	"github.com/albapepper/readme-svg/internal/profile"
	"github.com/albapepper/readme-svg/internal/svg"
	"github.com/albapepper/readme-svg/internal/theme"
)

const (
	padding         = 30
	cornerRadius    = 16
	bioMaxChars     = 60
	maxChartEntries = 5
	locationUnknown = "Worldwide"
	attribution     = "Generated by readme-svg"
	noLanguagesText = "No languages detected"

	identityTop   = 30
	statGridTop   = 170
	languagesTop  = 320
	languageRowsY = 345
	placeholderH  = 60
	avatarRadius  = 40
	avatarCX      = padding + avatarRadius + 10
	avatarCY      = identityTop + avatarRadius + 20
	avatarClipID  = "avatar-clip"
	chartBarInset = 20
)

// statsView carries everything the section builders read.
type statsView struct {
	cfg      card.Config
	data     profile.Stats
	palette  theme.Palette
	width    int
	height   int
	timeline *anim.Timeline
}

// Stats renders the profile statistics card.
func Stats(cfg card.Config, data profile.Stats) []byte {
	w, h := cfg.Size()
	v := &statsView{
		cfg:      cfg,
		data:     data,
		palette:  theme.Resolve(cfg.Theme),
		width:    w,
		height:   h,
		timeline: anim.NewTimeline(anim.DefaultBase, anim.DefaultStep),
	}

	// Reveal offsets are handed out in reading order, so section builders
	// must run top to bottom.
	identity := v.identity()
	stats := v.statGrid()
	langs := v.languageChart()
	contrib := v.contribution()
	footer := v.footer()

	return svg.Document(w, h,
		styleBlock(),
		v.defs(),
		theme.Background(v.palette, w, h, cornerRadius),
		identity,
		stats,
		langs,
		contrib,
		footer,
	)
}

// defs extends the shared theme defs with the avatar clip path.
func (v *statsView) defs() *svg.Element {
	d := theme.Defs(v.palette)
	d.Add(svg.El("clipPath", "id", avatarClipID).Add(
		svg.El("circle", "cx", avatarCX, "cy", avatarCY, "r", avatarRadius),
	))
	return d
}

func (v *statsView) identity() *svg.Element {
	p := v.palette
	id := v.data.Identity
	begin := v.timeline.Next()
	g := svg.Group("class", "identity")

	textX := padding
	if v.cfg.ShowAvatar {
		g.Add(
			svg.El("circle", "cx", avatarCX, "cy", avatarCY, "r", avatarRadius+4,
				"fill", "none", "stroke", theme.URL(theme.AccentGradientID), "stroke-width", 3),
			svg.El("circle", "cx", avatarCX, "cy", avatarCY, "r", avatarRadius, "fill", p.CardBg),
			anim.DelayedFade(svg.El("image",
				"href", id.AvatarURL,
				"x", avatarCX-avatarRadius, "y", avatarCY-avatarRadius,
				"width", 2*avatarRadius, "height", 2*avatarRadius,
				"clip-path", theme.URL(avatarClipID),
				"preserveAspectRatio", "xMidYMid slice",
			), begin),
			svg.El("circle", "class", "status-dot", "cx", avatarCX+28, "cy", avatarCY+28, "r", 7,
				"fill", p.Success, "stroke", p.CardBg, "stroke-width", 3),
		)
		textX = avatarCX + avatarRadius + 30
	}

	g.Add(
		svg.Text(id.Name, "class", "title", "x", textX, "y", identityTop+38, "fill", p.TextPrimary),
		svg.Text("@"+id.Username, "class", "label", "x", textX, "y", identityTop+62, "fill", p.Accent),
	)

	metaY := identityTop + 86
	if id.Bio != nil && strings.TrimSpace(*id.Bio) != "" {
		g.Add(svg.Text(format.Truncate(*id.Bio, bioMaxChars),
			"class", "meta bio", "x", textX, "y", identityTop+86, "fill", p.TextSecondary))
		metaY = identityTop + 108
	}
	g.Add(svg.Text(v.metaLine(), "class", "meta", "x", textX, "y", metaY, "fill", p.TextMuted))

	return anim.Reveal(g, v.cfg.Animation, begin)
}

// metaLine is "Joined 2015 · Berlin · 1.2K views".
func (v *statsView) metaLine() string {
	id := v.data.Identity
	location := locationUnknown
	if id.Location != nil && *id.Location != "" {
		location = *id.Location
	}
	return fmt.Sprintf("Joined %d · %s · %s views",
		id.JoinedYear, location, format.Number(v.data.Counts.ProfileViews))
}

func (v *statsView) statGrid() *svg.Element {
	metrics := v.cfg.StatMetrics()
	cells := layout.StatGrid(v.width, len(metrics))
	begins := v.timeline.Take(len(cells))

	originX := (float64(v.width) - layout.GridWidth(cells)) / 2
	g := svg.Group("class", "stats", "transform", translate(originX, statGridTop))
	for i, c := range cells {
		g.Add(v.statCard(metrics[i], c, begins[i]))
	}
	return g
}

func (v *statsView) statCard(m card.Metric, c layout.Cell, begin time.Duration) *svg.Element {
	p := v.palette
	accent := accentColor(p, m.AccentIndex)
	mid := c.Width / 2
	kind := v.cfg.Animation

	value := svg.Text(anim.ValueText(kind, format.Number(m.Value(v.data))),
		"class", "value", "x", mid, "y", 78, "text-anchor", "middle", "fill", p.TextPrimary)
	if kind == anim.CountUp {
		anim.Reveal(value, anim.None, begin)
	}

	g := svg.Group("class", "stat-card", "data-metric", string(m.Key), "transform", translate(c.X, 0))
	g.Add(
		svg.El("rect", "width", c.Width, "height", c.Height, "rx", 12,
			"fill", theme.URL(theme.CardGradientID), "stroke", p.CardBorder,
			"filter", theme.URL(theme.ShadowFilterID)),
		svg.El("rect", "class", "accent-strip", "x", 12, "y", 0, "width", c.Width-24, "height", 4,
			"rx", 2, "fill", accent),
		svg.El("path", "d", m.Icon, "fill", accent,
			"transform", translate(mid-12, 22)+" scale(1.5)"),
		value,
		svg.Text(m.Label, "class", "label", "x", mid, "y", 102, "text-anchor", "middle", "fill", p.TextMuted),
	)
	return anim.Reveal(g, kind, begin)
}

func (v *statsView) languageChart() *svg.Element {
	p := v.palette
	g := svg.Group("class", "languages")
	g.Add(svg.Text("Most Used Languages", "class", "label", "x", padding, "y", languagesTop, "fill", p.TextSecondary))

	langs := v.data.TopLanguages
	if len(langs) == 0 {
		begin := v.timeline.Next()
		w := 300.0
		x := (float64(v.width) - w) / 2
		ph := svg.Group("class", "languages-empty").Add(
			svg.El("rect", "x", x, "y", languageRowsY-20, "width", w, "height", placeholderH, "rx", 12,
				"fill", theme.URL(theme.CardGradientID), "stroke", p.CardBorder, "stroke-dasharray", "4 4"),
			svg.Text(noLanguagesText, "class", "label", "x", float64(v.width)/2, "y", languageRowsY+15,
				"text-anchor", "middle", "fill", p.TextMuted),
		)
		return g.Add(anim.Reveal(ph, v.cfg.Animation, begin))
	}

	if len(langs) > maxChartEntries {
		langs = langs[:maxChartEntries]
	}
	slots := layout.LanguageRows(len(langs))
	begins := v.timeline.Take(len(slots))
	for i, s := range slots {
		g.Add(v.languageEntry(langs[i], s, begins[i]))
	}
	return g
}

func (v *statsView) languageEntry(l profile.LanguageShare, s layout.LanguageSlot, begin time.Duration) *svg.Element {
	p := v.palette
	color := theme.LanguageColor(l.Name, p)
	bar := layout.BarWidth(float64(l.Percentage), layout.DefaultBarWidth)
	x := padding + s.X
	y := languageRowsY + s.Y - 10

	g := svg.Group("class", "lang-entry", "transform", translate(float64(x), float64(y)))
	g.Add(
		svg.El("circle", "cx", 6, "cy", 6, "r", 6, "fill", color),
		svg.Text(l.Name, "class", "label", "x", chartBarInset, "y", 10, "fill", p.TextSecondary),
		svg.Text(strconv.Itoa(l.Percentage)+"%", "class", "meta",
			"x", chartBarInset+layout.DefaultBarWidth, "y", 10, "text-anchor", "end", "fill", p.TextMuted),
		svg.El("rect", "class", "bar-track", "x", chartBarInset, "y", 18,
			"width", layout.DefaultBarWidth, "height", 8, "rx", 4, "fill", p.CardBorder, "opacity", 0.5),
		svg.El("rect", "class", "bar-fill", "x", chartBarInset, "y", 18,
			"width", bar, "height", 8, "rx", 4, "fill", color),
		svg.El("rect", "class", "bar-shine", "x", chartBarInset, "y", 18,
			"width", bar, "height", 4, "rx", 2, "fill", p.Highlight(color), "opacity", 0.35),
	)
	return anim.Reveal(g, v.cfg.Animation, begin)
}

// contributionTop places the insights panel below however many language
// rows were drawn.
func (v *statsView) contributionTop() int {
	rows := layout.RowCount(min(len(v.data.TopLanguages), maxChartEntries))
	body := rows * layout.LanguageRowH
	if rows == 0 {
		body = placeholderH
	}
	return languageRowsY + body + 30
}

func (v *statsView) contribution() *svg.Element {
	p := v.palette
	c := v.data.Contribution
	begin := v.timeline.Next()
	top := v.contributionTop()

	fields := []struct{ label, value string }{
		{"Current Streak", fmt.Sprintf("%d days", c.CurrentStreakDays)},
		{"Longest Streak", fmt.Sprintf("%d days", c.LongestStreakDays)},
		{"Total Contributions", format.Number(c.TotalContributions)},
		{"Avg Commits/Day", c.AvgCommitsPerDay},
	}

	colW := float64(v.width-2*padding) / float64(len(fields))
	g := svg.Group("class", "contribution", "transform", translate(padding, float64(top)))
	g.Add(svg.El("rect", "width", v.width-2*padding, "height", 64, "rx", 12,
		"fill", theme.URL(theme.CardGradientID), "stroke", p.CardBorder, "filter", theme.URL(theme.GlassFilterID)))
	for i, f := range fields {
		cx := colW*float64(i) + colW/2
		g.Add(
			svg.Text(f.value, "class", "value", "x", cx, "y", 30, "text-anchor", "middle", "fill", p.TextPrimary),
			svg.Text(f.label, "class", "meta", "x", cx, "y", 50, "text-anchor", "middle", "fill", p.TextMuted),
		)
	}
	return anim.Reveal(g, v.cfg.Animation, begin)
}

func (v *statsView) footer() *svg.Element {
	p := v.palette
	n := v.data.Counts
	begin := v.timeline.Next()
	y := v.height - 20

	summary := fmt.Sprintf("%s repos · %s followers · %s stars · %s forks",
		format.Number(n.PublicRepos), format.Number(n.Followers),
		format.Number(n.TotalStars), format.Number(n.TotalForks))

	g := svg.Group("class", "footer").Add(
		svg.Text(summary, "class", "meta", "x", padding, "y", y, "fill", p.TextMuted),
		svg.Text(attribution, "class", "meta", "x", v.width-padding, "y", y,
			"text-anchor", "end", "fill", p.TextMuted),
	)
	return anim.Reveal(g, v.cfg.Animation, begin)
}

// styleBlock declares the four text classes. It does not depend on theme;
// colours are set per element.
func styleBlock() *svg.Element {
	return svg.Style(
		".title{font-family:'Segoe UI',Ubuntu,'Helvetica Neue',sans-serif;font-size:26px;font-weight:700}" +
			".value{font-family:'SF Mono',Menlo,Consolas,monospace;font-size:24px;font-weight:700}" +
			".label{font-family:'Segoe UI',Ubuntu,'Helvetica Neue',sans-serif;font-size:14px;font-weight:600}" +
			".meta{font-family:'Segoe UI',Ubuntu,'Helvetica Neue',sans-serif;font-size:12px}",
	)
}

func accentColor(p theme.Palette, i int) string {
	switch i {
	case 1:
		return p.AccentAlt
	case 2:
		return p.Success
	default:
		return p.Accent
	}
}

func translate(x, y float64) string {
	return "translate(" + svg.Num(x) + " " + svg.Num(y) + ")"
}
