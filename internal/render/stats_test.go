package render

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/readme-svg/internal/anim"
	"github.com/albapepper/readme-svg/internal/card"
	"github.com/albapepper/readme-svg/internal/profile"
)

func sampleStats() profile.Stats {
	return profile.Stats{
		Identity: profile.Identity{
			Name:       "The Octocat",
			Username:   "octocat",
			AvatarURL:  "https://avatars.example.com/u/583231",
			Bio:        profile.StringPtr("Mascot & friend <of> developers"),
			Location:   profile.StringPtr("San Francisco"),
			JoinedYear: 2011,
		},
		Counts: profile.Counts{
			PublicRepos:  8,
			Followers:    12_400,
			Following:    9,
			TotalStars:   1_250_000,
			TotalForks:   4_321,
			TotalCommits: 999,
			TotalPRs:     120,
			TotalIssues:  45,
			ProfileViews: 2_500,
		},
		TopLanguages: []profile.LanguageShare{
			{Name: "Go", Percentage: 40},
			{Name: "TypeScript", Percentage: 30},
			{Name: "Ruby", Percentage: 20},
		},
		Contribution: profile.Contribution{
			CurrentStreakDays:  5,
			LongestStreakDays:  42,
			TotalContributions: 1_830,
			AvgCommitsPerDay:   "5.0",
		},
	}
}

func sampleConfig() card.Config {
	return card.Config{
		Username:   "octocat",
		Metrics:    card.SplitMetrics(card.DefaultMetrics),
		Theme:      "dark",
		Animation:  anim.CountUp,
		Width:      920,
		Height:     600,
		ShowAvatar: true,
	}
}

// wellFormed decodes the whole document and fails on any XML error.
func wellFormed(t *testing.T, doc []byte) {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		_, err := dec.Token()
		if err == io.EOF {
			return
		}
		require.NoError(t, err, "document is not well-formed XML")
	}
}

func countClass(doc []byte, class string) int {
	return strings.Count(string(doc), `class="`+class+`"`)
}

func TestStatsDeterministic(t *testing.T) {
	cfg, data := sampleConfig(), sampleStats()
	for _, kind := range []anim.Kind{anim.CountUp, anim.SlideIn, anim.Pulse, anim.None} {
		cfg.Animation = kind
		assert.Equal(t, Stats(cfg, data), Stats(cfg, data), string(kind))
	}
}

func TestStatsWellFormedAndEscaped(t *testing.T) {
	doc := Stats(sampleConfig(), sampleStats())
	wellFormed(t, doc)
	assert.Contains(t, string(doc), "Mascot &amp; friend &lt;of&gt; developers")
}

func TestStatsViewBoxMatchesSize(t *testing.T) {
	cfg := sampleConfig()
	cfg.Width, cfg.Height = 1000, 700
	doc := string(Stats(cfg, sampleStats()))
	assert.Contains(t, doc, `width="1000" height="700" viewBox="0 0 1000 700"`)

	cfg.Width, cfg.Height = 0, 0
	doc = string(Stats(cfg, sampleStats()))
	assert.Contains(t, doc, `viewBox="0 0 920 600"`)
}

func TestStatsCardsCappedAtFourRecognized(t *testing.T) {
	cfg := sampleConfig()
	cfg.Metrics = card.SplitMetrics("bogus,followers,stars,views,repos,commits,prs")
	doc := Stats(cfg, sampleStats())

	assert.Equal(t, 4, countClass(doc, "stat-card"))
	s := string(doc)
	for _, k := range []string{"followers", "stars", "repos", "commits"} {
		assert.Contains(t, s, `data-metric="`+k+`"`)
	}
	assert.NotContains(t, s, `data-metric="prs"`)
	assert.NotContains(t, s, `data-metric="bogus"`)
}

func TestStatsNoRecognizedMetrics(t *testing.T) {
	cfg := sampleConfig()
	cfg.Metrics = card.SplitMetrics("views,unknown")
	doc := Stats(cfg, sampleStats())
	wellFormed(t, doc)
	assert.Zero(t, countClass(doc, "stat-card"))
}

func TestStatsCountUpShowsZero(t *testing.T) {
	cfg := sampleConfig()
	cfg.Metrics = card.SplitMetrics("stars")
	doc := string(Stats(cfg, sampleStats()))
	assert.NotContains(t, doc, ">1.3M<")

	cfg.Animation = anim.None
	doc = string(Stats(cfg, sampleStats()))
	assert.Contains(t, doc, ">1.3M<")
}

func TestStatsEmptyLanguagesPlaceholder(t *testing.T) {
	data := sampleStats()
	data.TopLanguages = []profile.LanguageShare{}
	doc := Stats(sampleConfig(), data)

	assert.Contains(t, string(doc), "No languages detected")
	assert.Equal(t, 1, countClass(doc, "languages-empty"))
	assert.Zero(t, countClass(doc, "bar-fill"))
	assert.Zero(t, countClass(doc, "lang-entry"))
}

func TestStatsLanguageChartShowsFirstFive(t *testing.T) {
	data := sampleStats()
	data.TopLanguages = []profile.LanguageShare{
		{Name: "Go", Percentage: 30}, {Name: "Rust", Percentage: 20}, {Name: "C", Percentage: 15},
		{Name: "Python", Percentage: 15}, {Name: "Shell", Percentage: 10}, {Name: "Zig", Percentage: 5},
	}
	doc := Stats(sampleConfig(), data)

	assert.Equal(t, 5, countClass(doc, "lang-entry"))
	assert.Equal(t, 5, countClass(doc, "bar-fill"))
	assert.NotContains(t, string(doc), ">Zig<")
	// Five entries in three columns occupy two rows.
	assert.Contains(t, string(doc), `class="lang-entry" transform="translate(30 375)"`)
}

func TestStatsBioTruncation(t *testing.T) {
	data := sampleStats()
	exact := strings.Repeat("a", 60)
	data.Identity.Bio = profile.StringPtr(exact)
	doc := string(Stats(sampleConfig(), data))
	assert.Contains(t, doc, ">"+exact+"<")
	assert.NotContains(t, doc, exact+"...")

	data.Identity.Bio = profile.StringPtr(exact + "b")
	doc = string(Stats(sampleConfig(), data))
	assert.Contains(t, doc, ">"+exact+"...<")
}

func TestStatsNilBioAndLocation(t *testing.T) {
	data := sampleStats()
	data.Identity.Bio = nil
	data.Identity.Location = nil
	doc := Stats(sampleConfig(), data)

	assert.Zero(t, countClass(doc, "meta bio"))
	assert.Contains(t, string(doc), "Joined 2011 · Worldwide · 2.5K views")
}

func TestStatsBlankBioSkipped(t *testing.T) {
	for _, bio := range []string{"", "   "} {
		data := sampleStats()
		data.Identity.Bio = &bio
		doc := Stats(sampleConfig(), data)
		assert.Zero(t, countClass(doc, "meta bio"), "%q", bio)
	}
}

func TestStatsAvatarBranch(t *testing.T) {
	cfg := sampleConfig()
	with := string(Stats(cfg, sampleStats()))
	assert.Contains(t, with, "<image")
	assert.Contains(t, with, `class="status-dot"`)

	cfg.ShowAvatar = false
	without := string(Stats(cfg, sampleStats()))
	assert.NotContains(t, without, "<image")
	assert.NotContains(t, without, `class="status-dot"`)
}

func TestStatsAutoEqualsDark(t *testing.T) {
	cfg := sampleConfig()
	dark := Stats(cfg, sampleStats())
	cfg.Theme = "auto"
	assert.Equal(t, dark, Stats(cfg, sampleStats()))

	cfg.Theme = "light"
	assert.NotEqual(t, dark, Stats(cfg, sampleStats()))
}

func TestStatsFooterAndContribution(t *testing.T) {
	doc := string(Stats(sampleConfig(), sampleStats()))
	assert.Contains(t, doc, "8 repos · 12.4K followers · 1.3M stars · 4.3K forks")
	assert.Contains(t, doc, "Generated by readme-svg")
	assert.Contains(t, doc, ">5 days<")
	assert.Contains(t, doc, ">42 days<")
	assert.Contains(t, doc, ">1.8K<")
	assert.Contains(t, doc, ">5.0<")
}

func TestStatsRevealOrderIncreasing(t *testing.T) {
	cfg := sampleConfig()
	cfg.Animation = anim.None
	cfg.ShowAvatar = false
	doc := string(Stats(cfg, sampleStats()))

	// Section fades close each group, so reading them top to bottom gives
	// the reveal order.
	const marker = `attributeName="opacity" from="0" to="1" begin="`
	var begins []float64
	for rest := doc; ; {
		i := strings.Index(rest, marker)
		if i < 0 {
			break
		}
		rest = rest[i+len(marker):]
		end := strings.Index(rest, `s"`)
		require.Positive(t, end)
		v, err := strconv.ParseFloat(rest[:end], 64)
		require.NoError(t, err)
		begins = append(begins, v)
	}

	// identity, 4 cards, 3 languages, contribution, footer
	require.Len(t, begins, 10)
	for i := 1; i < len(begins); i++ {
		assert.Greater(t, begins[i], begins[i-1])
	}
}

// placedGroups maps each positioned group (stat cards, language entries,
// contribution panel) to its layout transform, in document order, and
// collects the additive attribute of every transform animation inside them.
func placedGroups(t *testing.T, doc []byte) (transforms []string, additive []string) {
	t.Helper()
	placed := map[string]bool{"stat-card": true, "lang-entry": true, "contribution": true}
	var stack []bool
	dec := xml.NewDecoder(bytes.NewReader(doc))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return transforms, additive
		}
		require.NoError(t, err)
		switch el := tok.(type) {
		case xml.StartElement:
			attrs := map[string]string{}
			for _, a := range el.Attr {
				attrs[a.Name.Local] = a.Value
			}
			isPlaced := el.Name.Local == "g" && placed[attrs["class"]]
			if isPlaced {
				transforms = append(transforms, attrs["class"]+" "+attrs["transform"])
			}
			if el.Name.Local == "animateTransform" && len(stack) > 0 && stack[len(stack)-1] {
				additive = append(additive, attrs["additive"])
			}
			stack = append(stack, isPlaced)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
}

func TestStatsRevealKeepsLayoutPositions(t *testing.T) {
	cfg, data := sampleConfig(), sampleStats()
	cfg.Animation = anim.None
	want, none := placedGroups(t, Stats(cfg, data))
	require.Len(t, want, 4+3+1)
	assert.Empty(t, none)
	for _, tr := range want {
		assert.Contains(t, tr, "translate(", tr)
	}
	assert.Len(t, uniq(want[:4]), 4, "stat cards share a position")

	for _, kind := range []anim.Kind{anim.CountUp, anim.SlideIn, anim.Pulse} {
		cfg.Animation = kind
		got, additive := placedGroups(t, Stats(cfg, data))
		assert.Equal(t, want, got, string(kind))
		for _, a := range additive {
			assert.Equal(t, "sum", a, string(kind))
		}
		if kind == anim.SlideIn {
			assert.Len(t, additive, len(want))
		}
	}
}

func uniq(ss []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		out[s] = struct{}{}
	}
	return out
}
