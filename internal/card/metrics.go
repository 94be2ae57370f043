package card

import (
	"strings"

	"github.com/albapepper/readme-svg/internal/profile"
)

// MetricKey selects which statistic a stat card displays.
type MetricKey string

const (
	MetricCommits   MetricKey = "commits"
	MetricPRs       MetricKey = "prs"
	MetricIssues    MetricKey = "issues"
	MetricStars     MetricKey = "stars"
	MetricRepos     MetricKey = "repos"
	MetricFollowers MetricKey = "followers"
)

// Metric describes how one key is drawn on a stat card.
type Metric struct {
	Key   MetricKey
	Label string
	// Icon is a 16×16 path in SVG path syntax.
	Icon string
	// AccentIndex picks the strip colour: 0 accent, 1 alternate accent, 2 success.
	AccentIndex int
	Value       func(profile.Stats) int
}

var metricTable = map[MetricKey]Metric{
	MetricCommits: {
		Key: MetricCommits, Label: "Commits", AccentIndex: 0,
		Icon:  "M8 4a4 4 0 1 1 0 8 4 4 0 0 1 0-8zM0 7h4v2H0zM12 7h4v2h-4z",
		Value: func(s profile.Stats) int { return s.Counts.TotalCommits },
	},
	MetricPRs: {
		Key: MetricPRs, Label: "Pull Requests", AccentIndex: 1,
		Icon:  "M3 2a2 2 0 1 1 0 4 2 2 0 0 1 0-4zM2 6h2v6H2zM13 10a2 2 0 1 1 0 4 2 2 0 0 1 0-4zM12 4h2v6h-2zM7 3h5v2H7z",
		Value: func(s profile.Stats) int { return s.Counts.TotalPRs },
	},
	MetricIssues: {
		Key: MetricIssues, Label: "Issues", AccentIndex: 2,
		Icon:  "M8 1a7 7 0 1 1 0 14A7 7 0 0 1 8 1zm0 2a5 5 0 1 0 0 10A5 5 0 0 0 8 3zm0 3a2 2 0 1 1 0 4 2 2 0 0 1 0-4z",
		Value: func(s profile.Stats) int { return s.Counts.TotalIssues },
	},
	MetricStars: {
		Key: MetricStars, Label: "Stars", AccentIndex: 1,
		Icon:  "M8 .5l2.3 4.7 5.2.8-3.8 3.6.9 5.2L8 12.3l-4.6 2.5.9-5.2L.5 6l5.2-.8z",
		Value: func(s profile.Stats) int { return s.Counts.TotalStars },
	},
	MetricRepos: {
		Key: MetricRepos, Label: "Repositories", AccentIndex: 0,
		Icon:  "M2 1h10l2 2v12H2zM4 3v10h8V4h-2V3z",
		Value: func(s profile.Stats) int { return s.Counts.PublicRepos },
	},
	MetricFollowers: {
		Key: MetricFollowers, Label: "Followers", AccentIndex: 2,
		Icon:  "M8 1a3 3 0 1 1 0 6 3 3 0 0 1 0-6zM2 15c0-3.3 2.7-6 6-6s6 2.7 6 6z",
		Value: func(s profile.Stats) int { return s.Counts.Followers },
	},
}

// MetricKeys lists every recognized key in catalog order.
var MetricKeys = []MetricKey{
	MetricCommits, MetricPRs, MetricIssues, MetricStars, MetricRepos, MetricFollowers,
}

// LookupMetric returns the definition for key. Matching ignores case and
// surrounding space.
func LookupMetric(key MetricKey) (Metric, bool) {
	m, ok := metricTable[MetricKey(strings.ToLower(strings.TrimSpace(string(key))))]
	return m, ok
}
