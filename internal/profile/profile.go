// Package profile defines the normalized profile record the card renderer
// consumes and the Aggregator interface that produces it.
package profile

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// MaxLanguages is the most languages an aggregator reports.
const MaxLanguages = 6

// ErrUserNotFound is returned when the upstream source has no such user.
var ErrUserNotFound = errors.New("user not found")

// Aggregator fetches and derives a Stats record for one username.
type Aggregator interface {
	Name() string
	Fetch(ctx context.Context, username string) (Stats, error)
}

type Identity struct {
	Name       string
	Username   string
	AvatarURL  string
	Bio        *string
	Location   *string
	JoinedYear int
}

type Counts struct {
	PublicRepos  int
	Followers    int
	Following    int
	TotalStars   int
	TotalForks   int
	TotalCommits int
	TotalPRs     int
	TotalIssues  int
	ProfileViews int
}

// LanguageShare is one language and its integer share of the profile.
type LanguageShare struct {
	Name       string
	Percentage int
}

type Contribution struct {
	CurrentStreakDays  int
	LongestStreakDays  int
	TotalContributions int
	// AvgCommitsPerDay carries exactly one fractional digit, e.g. "2.4".
	AvgCommitsPerDay string
}

// Stats is built fresh per request and treated as read-only afterwards.
type Stats struct {
	Identity     Identity
	Counts       Counts
	TopLanguages []LanguageShare
	Contribution Contribution
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// TopLanguages converts raw weights (bytes, repo counts) into at most
// MaxLanguages integer percentages, sorted descending with ties broken by
// name. Percentages are floored, so they always sum to at most 100.
func TopLanguages(weights map[string]int) []LanguageShare {
	var total int
	for name, w := range weights {
		if name == "" || w <= 0 {
			continue
		}
		total += w
	}
	if total == 0 {
		return []LanguageShare{}
	}

	type weighted struct {
		name string
		w    int
	}
	all := make([]weighted, 0, len(weights))
	for name, w := range weights {
		if name == "" || w <= 0 {
			continue
		}
		all = append(all, weighted{name, w})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].w != all[j].w {
			return all[i].w > all[j].w
		}
		return all[i].name < all[j].name
	})
	if len(all) > MaxLanguages {
		all = all[:MaxLanguages]
	}

	out := make([]LanguageShare, len(all))
	for i, l := range all {
		out[i] = LanguageShare{Name: l.name, Percentage: l.w * 100 / total}
	}
	return out
}

// NotFoundError reports an unknown username. Its message is shown to end
// users on the error card, so it stays short and plain.
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("User %q not found", e.Username)
}

// Is lets errors.Is(err, ErrUserNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrUserNotFound
}
