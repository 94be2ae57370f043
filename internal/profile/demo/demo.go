// Package demo serves synthetic profiles for offline rendering and
// previews. Output is seeded from the username, so the same name always
// yields the same card.
package demo

import (
	"context"
	"hash/fnv"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/albapepper/readme-svg/internal/profile"
)

const windowDays = 365

var demoLanguages = []string{
	"TypeScript", "Go", "Python", "Rust", "JavaScript", "Kotlin", "Shell", "C++", "Lua",
}

var demoLocations = []string{"Berlin", "Lisbon", "Toronto", "Seoul", "Nairobi", ""}

type Provider struct {
	now func() time.Time
}

func New() *Provider {
	return &Provider{now: time.Now}
}

func (p *Provider) Name() string { return "demo" }

// Fetch fabricates a profile for username. It only fails when ctx is done.
func (p *Provider) Fetch(ctx context.Context, username string) (profile.Stats, error) {
	if err := ctx.Err(); err != nil {
		return profile.Stats{}, err
	}

	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(username)))
	seed := h.Sum64()
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	weights := make(map[string]int)
	for _, i := range rng.Perm(len(demoLanguages))[:3+rng.IntN(4)] {
		weights[demoLanguages[i]] = 1 + rng.IntN(40)
	}

	now := p.now()
	calendar := make(map[time.Time]int, windowDays)
	for i := range windowDays {
		if rng.IntN(10) < 7 {
			d := now.AddDate(0, 0, -i)
			calendar[time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)] = 1 + rng.IntN(8)
		}
	}

	var bio *string
	if rng.IntN(4) > 0 {
		bio = profile.StringPtr("Building small tools and big ideas. Open source enthusiast.")
	}

	return profile.Stats{
		Identity: profile.Identity{
			Name:       "Demo " + username,
			Username:   username,
			AvatarURL:  "https://github.com/identicons/" + username + ".png",
			Bio:        bio,
			Location:   profile.StringPtr(demoLocations[rng.IntN(len(demoLocations))]),
			JoinedYear: 2010 + rng.IntN(14),
		},
		Counts: profile.Counts{
			PublicRepos:  5 + rng.IntN(120),
			Followers:    rng.IntN(5000),
			Following:    rng.IntN(300),
			TotalStars:   rng.IntN(20000),
			TotalForks:   rng.IntN(3000),
			TotalCommits: 200 + rng.IntN(8000),
			TotalPRs:     rng.IntN(900),
			TotalIssues:  rng.IntN(400),
			ProfileViews: rng.IntN(50000),
		},
		TopLanguages: profile.TopLanguages(weights),
		Contribution: profile.Summarize(calendar, windowDays, now),
	}, nil
}
