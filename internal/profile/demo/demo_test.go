package demo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/readme-svg/internal/profile"
)

func fixed() *Provider {
	return &Provider{now: func() time.Time { return time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC) }}
}

func TestFetchIsDeterministicPerUser(t *testing.T) {
	p := fixed()
	a, err := p.Fetch(context.Background(), "octo")
	require.NoError(t, err)
	b, err := p.Fetch(context.Background(), "OCTO")
	require.NoError(t, err)

	assert.Equal(t, a.Counts, b.Counts)
	assert.Equal(t, a.TopLanguages, b.TopLanguages)
	assert.Equal(t, a.Contribution, b.Contribution)
}

func TestFetchRespectsInvariants(t *testing.T) {
	p := fixed()
	for _, name := range []string{"a", "octo", "torvalds", "someone-else"} {
		s, err := p.Fetch(context.Background(), name)
		require.NoError(t, err)

		assert.Equal(t, name, s.Identity.Username)
		assert.LessOrEqual(t, len(s.TopLanguages), profile.MaxLanguages)
		sum := 0
		for _, l := range s.TopLanguages {
			sum += l.Percentage
		}
		assert.LessOrEqual(t, sum, 100)
		assert.Regexp(t, `^\d+\.\d$`, s.Contribution.AvgCommitsPerDay)
	}
}

func TestFetchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Fetch(ctx, "octo")
	assert.ErrorIs(t, err, context.Canceled)
}
