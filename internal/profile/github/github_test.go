package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albapepper/readme-svg/internal/profile"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var srv *httptest.Server

	mux.HandleFunc("/users/octo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"login":"octo","name":"Octo Cat","avatar_url":"https://img/octo.png",
			"bio":"  ","location":"Berlin","public_repos":3,"followers":1200,"following":4,
			"created_at":"2015-06-01T00:00:00Z"}`)
	})
	mux.HandleFunc("/users/octo/repos", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprint(w, `[{"name":"c","language":"Go","stargazers_count":1,"forks_count":0}]`)
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s/users/octo/repos?page=2>; rel="next", <%s/users/octo/repos?page=2>; rel="last"`, srv.URL, srv.URL))
		fmt.Fprint(w, `[{"name":"a","language":"Go","stargazers_count":10,"forks_count":2},
			{"name":"b","language":"Rust","stargazers_count":5,"forks_count":1},
			{"name":"f","language":"C","stargazers_count":0,"forks_count":0,"fork":true}]`)
	})
	mux.HandleFunc("/search/commits", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "author:octo", r.URL.Query().Get("q"))
		fmt.Fprint(w, `{"total_count":420}`)
	})
	mux.HandleFunc("/search/issues", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "author:octo type:pr" {
			fmt.Fprint(w, `{"total_count":33}`)
			return
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/users/octo/events/public", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"type":"PushEvent","created_at":"2026-03-10T08:00:00Z","payload":{"size":3}},
			{"type":"IssuesEvent","created_at":"2026-03-09T08:00:00Z","payload":{}},
			{"type":"PushEvent","created_at":"2025-01-01T08:00:00Z","payload":{"size":9}}
		]`)
	})
	mux.HandleFunc("/users/ghost", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/users/limited", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	})

	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestProvider(srv *httptest.Server) *Provider {
	p := New(srv.URL, "tok", 6000, nil)
	p.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	return p
}

func TestFetchBuildsProfile(t *testing.T) {
	p := newTestProvider(newTestServer(t))

	stats, err := p.Fetch(context.Background(), "octo")
	require.NoError(t, err)

	assert.Equal(t, "Octo Cat", stats.Identity.Name)
	assert.Equal(t, "octo", stats.Identity.Username)
	assert.Equal(t, 2015, stats.Identity.JoinedYear)
	assert.Nil(t, stats.Identity.Bio, "blank bio becomes nil")
	require.NotNil(t, stats.Identity.Location)
	assert.Equal(t, "Berlin", *stats.Identity.Location)

	assert.Equal(t, 16, stats.Counts.TotalStars)
	assert.Equal(t, 3, stats.Counts.TotalForks)
	assert.Equal(t, 420, stats.Counts.TotalCommits)
	assert.Equal(t, 33, stats.Counts.TotalPRs)
	assert.Equal(t, 0, stats.Counts.TotalIssues, "failed search degrades to zero")
	assert.Equal(t, 1200, stats.Counts.Followers)

	require.Len(t, stats.TopLanguages, 2)
	assert.Equal(t, profile.LanguageShare{Name: "Go", Percentage: 66}, stats.TopLanguages[0])
	assert.Equal(t, profile.LanguageShare{Name: "Rust", Percentage: 33}, stats.TopLanguages[1])

	assert.Equal(t, 2, stats.Contribution.CurrentStreakDays)
	assert.Equal(t, 4, stats.Contribution.TotalContributions)
	assert.Equal(t, "0.0", stats.Contribution.AvgCommitsPerDay)
}

func TestFetchUnknownUser(t *testing.T) {
	p := newTestProvider(newTestServer(t))

	_, err := p.Fetch(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, profile.ErrUserNotFound)
	assert.Equal(t, `User "ghost" not found`, err.Error())
}

func TestFetchRateLimited(t *testing.T) {
	p := newTestProvider(newTestServer(t))

	_, err := p.Fetch(context.Background(), "limited")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestFetchCancelledContext(t *testing.T) {
	p := newTestProvider(newTestServer(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Fetch(ctx, "octo")
	assert.Error(t, err)
}

func TestNextLink(t *testing.T) {
	h := `<https://api.github.com/x?page=2>; rel="next", <https://api.github.com/x?page=5>; rel="last"`
	assert.Equal(t, "https://api.github.com/x?page=2", nextLink(h))
	assert.Equal(t, "", nextLink(`<https://api.github.com/x?page=1>; rel="prev"`))
	assert.Equal(t, "", nextLink(""))
}

func TestProviderName(t *testing.T) {
	assert.Equal(t, "github", New("", "", 0, nil).Name())
}
