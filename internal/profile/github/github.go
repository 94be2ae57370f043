// Package github aggregates a profile from the GitHub REST API.
//
// Requests go through a token bucket limiter. Only the user lookup is
// required; search counts and the public event calendar degrade to zero
// values when they fail so a card can still be drawn.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/albapepper/readme-svg/internal/profile"
)

const (
	DefaultBaseURL   = "https://api.github.com"
	defaultUserAgent = "readme-svg/1.0"
	maxRepoPages     = 5
	eventWindowDays  = 90
	maxEventPages    = 3
)

// Provider implements profile.Aggregator against api.github.com.
type Provider struct {
	httpClient *http.Client
	baseURL    string
	token      string
	limiter    *rate.Limiter
	logger     *slog.Logger
	now        func() time.Time
}

// New creates a GitHub provider. An empty token uses unauthenticated
// requests, which GitHub limits to 60 per hour.
func New(baseURL, token string, requestsPerMinute int, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Provider{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		limiter:    rate.NewLimiter(rate.Limit(rps), 5),
		logger:     logger,
		now:        time.Now,
	}
}

func (p *Provider) Name() string { return "github" }

type githubUser struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

type githubRepo struct {
	Name            string `json:"name"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	ForksCount      int    `json:"forks_count"`
	Fork            bool   `json:"fork"`
}

type githubEvent struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	Payload   struct {
		Size int `json:"size"`
	} `json:"payload"`
}

type searchResult struct {
	TotalCount int `json:"total_count"`
}

// Fetch builds the full profile record for username.
func (p *Provider) Fetch(ctx context.Context, username string) (profile.Stats, error) {
	user, err := p.fetchUser(ctx, username)
	if err != nil {
		return profile.Stats{}, err
	}

	repos, err := p.fetchRepos(ctx, user.Login)
	if err != nil {
		return profile.Stats{}, fmt.Errorf("github: fetch repos: %w", err)
	}

	stars, forks, weights := summarizeRepos(repos)

	commits := p.searchCount(ctx, "/search/commits", "author:"+user.Login)
	prs := p.searchCount(ctx, "/search/issues", "author:"+user.Login+" type:pr")
	issues := p.searchCount(ctx, "/search/issues", "author:"+user.Login+" type:issue")

	calendar, err := p.fetchEventCalendar(ctx, user.Login)
	if err != nil {
		p.logger.Warn("GitHub events unavailable, contribution panel will be empty",
			"username", user.Login, "error", err)
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	return profile.Stats{
		Identity: profile.Identity{
			Name:       name,
			Username:   user.Login,
			AvatarURL:  user.AvatarURL,
			Bio:        profile.StringPtr(strings.TrimSpace(user.Bio)),
			Location:   profile.StringPtr(strings.TrimSpace(user.Location)),
			JoinedYear: user.CreatedAt.Year(),
		},
		Counts: profile.Counts{
			PublicRepos:  user.PublicRepos,
			Followers:    user.Followers,
			Following:    user.Following,
			TotalStars:   stars,
			TotalForks:   forks,
			TotalCommits: commits,
			TotalPRs:     prs,
			TotalIssues:  issues,
		},
		TopLanguages: profile.TopLanguages(weights),
		Contribution: profile.Summarize(calendar, eventWindowDays, p.now()),
	}, nil
}

func (p *Provider) fetchUser(ctx context.Context, username string) (*githubUser, error) {
	var u githubUser
	status, err := p.getJSON(ctx, p.baseURL+"/users/"+url.PathEscape(username), &u, nil)
	if status == http.StatusNotFound {
		return nil, &profile.NotFoundError{Username: username}
	}
	if err != nil {
		return nil, fmt.Errorf("github: fetch user: %w", err)
	}
	return &u, nil
}

func (p *Provider) fetchRepos(ctx context.Context, username string) ([]githubRepo, error) {
	var all []githubRepo
	next := fmt.Sprintf("%s/users/%s/repos?per_page=100&type=owner&sort=updated",
		p.baseURL, url.PathEscape(username))

	for page := 0; next != "" && page < maxRepoPages; page++ {
		var repos []githubRepo
		var header http.Header
		if _, err := p.getJSON(ctx, next, &repos, &header); err != nil {
			return nil, err
		}
		all = append(all, repos...)
		next = nextLink(header.Get("Link"))
	}
	return all, nil
}

func (p *Provider) searchCount(ctx context.Context, path, query string) int {
	u := p.baseURL + path + "?per_page=1&q=" + url.QueryEscape(query)
	var res searchResult
	if _, err := p.getJSON(ctx, u, &res, nil); err != nil {
		p.logger.Warn("GitHub search failed", "path", path, "query", query, "error", err)
		return 0
	}
	return res.TotalCount
}

// fetchEventCalendar counts activity per day from the public event feed.
// Push events count their commits; every other event counts once.
func (p *Provider) fetchEventCalendar(ctx context.Context, username string) (map[time.Time]int, error) {
	calendar := make(map[time.Time]int)
	cutoff := p.now().AddDate(0, 0, -eventWindowDays)
	next := fmt.Sprintf("%s/users/%s/events/public?per_page=100", p.baseURL, url.PathEscape(username))

	for page := 0; next != "" && page < maxEventPages; page++ {
		var events []githubEvent
		var header http.Header
		if _, err := p.getJSON(ctx, next, &events, &header); err != nil {
			return calendar, err
		}
		for _, e := range events {
			if e.CreatedAt.Before(cutoff) {
				continue
			}
			d := time.Date(e.CreatedAt.Year(), e.CreatedAt.Month(), e.CreatedAt.Day(), 0, 0, 0, 0, time.UTC)
			n := 1
			if e.Type == "PushEvent" && e.Payload.Size > 0 {
				n = e.Payload.Size
			}
			calendar[d] += n
		}
		next = nextLink(header.Get("Link"))
	}
	return calendar, nil
}

// getJSON performs a rate-limited GET and decodes the body into v. The
// response status is returned even on error so callers can special-case
// 404s. When header is non-nil it receives the response headers.
func (p *Provider) getJSON(ctx context.Context, u string, v any, header *http.Header) (int, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0" {
		return resp.StatusCode, fmt.Errorf("GitHub API rate limit exceeded")
	}
	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, fmt.Errorf("GitHub returned %d: %s", resp.StatusCode, truncate(body, 200))
	}

	if err := json.Unmarshal(body, v); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	if header != nil {
		*header = resp.Header
	}
	return resp.StatusCode, nil
}

func summarizeRepos(repos []githubRepo) (stars, forks int, weights map[string]int) {
	weights = make(map[string]int)
	for _, r := range repos {
		stars += r.StargazersCount
		forks += r.ForksCount
		if r.Fork || r.Language == "" {
			continue
		}
		weights[r.Language]++
	}
	return stars, forks, weights
}

// nextLink extracts the rel="next" target from an RFC 8288 Link header.
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		segs := strings.Split(part, ";")
		if len(segs) < 2 {
			continue
		}
		for _, s := range segs[1:] {
			if strings.TrimSpace(s) == `rel="next"` {
				return strings.Trim(strings.TrimSpace(segs[0]), "<>")
			}
		}
	}
	return ""
}

func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
