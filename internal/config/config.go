// Package config provides centralized configuration loaded from environment
// variables. Shared by cmd/api and cmd/cardgen.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Profile sources.
const (
	SourceGitHub = "github"
	SourceDemo   = "demo"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting (inbound, per client IP)
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Profile data
	ProfileSource           string // github or demo
	GitHubToken             string
	GitHubAPIURL            string
	GitHubRequestsPerMinute int

	// Cache
	CacheEnabled    bool
	CacheTTL        time.Duration
	CacheMaxEntries int

	// Object storage for published cards
	S3 S3Config
}

// S3Config points at an S3-compatible bucket. Publishing is disabled when
// Endpoint or Bucket is empty.
type S3Config struct {
	Endpoint       string
	AccessKey      string
	SecretKey      string
	Bucket         string
	Region         string
	UseSSL         bool
	PublicEndpoint string
}

// Enabled reports whether enough is set to publish.
func (s S3Config) Enabled() bool {
	return s.Endpoint != "" && s.Bucket != ""
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	source := strings.ToLower(envOr("PROFILE_SOURCE", SourceGitHub))
	if source != SourceGitHub && source != SourceDemo {
		return nil, fmt.Errorf("PROFILE_SOURCE must be %q or %q, got %q", SourceGitHub, SourceDemo, source)
	}

	cfg := &Config{
		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{"*"}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", false),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   envDuration("RATE_LIMIT_WINDOW", 60*time.Second),

		ProfileSource:           source,
		GitHubToken:             envOr("GITHUB_TOKEN", ""),
		GitHubAPIURL:            envOr("GITHUB_API_URL", "https://api.github.com"),
		GitHubRequestsPerMinute: envInt("GITHUB_REQUESTS_PER_MINUTE", 60),

		CacheEnabled:    envBool("CACHE_ENABLED", true),
		CacheTTL:        time.Duration(envInt("CACHE_TTL_SECONDS", 1800)) * time.Second,
		CacheMaxEntries: envInt("CACHE_MAX_ENTRIES", 2000),

		S3: S3Config{
			Endpoint:       envOr("S3_ENDPOINT", ""),
			AccessKey:      envOr("S3_ACCESS_KEY", ""),
			SecretKey:      envOr("S3_SECRET_KEY", ""),
			Bucket:         envOr("S3_BUCKET", ""),
			Region:         envOr("S3_REGION", "us-east-1"),
			UseSSL:         envBool("S3_USE_SSL", true),
			PublicEndpoint: envOr("S3_PUBLIC_ENDPOINT", ""),
		},
	}
	if cfg.RateLimitRequests <= 0 || cfg.RateLimitWindow <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive")
	}
	if cfg.CacheTTL <= 0 {
		return nil, fmt.Errorf("CACHE_TTL_SECONDS must be positive")
	}
	if cfg.CacheMaxEntries <= 0 {
		return nil, fmt.Errorf("CACHE_MAX_ENTRIES must be positive")
	}
	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Addr is the listen address for the API server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.APIHost, c.APIPort)
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

// envDuration accepts Go durations ("90s", "2m") or a bare number of
// seconds.
func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
