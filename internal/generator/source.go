package generator

import (
	"log/slog"

	"github.com/albapepper/readme-svg/internal/config"
	"github.com/albapepper/readme-svg/internal/profile"
	"github.com/albapepper/readme-svg/internal/profile/demo"
	"github.com/albapepper/readme-svg/internal/profile/github"
)

// SourceFor builds the Aggregator named by cfg.ProfileSource.
func SourceFor(cfg *config.Config, logger *slog.Logger) profile.Aggregator {
	if cfg.ProfileSource == config.SourceDemo {
		return demo.New()
	}
	return github.New(cfg.GitHubAPIURL, cfg.GitHubToken, cfg.GitHubRequestsPerMinute, logger)
}
