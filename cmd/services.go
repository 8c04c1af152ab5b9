package cmd

import (
	"context"

	"github.com/kuxall/portfolio-data/cache"
	"github.com/kuxall/portfolio-data/config"
	"github.com/kuxall/portfolio-data/service"
)

// setupServices wires the github client, the local rate limiter and the fallback snapshot
// the github client is created here and passed to the services to easily mock it in tests
func setupServices(ctx context.Context, cfg config.Config) (service.GithubService, service.PortfolioService, error) {
	githubClient, err := service.NewGithubClient(ctx, cfg.Github)
	if err != nil {
		return nil, nil, err
	}

	rateLimiter := service.NewRateLimiter(ctx, githubClient, cfg.Github.Token != "")
	snapshot := cache.Load(cfg.Cache.SnapshotPath)

	githubService := service.NewGithubService(cfg, githubClient, rateLimiter, snapshot)
	portfolioService := service.NewPortfolioService(cfg, githubService)

	return githubService, portfolioService, nil
}

// handleOrDefault returns the handle flag, or the configured username
func handleOrDefault(handle string, cfg config.Config) string {
	if handle != "" {
		return handle
	}

	return cfg.Github.Username
}
