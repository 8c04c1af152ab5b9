package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/kuxall/portfolio-data/config"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	requestTimeout = 10 * time.Second

	// used when the current limits cannot be loaded from github
	unauthenticatedRequestsPerHour = 60
	authenticatedRequestsPerHour   = 5000
)

// NewGithubClient builds the go-github client used by the service
// when a token is configured every request carries "Authorization: token <TOKEN>"
func NewGithubClient(ctx context.Context, cfg config.GithubConfig) (*github.Client, error) {
	httpClient := &http.Client{Timeout: requestTimeout}

	if cfg.Token != "" {
		log.Debug("will setup github client with authorization token")

		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.Token,
			TokenType:   "token",
		}))
		httpClient.Timeout = requestTimeout
	}

	githubClient := github.NewClient(httpClient)

	if cfg.BaseURL != "" {
		baseURL := cfg.BaseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}

		parsed, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid github base url %q: %w", cfg.BaseURL, err)
		}

		githubClient.BaseURL = parsed
	}

	return githubClient, nil
}

// NewRateLimiter creates the local rate limiter from the current github rate limits
// already consumed requests are taken from the bucket so the limiter stays right
// even if other tools use the same token. If github cannot be reached the
// documented default limit is used instead of failing
func NewRateLimiter(ctx context.Context, githubClient *github.Client, authenticated bool) *rate.Limiter {
	limit, remaining := unauthenticatedRequestsPerHour, unauthenticatedRequestsPerHour
	if authenticated {
		limit, remaining = authenticatedRequestsPerHour, authenticatedRequestsPerHour
	}

	log.Debug("loading current rate limit from github")
	rateLimits, _, err := githubClient.RateLimit.Get(ctx)

	if err != nil || rateLimits == nil || rateLimits.Core == nil {
		log.WithError(err).Warning("unable to load current github rate limits, using default limits")
	} else {
		limit, remaining = rateLimits.Core.Limit, rateLimits.Core.Remaining
	}

	log.WithFields(log.Fields{
		"totalAvailable":    limit,
		"remainingRequests": remaining,
	}).Debug("will setup local rate limiter")

	rateLimiter := rate.NewLimiter(rate.Every(time.Hour/time.Duration(max(limit, 1))), limit)
	rateLimiter.AllowN(time.Now(), limit-remaining)

	return rateLimiter
}
