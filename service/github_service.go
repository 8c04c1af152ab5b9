package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/kuxall/portfolio-data/cache"
	"github.com/kuxall/portfolio-data/config"
	"github.com/kuxall/portfolio-data/model"
	"github.com/remeh/sizedwaitgroup"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// FetchStatus is the outcome of a single GitHub call
type FetchStatus int

const (
	FetchOK FetchStatus = iota
	FetchNotOK
	FetchTransportError
)

func (s FetchStatus) String() string {
	switch s {
	case FetchOK:
		return "ok"
	case FetchNotOK:
		return "not_ok"
	case FetchTransportError:
		return "transport_error"
	default:
		return "unknown"
	}
}

type GithubService interface {
	FetchUser(ctx context.Context, handle string) model.Result[model.UserProfile]
	FetchRepositories(ctx context.Context, handle string) model.Result[[]model.RepositoryRecord]
	FetchReadme(ctx context.Context, handle string, repo string) (string, bool)
	FetchLanguages(ctx context.Context, handle string, repo string) (map[string]int, FetchStatus)
	EnrichProjects(ctx context.Context, handle string, projects []model.ProjectRecord) []model.ProjectRecord
	FetchProjectDetails(ctx context.Context, handle string, index int, p model.ProjectRecord, swg *sizedwaitgroup.SizedWaitGroup, ch chan<- model.ProjectDetails)

	HandleRequestErrors(err error) FetchStatus
}

type githubService struct {
	githubClient      *github.Client
	githubRateLimiter *rate.Limiter
	snapshot          *cache.Snapshot
	config            config.Config
}

// NewGithubService wires the gateway to its fallback snapshot
// the client is injected so tests can use a mocked http client
func NewGithubService(config config.Config, githubClient *github.Client, rateLimiter *rate.Limiter, snapshot *cache.Snapshot) GithubService {
	return githubService{
		githubClient:      githubClient,
		githubRateLimiter: rateLimiter,
		snapshot:          snapshot,
		config:            config,
	}
}

// FetchUser loads the profile of handle, or the cached profile on any failure
func (s githubService) FetchUser(ctx context.Context, handle string) model.Result[model.UserProfile] {
	user, status := s.getUser(ctx, handle)

	if status == FetchOK {
		return model.Live(model.NewUserProfile(user))
	}

	log.WithFields(log.Fields{
		"handle": handle,
		"status": status.String(),
	}).Warning("failed to fetch user from github, using cached data")

	if cached, ok := s.snapshot.User(); ok {
		return model.Fallback(cached)
	}

	log.WithField("handle", handle).Error("no cached user available")
	return model.Empty[model.UserProfile]()
}

func (s githubService) getUser(ctx context.Context, handle string) (*github.User, FetchStatus) {
	if !s.allow(1) {
		return nil, FetchNotOK
	}

	user, _, err := s.githubClient.Users.Get(ctx, handle)

	if err != nil {
		return nil, s.HandleRequestErrors(err)
	}

	if user == nil {
		return nil, FetchTransportError
	}

	return user, FetchOK
}

// allow consumes n requests from the local rate limiter
func (s githubService) allow(n int) bool {
	if s.githubRateLimiter.AllowN(time.Now(), n) {
		return true
	}

	log.WithField("requests", n).Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
	return false
}

// HandleRequestErrors converts a go-github error into a FetchStatus
// If error is a rate limit error, the local rate limiter is drained to stay in sync with github
func (s githubService) HandleRequestErrors(err error) FetchStatus {
	var rateLimitErr *github.RateLimitError
	if errors.As(err, &rateLimitErr) {
		s.githubRateLimiter.ReserveN(time.Now(), s.githubRateLimiter.Burst())

		log.WithField("reset", rateLimitErr.Rate.Reset.Time).Warning("the Github rate limit has been reached. Use a token or wait until the limit reset")
		return FetchNotOK
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		log.WithError(err).Warning("github secondary rate limit reached")
		return FetchNotOK
	}

	var responseErr *github.ErrorResponse
	if errors.As(err, &responseErr) {
		statusCode := 0
		if responseErr.Response != nil {
			statusCode = responseErr.Response.StatusCode
		}

		log.WithFields(log.Fields{
			"statusCode": statusCode,
			"message":    responseErr.Message,
		}).Warning("github returned a non success status")
		return FetchNotOK
	}

	var acceptedErr *github.AcceptedError
	if errors.As(err, &acceptedErr) {
		log.Debug("github accepted the request but has no content yet")
		return FetchNotOK
	}

	log.WithError(err).Error("error catched when fetching data from github")
	return FetchTransportError
}
