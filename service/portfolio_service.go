package service

import (
	"context"
	"time"

	"github.com/kuxall/portfolio-data/config"
	"github.com/kuxall/portfolio-data/model"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// PortfolioService builds the display records of a profile page.
// Every method returns a best effort value, never an error
type PortfolioService interface {
	GetPortfolio(ctx context.Context, handle string) model.Portfolio
	GetProjects(ctx context.Context, handle string, maxProjects int) []model.ProjectRecord
	GetSkills(ctx context.Context, handle string) model.Skills
	GetStats(ctx context.Context, handle string) model.StatsSummary
	GetNarrative(ctx context.Context, handle string) model.Narrative
	GetReadme(ctx context.Context, handle string, repo string) (string, bool)
	GetLanguages(ctx context.Context, handle string, repo string) (map[string]int, bool)
}

type portfolioService struct {
	githubService GithubService
	config        config.Config
	now           func() time.Time
}

func NewPortfolioService(config config.Config, githubService GithubService) PortfolioService {
	return portfolioService{
		githubService: githubService,
		config:        config,
		now:           time.Now,
	}
}

// GetPortfolio fetches the profile and the repositories once, then runs the
// independent consumers in parallel. Each consumer only reads the shared inputs
// and writes its own field of the result
func (s portfolioService) GetPortfolio(ctx context.Context, handle string) model.Portfolio {
	profile := s.githubService.FetchUser(ctx, handle)
	repos := s.githubService.FetchRepositories(ctx, handle)

	log.WithFields(log.Fields{
		"handle":             handle,
		"profileSource":      profile.Source,
		"repositoriesSource": repos.Source,
		"repositories":       len(repos.Data),
	}).Info("building portfolio")

	portfolio := model.Portfolio{
		Profile: profile.Data,
		Sources: model.Sources{
			Profile:      profile.Source,
			Repositories: repos.Source,
		},
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		portfolio.Projects = s.featuredProjects(gCtx, handle, repos, s.config.Portfolio.MaxFeaturedProjects)
		return nil
	})

	g.Go(func() error {
		portfolio.Skills = AggregateSkills(repos.Data)
		return nil
	})

	g.Go(func() error {
		portfolio.Stats = ComputeStats(profile, repos, s.now())
		return nil
	})

	g.Go(func() error {
		portfolio.Narrative = GenerateNarrative(profile.Data, LanguageSkills(repos.Data))
		return nil
	})

	// consumers never fail
	_ = g.Wait()

	return portfolio
}

func (s portfolioService) GetProjects(ctx context.Context, handle string, maxProjects int) []model.ProjectRecord {
	return s.featuredProjects(ctx, handle, s.githubService.FetchRepositories(ctx, handle), maxProjects)
}

func (s portfolioService) GetSkills(ctx context.Context, handle string) model.Skills {
	return AggregateSkills(s.githubService.FetchRepositories(ctx, handle).Data)
}

func (s portfolioService) GetStats(ctx context.Context, handle string) model.StatsSummary {
	profile := s.githubService.FetchUser(ctx, handle)
	repos := s.githubService.FetchRepositories(ctx, handle)

	return ComputeStats(profile, repos, s.now())
}

func (s portfolioService) GetNarrative(ctx context.Context, handle string) model.Narrative {
	profile := s.githubService.FetchUser(ctx, handle)
	repos := s.githubService.FetchRepositories(ctx, handle)

	return GenerateNarrative(profile.Data, LanguageSkills(repos.Data))
}

func (s portfolioService) GetReadme(ctx context.Context, handle string, repo string) (string, bool) {
	return s.githubService.FetchReadme(ctx, handle, repo)
}

func (s portfolioService) GetLanguages(ctx context.Context, handle string, repo string) (map[string]int, bool) {
	languages, status := s.githubService.FetchLanguages(ctx, handle, repo)
	return languages, status == FetchOK
}

// featuredProjects ranks the repositories and enriches them when the data is live
// cached repositories are not enriched, github is most likely unreachable
func (s portfolioService) featuredProjects(ctx context.Context, handle string, repos model.Result[[]model.RepositoryRecord], maxProjects int) []model.ProjectRecord {
	projects := RankProjects(repos.Data, maxProjects, s.config.Portfolio.MinStarsForFeatured)

	if repos.Source != model.SourceLive {
		return projects
	}

	return s.githubService.EnrichProjects(ctx, handle, projects)
}
