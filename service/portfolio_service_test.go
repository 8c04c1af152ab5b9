package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/kuxall/portfolio-data/config"
	"github.com/kuxall/portfolio-data/model"
	"github.com/remeh/sizedwaitgroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGithubService returns fixed results and records the enrichment calls
type fakeGithubService struct {
	user      model.Result[model.UserProfile]
	repos     model.Result[[]model.RepositoryRecord]
	readme    string
	languages map[string]int

	mu       sync.Mutex
	enriched int
}

func (f *fakeGithubService) FetchUser(context.Context, string) model.Result[model.UserProfile] {
	return f.user
}

func (f *fakeGithubService) FetchRepositories(context.Context, string) model.Result[[]model.RepositoryRecord] {
	return f.repos
}

func (f *fakeGithubService) FetchReadme(context.Context, string, string) (string, bool) {
	return f.readme, f.readme != ""
}

func (f *fakeGithubService) FetchLanguages(context.Context, string, string) (map[string]int, FetchStatus) {
	if f.languages == nil {
		return nil, FetchNotOK
	}

	return f.languages, FetchOK
}

func (f *fakeGithubService) EnrichProjects(_ context.Context, _ string, projects []model.ProjectRecord) []model.ProjectRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.enriched++

	return projects
}

func (f *fakeGithubService) FetchProjectDetails(_ context.Context, _ string, index int, _ model.ProjectRecord, swg *sizedwaitgroup.SizedWaitGroup, ch chan<- model.ProjectDetails) {
	defer swg.Done()
	ch <- model.ProjectDetails{Index: index}
}

func (f *fakeGithubService) HandleRequestErrors(error) FetchStatus {
	return FetchTransportError
}

func newTestPortfolioService(gh GithubService, conf *config.Config) portfolioService {
	if conf == nil {
		conf = config.GetDefault()
	}

	return portfolioService{
		githubService: gh,
		config:        *conf,
		now:           func() time.Time { return time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC) },
	}
}

func liveFake() *fakeGithubService {
	return &fakeGithubService{
		user: model.Live(model.UserProfile{
			Login:       "Kuxall",
			Location:    github.String("Kathmandu"),
			PublicRepos: 12,
			CreatedAt:   time.Date(2020, 11, 9, 0, 0, 0, 0, time.UTC),
		}),
		repos: model.Live([]model.RepositoryRecord{
			{Name: "rag", Language: github.String("Python"), Stars: 9, Topics: []string{"langchain", "docker"}},
			{Name: "site", Language: github.String("Astro"), Stars: 2, Topics: []string{"astro"}},
			{Name: "notes", Language: github.String("Python"), Stars: 1},
		}),
	}
}

func TestGetPortfolio(t *testing.T) {
	fake := liveFake()
	svc := newTestPortfolioService(fake, nil)

	portfolio := svc.GetPortfolio(context.Background(), "Kuxall")

	assert.Equal(t, "Kuxall", portfolio.Profile.Login)
	assert.Equal(t, model.Sources{Profile: model.SourceLive, Repositories: model.SourceLive}, portfolio.Sources)
	assert.Equal(t, []string{"rag", "site", "notes"}, projectNames(portfolio.Projects))

	require.Len(t, portfolio.Skills.Languages, 2)
	assert.Equal(t, "Python", portfolio.Skills.Languages[0].Name)
	assert.Equal(t, 67, portfolio.Skills.Languages[0].Percentage)
	assert.Len(t, portfolio.Skills.Topics, 3)

	assert.Equal(t, model.StatsSummary{Years: 5, Projects: 12, Technologies: 2, Stars: 12}, portfolio.Stats)

	assert.Equal(t, "Developer passionate about Python, Astro", portfolio.Narrative.Tagline)
	assert.Equal(t, "Kuxall is a software developer based in Kathmandu. Skilled in Python, Astro.", portfolio.Narrative.About)

	assert.Equal(t, 1, fake.enriched)
}

func TestGetPortfolioFromCache(t *testing.T) {
	fake := liveFake()
	fake.user.Source = model.SourceCache
	fake.repos.Source = model.SourceCache
	svc := newTestPortfolioService(fake, nil)

	portfolio := svc.GetPortfolio(context.Background(), "Kuxall")

	assert.Equal(t, model.Sources{Profile: model.SourceCache, Repositories: model.SourceCache}, portfolio.Sources)
	assert.Len(t, portfolio.Projects, 3)
	// cached projects are not enriched
	assert.Equal(t, 0, fake.enriched)
}

func TestGetPortfolioWithoutAnyData(t *testing.T) {
	fake := &fakeGithubService{
		user:  model.Empty[model.UserProfile](),
		repos: model.Empty[[]model.RepositoryRecord](),
	}
	svc := newTestPortfolioService(fake, nil)

	portfolio := svc.GetPortfolio(context.Background(), "ghost")

	assert.Empty(t, portfolio.Projects)
	assert.Empty(t, portfolio.Skills.Languages)
	assert.Empty(t, portfolio.Skills.Topics)
	assert.Equal(t, model.FallbackStats, portfolio.Stats)
	assert.Equal(t, genericTagline, portfolio.Narrative.Tagline)
	assert.Equal(t, model.Sources{Profile: model.SourceEmpty, Repositories: model.SourceEmpty}, portfolio.Sources)
}

func TestGetProjects(t *testing.T) {
	conf := config.GetDefault()
	conf.Portfolio.MinStarsForFeatured = 2
	svc := newTestPortfolioService(liveFake(), conf)

	assert.Equal(t, []string{"rag", "site"}, projectNames(svc.GetProjects(context.Background(), "Kuxall", 9)))
	assert.Equal(t, []string{"rag"}, projectNames(svc.GetProjects(context.Background(), "Kuxall", 1)))
}

func TestGetSkillsStatsNarrative(t *testing.T) {
	svc := newTestPortfolioService(liveFake(), nil)

	skills := svc.GetSkills(context.Background(), "Kuxall")
	assert.Len(t, skills.Languages, 2)

	stats := svc.GetStats(context.Background(), "Kuxall")
	assert.Equal(t, stats, svc.GetStats(context.Background(), "Kuxall"))
	assert.Equal(t, 12, stats.Stars)

	narrative := svc.GetNarrative(context.Background(), "Kuxall")
	assert.Equal(t, "Developer passionate about Python, Astro", narrative.Tagline)
}

func TestGetReadmeAndLanguages(t *testing.T) {
	fake := liveFake()
	svc := newTestPortfolioService(fake, nil)

	_, found := svc.GetReadme(context.Background(), "Kuxall", "rag")
	assert.False(t, found)

	_, found = svc.GetLanguages(context.Background(), "Kuxall", "rag")
	assert.False(t, found)

	fake.readme = "# rag"
	fake.languages = map[string]int{"Python": 10}

	readme, found := svc.GetReadme(context.Background(), "Kuxall", "rag")
	assert.True(t, found)
	assert.Equal(t, "# rag", readme)

	languages, found := svc.GetLanguages(context.Background(), "Kuxall", "rag")
	assert.True(t, found)
	assert.Equal(t, map[string]int{"Python": 10}, languages)
}

func TestNewPortfolioService(t *testing.T) {
	svc := NewPortfolioService(*config.GetDefault(), liveFake())
	assert.NotNil(t, svc)
}
