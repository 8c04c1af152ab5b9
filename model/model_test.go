package model

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
)

func TestNewRepositoryRecord(t *testing.T) {
	updated := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		repo     *github.Repository
		expected RepositoryRecord
	}{
		{
			name: "All fields present",
			repo: &github.Repository{
				ID:              github.Int64(42),
				Name:            github.String("portfolio"),
				FullName:        github.String("Kuxall/portfolio"),
				Description:     github.String("personal site"),
				HTMLURL:         github.String("https://github.com/Kuxall/portfolio"),
				Homepage:        github.String("https://kuxall.dev"),
				Language:        github.String("TypeScript"),
				StargazersCount: github.Int(5),
				ForksCount:      github.Int(1),
				OpenIssuesCount: github.Int(2),
				Topics:          []string{"astro", "portfolio"},
				UpdatedAt:       &github.Timestamp{Time: updated},
				Fork:            github.Bool(false),
				Archived:        github.Bool(true),
			},
			expected: RepositoryRecord{
				ID:          42,
				Name:        "portfolio",
				FullName:    "Kuxall/portfolio",
				Description: github.String("personal site"),
				HTMLURL:     "https://github.com/Kuxall/portfolio",
				Homepage:    github.String("https://kuxall.dev"),
				Language:    github.String("TypeScript"),
				Stars:       5,
				Forks:       1,
				OpenIssues:  2,
				Topics:      []string{"astro", "portfolio"},
				UpdatedAt:   updated,
				Archived:    true,
			},
		},
		{
			name: "Missing and empty optional fields are absent",
			repo: &github.Repository{
				Name:     github.String("scratch"),
				Homepage: github.String(""),
			},
			expected: RepositoryRecord{
				Name:   "scratch",
				Topics: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewRepositoryRecord(tt.repo))
		})
	}
}

func TestNewRepositoryRecordsSkipsNil(t *testing.T) {
	records := NewRepositoryRecords([]*github.Repository{
		{Name: github.String("a")},
		nil,
		{Name: github.String("b")},
	})

	assert.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Name)
	assert.Equal(t, "b", records[1].Name)
}

func TestNewUserProfile(t *testing.T) {
	created := time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC)

	profile := NewUserProfile(&github.User{
		Login:       github.String("Kuxall"),
		Name:        github.String("Kushal"),
		Bio:         github.String(""),
		Location:    github.String("Kathmandu"),
		PublicRepos: github.Int(31),
		Followers:   github.Int(12),
		CreatedAt:   &github.Timestamp{Time: created},
	})

	assert.Equal(t, "Kuxall", profile.Login)
	assert.Equal(t, "Kushal", profile.DisplayName())
	assert.Nil(t, profile.Bio)
	assert.Nil(t, profile.Email)
	assert.Equal(t, "Kathmandu", *profile.Location)
	assert.Equal(t, 31, profile.PublicRepos)
	assert.Equal(t, 12, profile.Followers)
	assert.Equal(t, created, profile.CreatedAt)
}

func TestDisplayNameFallsBackToLogin(t *testing.T) {
	assert.Equal(t, "octocat", UserProfile{Login: "octocat"}.DisplayName())
	assert.Equal(t, "octocat", UserProfile{Login: "octocat", Name: github.String("")}.DisplayName())
}

func TestNewProjectRecord(t *testing.T) {
	updated := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	project := NewProjectRecord(RepositoryRecord{
		Name:      "tool",
		HTMLURL:   "https://github.com/Kuxall/tool",
		Stars:     3,
		Forks:     4,
		UpdatedAt: updated,
	})

	assert.Equal(t, DescriptionPlaceholder, project.Description)
	assert.Nil(t, project.HomepageURL)
	assert.Nil(t, project.Language)
	assert.Equal(t, updated, project.LastUpdated)
	assert.Equal(t, "https://github.com/Kuxall/tool", project.RepoURL)
	assert.Equal(t, []string{}, project.Topics)
}

func TestNames(t *testing.T) {
	entries := []SkillEntry{{Name: "Python"}, {Name: "Go"}, {Name: "Rust"}}

	assert.Equal(t, []string{"Python", "Go"}, Names(entries, 2))
	assert.Equal(t, []string{"Python", "Go", "Rust"}, Names(entries, 5))
	assert.Equal(t, []string{}, Names(nil, 3))
}

func TestResult(t *testing.T) {
	assert.Equal(t, SourceLive, Live(1).Source)
	assert.Equal(t, SourceCache, Fallback("x").Source)

	empty := Empty[[]RepositoryRecord]()
	assert.True(t, empty.IsEmpty())
	assert.Nil(t, empty.Data)
}

func TestProjectQueryMaxProjects(t *testing.T) {
	assert.Equal(t, 9, ProjectQuery{}.MaxProjects(9))
	assert.Equal(t, 3, ProjectQuery{Limit: 3}.MaxProjects(9))
	assert.Equal(t, 9, ProjectQuery{Limit: 50}.MaxProjects(9))
	assert.Equal(t, 9, ProjectQuery{Limit: -1}.MaxProjects(9))
}

func TestNewAPIError(t *testing.T) {
	assert.Equal(t, "RATE_LIMIT_REACHED", NewAPIError(errors.New("RATE_LIMIT_REACHED")).Code)
	assert.Equal(t, "README_NOT_FOUND", NewAPIError(errors.New("README_NOT_FOUND")).Code)
	assert.Equal(t, "FETCH_ERROR", NewAPIError(errors.New("FETCH_ERROR")).Code)
}

func TestNewAPIErrorMessages(t *testing.T) {
	assert.Equal(t, "unsupported export format, use json or yaml", NewAPIError(errors.New("INVALID_FORMAT")).Message)
	assert.Equal(t, "invalid query parameters", NewAPIError(errors.New("INVALID_QUERY")).Message)

	unknown := NewAPIError(errors.New("SOMETHING_ELSE"))
	assert.Equal(t, "SOMETHING_ELSE", unknown.Code)
	assert.Contains(t, unknown.Message, "internal server error")
}
