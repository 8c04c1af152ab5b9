package model

import (
	"time"

	"github.com/google/go-github/v66/github"
)

// RepositoryRecord is one repository's metadata as returned by GitHub
// optional fields stay nil when GitHub sends null or omits them
type RepositoryRecord struct {
	ID          int64     `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	FullName    string    `json:"fullName" yaml:"fullName"`
	Description *string   `json:"description" yaml:"description"`
	HTMLURL     string    `json:"htmlUrl" yaml:"htmlUrl"`
	Homepage    *string   `json:"homepage" yaml:"homepage"`
	Language    *string   `json:"language" yaml:"language"`
	Stars       int       `json:"stars" yaml:"stars"`
	Forks       int       `json:"forks" yaml:"forks"`
	OpenIssues  int       `json:"openIssues" yaml:"openIssues"`
	Topics      []string  `json:"topics" yaml:"topics"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt"`
	PushedAt    time.Time `json:"pushedAt" yaml:"pushedAt"`
	Fork        bool      `json:"fork" yaml:"fork"`
	Archived    bool      `json:"archived" yaml:"archived"`
}

// NewRepositoryRecord converts a go-github repository, live or decoded from the snapshot
func NewRepositoryRecord(r *github.Repository) RepositoryRecord {
	topics := make([]string, len(r.Topics))
	copy(topics, r.Topics)

	return RepositoryRecord{
		ID:          r.GetID(),
		Name:        r.GetName(),
		FullName:    r.GetFullName(),
		Description: nonEmpty(r.Description),
		HTMLURL:     r.GetHTMLURL(),
		Homepage:    nonEmpty(r.Homepage),
		Language:    nonEmpty(r.Language),
		Stars:       r.GetStargazersCount(),
		Forks:       r.GetForksCount(),
		OpenIssues:  r.GetOpenIssuesCount(),
		Topics:      topics,
		CreatedAt:   r.GetCreatedAt().Time,
		UpdatedAt:   r.GetUpdatedAt().Time,
		PushedAt:    r.GetPushedAt().Time,
		Fork:        r.GetFork(),
		Archived:    r.GetArchived(),
	}
}

// NewRepositoryRecords converts a page (or a whole snapshot) of repositories
// nil entries are skipped
func NewRepositoryRecords(repos []*github.Repository) []RepositoryRecord {
	records := make([]RepositoryRecord, 0, len(repos))

	for _, r := range repos {
		if r == nil {
			continue
		}

		records = append(records, NewRepositoryRecord(r))
	}

	return records
}

// nonEmpty keeps GitHub's "" and null on the same side: absent
func nonEmpty(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}

	v := *value
	return &v
}
