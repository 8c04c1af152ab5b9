package model

import "time"

// DescriptionPlaceholder replaces a missing repository description
const DescriptionPlaceholder = "No description available"

// ProjectRecord is the display projection of a featured repository
type ProjectRecord struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Topics      []string       `json:"topics" yaml:"topics"`
	Language    *string        `json:"language" yaml:"language"`
	Stars       int            `json:"stars" yaml:"stars"`
	Forks       int            `json:"forks" yaml:"forks"`
	LastUpdated time.Time      `json:"lastUpdated" yaml:"lastUpdated"`
	RepoURL     string         `json:"repoUrl" yaml:"repoUrl"`
	HomepageURL *string        `json:"homepageUrl" yaml:"homepageUrl"`
	Readme      *string        `json:"readme,omitempty" yaml:"readme,omitempty"`
	Languages   map[string]int `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// NewProjectRecord maps a repository to its display record
// the homepage is kept absent rather than coerced to an empty string
func NewProjectRecord(r RepositoryRecord) ProjectRecord {
	description := DescriptionPlaceholder
	if r.Description != nil {
		description = *r.Description
	}

	topics := make([]string, len(r.Topics))
	copy(topics, r.Topics)

	return ProjectRecord{
		Name:        r.Name,
		Description: description,
		Topics:      topics,
		Language:    r.Language,
		Stars:       r.Stars,
		Forks:       r.Forks,
		LastUpdated: r.UpdatedAt,
		RepoURL:     r.HTMLURL,
		HomepageURL: r.Homepage,
	}
}

// ProjectDetails carries the optional readme and language breakdown
// fetched for the project at Index of a featured list
type ProjectDetails struct {
	Index     int
	Readme    *string
	Languages map[string]int
}
