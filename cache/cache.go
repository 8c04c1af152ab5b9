// Package cache holds the fallback snapshot used whenever GitHub cannot be reached.
//
// The snapshot is a JSON document in the GitHub REST wire shape
// ({"user": {...}, "repos": [...]}) embedded in the binary at build time.
// It is only read at runtime; the snapshot CLI command regenerates the file
// between builds.
package cache

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/go-github/v66/github"
	"github.com/kuxall/portfolio-data/model"
	log "github.com/sirupsen/logrus"
)

//go:embed github-cache.json
var embedded []byte

type document struct {
	User  *github.User         `json:"user"`
	Repos []*github.Repository `json:"repos"`
}

// Snapshot is a read-only (profile, repositories) pair
type Snapshot struct {
	doc document
}

// Parse decodes a snapshot document
func Parse(data []byte) (*Snapshot, error) {
	var doc document

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unable to decode snapshot: %w", err)
	}

	return &Snapshot{doc: doc}, nil
}

// Default returns the snapshot embedded at build time
// a broken embedded document yields an empty snapshot, never an error
func Default() *Snapshot {
	snapshot, err := Parse(embedded)

	if err != nil {
		log.WithError(err).Error("embedded snapshot is invalid, fallback data will be empty")
		return &Snapshot{}
	}

	return snapshot
}

// Load reads an override snapshot file, using the embedded one when path is empty
// or when the file cannot be read or decoded
func Load(path string) *Snapshot {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)

	if err != nil {
		log.WithError(err).WithField("path", path).Warning("unable to read snapshot file, using embedded snapshot")
		return Default()
	}

	snapshot, err := Parse(data)

	if err != nil {
		log.WithError(err).WithField("path", path).Warning("unable to decode snapshot file, using embedded snapshot")
		return Default()
	}

	log.WithFields(log.Fields{
		"path":         path,
		"repositories": len(snapshot.doc.Repos),
	}).Debug("snapshot loaded from file")

	return snapshot
}

// User returns the cached profile, false when the snapshot has none
func (s *Snapshot) User() (model.UserProfile, bool) {
	if s == nil || s.doc.User == nil {
		return model.UserProfile{}, false
	}

	return model.NewUserProfile(s.doc.User), true
}

// Repositories returns a fresh, unfiltered copy of the cached repository list
// false when the document has no repos key at all
func (s *Snapshot) Repositories() ([]model.RepositoryRecord, bool) {
	if s == nil || s.doc.Repos == nil {
		return nil, false
	}

	return model.NewRepositoryRecords(s.doc.Repos), true
}

// Write stores a new snapshot document at path (temp file then rename)
func Write(path string, user model.UserProfile, repos []model.RepositoryRecord) error {
	doc := document{
		User:  toGithubUser(user),
		Repos: make([]*github.Repository, 0, len(repos)),
	}

	for _, r := range repos {
		doc.Repos = append(doc.Repos, toGithubRepository(r))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to encode snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("unable to create snapshot directory: %w", err)
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("unable to write snapshot: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("unable to move snapshot in place: %w", err)
	}

	log.WithFields(log.Fields{
		"path":         path,
		"repositories": len(repos),
	}).Info("snapshot written")

	return nil
}

func toGithubUser(p model.UserProfile) *github.User {
	return &github.User{
		Login:           github.String(p.Login),
		Name:            p.Name,
		AvatarURL:       github.String(p.AvatarURL),
		Bio:             p.Bio,
		Location:        p.Location,
		Email:           p.Email,
		Blog:            p.Blog,
		Company:         p.Company,
		TwitterUsername: p.TwitterUsername,
		PublicRepos:     github.Int(p.PublicRepos),
		Followers:       github.Int(p.Followers),
		Following:       github.Int(p.Following),
		CreatedAt:       &github.Timestamp{Time: p.CreatedAt},
		UpdatedAt:       &github.Timestamp{Time: p.UpdatedAt},
	}
}

func toGithubRepository(r model.RepositoryRecord) *github.Repository {
	return &github.Repository{
		ID:              github.Int64(r.ID),
		Name:            github.String(r.Name),
		FullName:        github.String(r.FullName),
		Description:     r.Description,
		HTMLURL:         github.String(r.HTMLURL),
		Homepage:        r.Homepage,
		Language:        r.Language,
		StargazersCount: github.Int(r.Stars),
		ForksCount:      github.Int(r.Forks),
		OpenIssuesCount: github.Int(r.OpenIssues),
		Topics:          r.Topics,
		CreatedAt:       &github.Timestamp{Time: r.CreatedAt},
		UpdatedAt:       &github.Timestamp{Time: r.UpdatedAt},
		PushedAt:        &github.Timestamp{Time: r.PushedAt},
		Fork:            github.Bool(r.Fork),
		Archived:        github.Bool(r.Archived),
	}
}
