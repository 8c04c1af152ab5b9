package service

import (
	"context"

	"github.com/google/go-github/v66/github"
	"github.com/kuxall/portfolio-data/model"
	log "github.com/sirupsen/logrus"
)

const reposPageSize = 100

// FetchRepositories collects every repository of handle, most recently updated first,
// then removes forks and archived repositories.
// Any page failure discards what was collected so far and the cached list is used
// instead, so the result is never a mix of live and cached data
func (s githubService) FetchRepositories(ctx context.Context, handle string) model.Result[[]model.RepositoryRecord] {
	collected, status := s.collectRepositories(ctx, handle)

	if status == FetchOK {
		return model.Live(FilterRepositories(collected))
	}

	log.WithFields(log.Fields{
		"handle": handle,
		"status": status.String(),
	}).Warning("failed to fetch repositories from github, using cached data")

	cached, ok := s.snapshot.Repositories()
	if !ok {
		log.WithField("handle", handle).Error("no cached repositories available")
		return model.Empty[[]model.RepositoryRecord]()
	}

	return model.Fallback(FilterRepositories(cached))
}

// collectRepositories requests pages until one is shorter than the page size
func (s githubService) collectRepositories(ctx context.Context, handle string) ([]model.RepositoryRecord, FetchStatus) {
	collected := make([]model.RepositoryRecord, 0)

	for page := 1; ; page++ {
		repos, status := s.listRepositoriesPage(ctx, handle, page)

		if status != FetchOK {
			return nil, status
		}

		collected = append(collected, model.NewRepositoryRecords(repos)...)

		log.WithFields(log.Fields{
			"handle":    handle,
			"page":      page,
			"pageSize":  len(repos),
			"collected": len(collected),
		}).Debug("repositories page fetched")

		// a short or empty page is the last one
		if len(repos) < reposPageSize {
			break
		}
	}

	return collected, FetchOK
}

func (s githubService) listRepositoriesPage(ctx context.Context, handle string, page int) ([]*github.Repository, FetchStatus) {
	if !s.allow(1) {
		return nil, FetchNotOK
	}

	repos, _, err := s.githubClient.Repositories.ListByUser(ctx, handle, &github.RepositoryListByUserOptions{
		Sort: "updated",
		ListOptions: github.ListOptions{
			Page:    page,
			PerPage: reposPageSize,
		},
	})

	if err != nil {
		return nil, s.HandleRequestErrors(err)
	}

	return repos, FetchOK
}

// FilterRepositories drops forks and archived repositories, keeping the input order
func FilterRepositories(repos []model.RepositoryRecord) []model.RepositoryRecord {
	filtered := make([]model.RepositoryRecord, 0, len(repos))

	for _, r := range repos {
		if r.Fork || r.Archived {
			continue
		}

		filtered = append(filtered, r)
	}

	return filtered
}
