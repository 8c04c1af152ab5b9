package service

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kuxall/portfolio-data/model"
	"github.com/remeh/sizedwaitgroup"
	log "github.com/sirupsen/logrus"
)

const rawMediaType = "application/vnd.github.v3.raw"

// FetchReadme returns the raw readme of a repository
// false means there is no readme to show, whatever the reason
func (s githubService) FetchReadme(ctx context.Context, handle string, repo string) (string, bool) {
	if !s.allow(1) {
		return "", false
	}

	return s.readme(ctx, handle, repo)
}

// FetchLanguages returns the bytes of code per language of a repository
func (s githubService) FetchLanguages(ctx context.Context, handle string, repo string) (map[string]int, FetchStatus) {
	if !s.allow(1) {
		return nil, FetchNotOK
	}

	return s.languages(ctx, handle, repo)
}

// readme does not check the rate limit, callers must do it
func (s githubService) readme(ctx context.Context, handle string, repo string) (string, bool) {
	req, err := s.githubClient.NewRequest(
		http.MethodGet,
		fmt.Sprintf("repos/%s/%s/readme", url.PathEscape(handle), url.PathEscape(repo)),
		nil,
	)

	if err != nil {
		log.WithError(err).Error("unable to build readme request")
		return "", false
	}

	req.Header.Set("Accept", rawMediaType)

	var content bytes.Buffer
	if _, err := s.githubClient.Do(ctx, req, &content); err != nil {
		log.WithFields(log.Fields{
			"handle": handle,
			"repo":   repo,
			"status": s.HandleRequestErrors(err).String(),
		}).Debug("no readme available for repository")

		return "", false
	}

	return content.String(), true
}

// languages does not check the rate limit, callers must do it
func (s githubService) languages(ctx context.Context, handle string, repo string) (map[string]int, FetchStatus) {
	res, _, err := s.githubClient.Repositories.ListLanguages(ctx, handle, repo)

	if err != nil {
		return nil, s.HandleRequestErrors(err)
	}

	return res, FetchOK
}

// EnrichProjects attaches readme and language breakdown to each project, as enabled in
// the PORTFOLIO config. Requests run in parallel, bounded by MaxParallelTasksAllowed.
// A project whose details cannot be loaded is returned unchanged
func (s githubService) EnrichProjects(ctx context.Context, handle string, projects []model.ProjectRecord) []model.ProjectRecord {
	requestsPerProject := 0
	if s.config.Portfolio.IncludeReadme {
		requestsPerProject++
	}
	if s.config.Portfolio.IncludeLanguages {
		requestsPerProject++
	}

	if requestsPerProject == 0 || len(projects) == 0 {
		return projects
	}

	// consume every request up front to avoid enriching only a part of the projects
	if !s.allow(requestsPerProject * len(projects)) {
		log.WithField("projects", len(projects)).Warning("not enough requests in rate limiter to enrich projects")
		return projects
	}

	swg := sizedwaitgroup.New(s.config.Tasks.MaxParallelTasksAllowed)
	results := make(chan model.ProjectDetails, len(projects))

	for i, p := range projects {
		swg.Add()
		go s.FetchProjectDetails(ctx, handle, i, p, &swg, results)
	}

	log.Debug("waiting for all project details to be loaded")
	swg.Wait()
	close(results)

	enriched := make([]model.ProjectRecord, len(projects))
	copy(enriched, projects)

	for details := range results {
		if details.Readme != nil {
			enriched[details.Index].Readme = details.Readme
		}

		if details.Languages != nil {
			enriched[details.Index].Languages = details.Languages
		}
	}

	return enriched
}

// FetchProjectDetails loads the details of one project and sends them to ch
// note: the rate limit is not checked here, EnrichProjects reserves it for the whole batch
func (s githubService) FetchProjectDetails(ctx context.Context, handle string, index int, p model.ProjectRecord, swg *sizedwaitgroup.SizedWaitGroup, ch chan<- model.ProjectDetails) {
	defer swg.Done()

	details := model.ProjectDetails{Index: index}

	if s.config.Portfolio.IncludeReadme {
		if readme, ok := s.readme(ctx, handle, p.Name); ok {
			details.Readme = &readme
		}
	}

	if s.config.Portfolio.IncludeLanguages {
		if languages, status := s.languages(ctx, handle, p.Name); status == FetchOK {
			details.Languages = languages
		}
	}

	ch <- details
}
