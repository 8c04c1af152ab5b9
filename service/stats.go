package service

import (
	"errors"
	"time"

	"github.com/kuxall/portfolio-data/model"
	log "github.com/sirupsen/logrus"
)

var errMissingCreationDate = errors.New("profile has no creation date")

// ComputeStats derives the summary numbers, or returns model.FallbackStats as a whole
// when the profile or the repositories are unavailable or unusable.
// Projects is the account's public repository count, forks and archived included,
// while technologies and stars only cover the filtered repositories
func ComputeStats(profile model.Result[model.UserProfile], repos model.Result[[]model.RepositoryRecord], now time.Time) model.StatsSummary {
	if profile.IsEmpty() || repos.IsEmpty() {
		log.WithFields(log.Fields{
			"profileSource":      profile.Source,
			"repositoriesSource": repos.Source,
		}).Warning("no data to compute stats, using fallback stats")

		return model.FallbackStats
	}

	stats, err := computeStats(profile.Data, repos.Data, now)
	if err != nil {
		log.WithError(err).Warning("unable to compute stats, using fallback stats")
		return model.FallbackStats
	}

	return stats
}

func computeStats(profile model.UserProfile, repos []model.RepositoryRecord, now time.Time) (model.StatsSummary, error) {
	if profile.CreatedAt.IsZero() {
		return model.StatsSummary{}, errMissingCreationDate
	}

	languages := make(map[string]struct{})
	stars := 0

	for _, r := range repos {
		if r.Language != nil {
			languages[*r.Language] = struct{}{}
		}

		stars += r.Stars
	}

	return model.StatsSummary{
		Years:        max(1, now.Year()-profile.CreatedAt.Year()),
		Projects:     profile.PublicRepos,
		Technologies: len(languages),
		Stars:        stars,
	}, nil
}
