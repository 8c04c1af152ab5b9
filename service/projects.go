package service

import (
	"sort"

	"github.com/kuxall/portfolio-data/model"
)

// RankProjects orders repositories by stars then by last update (both descending),
// keeps at most maxProjects of those with at least minStars stars and maps them
// to display records. Exact ties keep their input order
func RankProjects(repos []model.RepositoryRecord, maxProjects int, minStars int) []model.ProjectRecord {
	if maxProjects <= 0 {
		return []model.ProjectRecord{}
	}

	ranked := make([]model.RepositoryRecord, 0, len(repos))
	for _, r := range repos {
		if r.Stars >= minStars {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Stars != ranked[j].Stars {
			return ranked[i].Stars > ranked[j].Stars
		}

		return ranked[i].UpdatedAt.After(ranked[j].UpdatedAt)
	})

	if len(ranked) > maxProjects {
		ranked = ranked[:maxProjects]
	}

	projects := make([]model.ProjectRecord, len(ranked))
	for i, r := range ranked {
		projects[i] = model.NewProjectRecord(r)
	}

	return projects
}
