package service

import (
	"math"
	"sort"
	"strings"

	"github.com/kuxall/portfolio-data/model"
)

const maxTopicSkills = 30

// checked in this order: a topic matching both lists is a framework
var (
	frameworkKeywords = []string{
		"react", "vue", "angular", "svelte", "nextjs", "nuxt", "astro",
		"django", "flask", "fastapi", "express", "spring", "rails", "laravel",
		"tailwind", "bootstrap", "pytorch", "tensorflow", "keras", "langchain",
		"huggingface", "transformers", "scikit", "pandas", "numpy",
	}
	toolKeywords = []string{
		"docker", "kubernetes", "k8s", "terraform", "ansible", "aws", "gcp",
		"azure", "git", "jenkins", "linux", "vscode", "webpack", "vite",
		"redis", "postgres", "mysql", "mongodb", "sqlite", "jupyter", "nginx",
	}
)

// CategorizeTopic classifies a topic tag by case-insensitive substring match.
// Topics matching no keyword are reported in the language category
func CategorizeTopic(topic string) model.Category {
	lower := strings.ToLower(topic)

	for _, keyword := range frameworkKeywords {
		if strings.Contains(lower, keyword) {
			return model.CategoryFramework
		}
	}

	for _, keyword := range toolKeywords {
		if strings.Contains(lower, keyword) {
			return model.CategoryTool
		}
	}

	return model.CategoryLanguage
}

// AggregateSkills runs both histogram passes over the same repositories
func AggregateSkills(repos []model.RepositoryRecord) model.Skills {
	return model.Skills{
		Languages: LanguageSkills(repos),
		Topics:    TopicSkills(repos),
	}
}

// LanguageSkills counts the primary language of each repository
func LanguageSkills(repos []model.RepositoryRecord) []model.SkillEntry {
	h := newHistogram()

	for _, r := range repos {
		if r.Language != nil {
			h.add(*r.Language)
		}
	}

	return h.entries(func(string) model.Category { return model.CategoryLanguage })
}

// TopicSkills counts each distinct topic once per repository and keeps the top entries
func TopicSkills(repos []model.RepositoryRecord) []model.SkillEntry {
	h := newHistogram()

	for _, r := range repos {
		seen := make(map[string]struct{}, len(r.Topics))

		for _, topic := range r.Topics {
			if _, found := seen[topic]; found {
				continue
			}

			seen[topic] = struct{}{}
			h.add(topic)
		}
	}

	entries := h.entries(CategorizeTopic)
	if len(entries) > maxTopicSkills {
		entries = entries[:maxTopicSkills]
	}

	return entries
}

// histogram counts names and remembers the order they were first seen in
type histogram struct {
	order  []string
	counts map[string]int
	total  int
}

func newHistogram() *histogram {
	return &histogram{counts: make(map[string]int)}
}

func (h *histogram) add(name string) {
	if _, found := h.counts[name]; !found {
		h.order = append(h.order, name)
	}

	h.counts[name]++
	h.total++
}

// entries returns the buckets sorted by descending count, first seen first on ties
func (h *histogram) entries(categorize func(string) model.Category) []model.SkillEntry {
	entries := make([]model.SkillEntry, 0, len(h.order))

	for _, name := range h.order {
		count := h.counts[name]

		entries = append(entries, model.SkillEntry{
			Name:       name,
			Count:      count,
			Percentage: percentage(count, h.total),
			Category:   categorize(name),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	return entries
}

func percentage(count int, total int) int {
	if total == 0 {
		return 0
	}

	return int(math.Round(100 * float64(count) / float64(total)))
}
