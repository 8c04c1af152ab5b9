package service

import (
	"testing"

	"github.com/google/go-github/v66/github"
	"github.com/kuxall/portfolio-data/model"
	"github.com/stretchr/testify/assert"
)

func skillEntries(names ...string) []model.SkillEntry {
	entries := make([]model.SkillEntry, len(names))
	for i, name := range names {
		entries[i] = model.SkillEntry{Name: name, Category: model.CategoryLanguage}
	}

	return entries
}

func TestTagline(t *testing.T) {
	tests := []struct {
		name     string
		profile  model.UserProfile
		skills   []model.SkillEntry
		expected string
	}{
		{
			name:     "Bio is used verbatim",
			profile:  model.UserProfile{Bio: github.String("AI & ML Engineer")},
			skills:   skillEntries("Python"),
			expected: "AI & ML Engineer",
		},
		{
			name:     "Empty bio uses the top three skills",
			profile:  model.UserProfile{Bio: github.String("")},
			skills:   skillEntries("Python", "Go", "Rust"),
			expected: "Developer passionate about Python, Go, Rust",
		},
		{
			name:     "Only the first three skills",
			profile:  model.UserProfile{},
			skills:   skillEntries("Python", "Go", "Rust", "C", "Zig"),
			expected: "Developer passionate about Python, Go, Rust",
		},
		{
			name:     "Fewer than three skills",
			profile:  model.UserProfile{},
			skills:   skillEntries("Go"),
			expected: "Developer passionate about Go",
		},
		{
			name:     "No bio and no skills",
			profile:  model.UserProfile{},
			skills:   nil,
			expected: genericTagline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tagline(tt.profile, tt.skills))
		})
	}
}

func TestAbout(t *testing.T) {
	skills := skillEntries("Python", "Go", "Rust", "C", "Zig", "Lua")

	tests := []struct {
		name     string
		profile  model.UserProfile
		skills   []model.SkillEntry
		expected string
	}{
		{
			name: "Bio with location",
			profile: model.UserProfile{
				Login:    "Kuxall",
				Bio:      github.String("AI & ML Engineer."),
				Location: github.String("Kathmandu"),
			},
			skills:   skills,
			expected: "AI & ML Engineer. Based in Kathmandu. Skilled in Python, Go, Rust, C, Zig.",
		},
		{
			name: "Bio without location",
			profile: model.UserProfile{
				Bio: github.String("AI & ML Engineer."),
			},
			skills:   skillEntries("Python", "Go"),
			expected: "AI & ML Engineer. Skilled in Python, Go.",
		},
		{
			name: "No bio uses the display name",
			profile: model.UserProfile{
				Login:    "Kuxall",
				Name:     github.String("Kushal"),
				Location: github.String("Kathmandu"),
			},
			skills:   skills,
			expected: "Kushal is a software developer based in Kathmandu. Skilled in Python, Go, Rust, C, Zig.",
		},
		{
			name:     "No bio and no name uses the login",
			profile:  model.UserProfile{Login: "Kuxall"},
			skills:   skillEntries("Go"),
			expected: "Kuxall is a software developer. Skilled in Go.",
		},
		{
			name:     "No skills",
			profile:  model.UserProfile{Login: "Kuxall"},
			skills:   nil,
			expected: "Kuxall is a software developer.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, About(tt.profile, tt.skills))
		})
	}
}

func TestGenerateNarrative(t *testing.T) {
	narrative := GenerateNarrative(model.UserProfile{Login: "Kuxall"}, skillEntries("Python", "Go", "Rust"))

	assert.Equal(t, model.Narrative{
		Tagline: "Developer passionate about Python, Go, Rust",
		About:   "Kuxall is a software developer. Skilled in Python, Go, Rust.",
	}, narrative)
}
