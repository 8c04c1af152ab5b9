package model

type Category string

const (
	CategoryLanguage  Category = "language"
	CategoryFramework Category = "framework"
	CategoryTool      Category = "tool"
)

// SkillEntry is one bucket of a skill histogram
type SkillEntry struct {
	Name       string   `json:"name" yaml:"name"`
	Count      int      `json:"count" yaml:"count"`
	Percentage int      `json:"percentage" yaml:"percentage"`
	Category   Category `json:"category" yaml:"category"`
}

// Skills groups both aggregation passes
type Skills struct {
	Languages []SkillEntry `json:"languages" yaml:"languages"`
	Topics    []SkillEntry `json:"topics" yaml:"topics"`
}

// Names returns the first n skill names (fewer if there are not enough entries)
func Names(entries []SkillEntry, n int) []string {
	if n > len(entries) {
		n = len(entries)
	}

	if n <= 0 {
		return []string{}
	}

	names := make([]string, n)
	for i := 0; i < n; i++ {
		names[i] = entries[i].Name
	}

	return names
}
