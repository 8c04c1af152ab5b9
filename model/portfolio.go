package model

// Narrative holds the generated strings of the hero and about sections
type Narrative struct {
	Tagline string `json:"tagline" yaml:"tagline"`
	About   string `json:"about" yaml:"about"`
}

// Sources records whether profile and repositories were live or cached
type Sources struct {
	Profile      Source `json:"profile" yaml:"profile"`
	Repositories Source `json:"repositories" yaml:"repositories"`
}

// Portfolio is everything a page render needs for one handle
type Portfolio struct {
	Profile   UserProfile     `json:"profile" yaml:"profile"`
	Projects  []ProjectRecord `json:"projects" yaml:"projects"`
	Skills    Skills          `json:"skills" yaml:"skills"`
	Stats     StatsSummary    `json:"stats" yaml:"stats"`
	Narrative Narrative       `json:"narrative" yaml:"narrative"`
	Sources   Sources         `json:"sources" yaml:"sources"`
}
