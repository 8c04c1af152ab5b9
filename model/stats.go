package model

// StatsSummary is the four headline numbers of the profile page
type StatsSummary struct {
	Years        int `json:"years" yaml:"years"`
	Projects     int `json:"projects" yaml:"projects"`
	Technologies int `json:"technologies" yaml:"technologies"`
	Stars        int `json:"stars" yaml:"stars"`
}

// FallbackStats replaces the whole summary when any step computing it failed
var FallbackStats = StatsSummary{
	Years:        3,
	Projects:     20,
	Technologies: 8,
	Stars:        10,
}
