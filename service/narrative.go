package service

import (
	"fmt"
	"strings"

	"github.com/kuxall/portfolio-data/model"
)

const (
	taglineSkills = 3
	aboutSkills   = 5

	taglineTemplate = "Developer passionate about %s"
	genericTagline  = "Developer building things in the open"
	aboutTemplate   = "%s is a software developer"
)

// GenerateNarrative builds the tagline and about paragraph from the profile
// and the ranked skills
func GenerateNarrative(profile model.UserProfile, skills []model.SkillEntry) model.Narrative {
	return model.Narrative{
		Tagline: Tagline(profile, skills),
		About:   About(profile, skills),
	}
}

// Tagline returns the bio verbatim, or a sentence built from the top three skills
func Tagline(profile model.UserProfile, skills []model.SkillEntry) string {
	if hasBio(profile) {
		return *profile.Bio
	}

	if len(skills) > 0 {
		return fmt.Sprintf(taglineTemplate, strings.Join(model.Names(skills, taglineSkills), ", "))
	}

	return genericTagline
}

// About returns the about paragraph: the bio (or a sentence naming the user),
// where the user is based and the top five skills
func About(profile model.UserProfile, skills []model.SkillEntry) string {
	var about strings.Builder

	if hasBio(profile) {
		about.WriteString(*profile.Bio)

		if profile.Location != nil {
			about.WriteString(" Based in " + *profile.Location + ".")
		}
	} else {
		about.WriteString(fmt.Sprintf(aboutTemplate, profile.DisplayName()))

		if profile.Location != nil {
			about.WriteString(" based in " + *profile.Location)
		}

		about.WriteString(".")
	}

	if len(skills) > 0 {
		about.WriteString(" Skilled in " + strings.Join(model.Names(skills, aboutSkills), ", ") + ".")
	}

	return about.String()
}

func hasBio(profile model.UserProfile) bool {
	return profile.Bio != nil && strings.TrimSpace(*profile.Bio) != ""
}
