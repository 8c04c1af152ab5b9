package model

import (
	"time"

	"github.com/google/go-github/v66/github"
)

// UserProfile holds the identity and bio fields of a GitHub account
type UserProfile struct {
	Login           string    `json:"login" yaml:"login"`
	Name            *string   `json:"name" yaml:"name"`
	AvatarURL       string    `json:"avatarUrl" yaml:"avatarUrl"`
	Bio             *string   `json:"bio" yaml:"bio"`
	Location        *string   `json:"location" yaml:"location"`
	Email           *string   `json:"email" yaml:"email"`
	Blog            *string   `json:"blog" yaml:"blog"`
	Company         *string   `json:"company" yaml:"company"`
	TwitterUsername *string   `json:"twitterUsername" yaml:"twitterUsername"`
	PublicRepos     int       `json:"publicRepos" yaml:"publicRepos"`
	Followers       int       `json:"followers" yaml:"followers"`
	Following       int       `json:"following" yaml:"following"`
	CreatedAt       time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// NewUserProfile converts a go-github user
func NewUserProfile(u *github.User) UserProfile {
	return UserProfile{
		Login:           u.GetLogin(),
		Name:            nonEmpty(u.Name),
		AvatarURL:       u.GetAvatarURL(),
		Bio:             nonEmpty(u.Bio),
		Location:        nonEmpty(u.Location),
		Email:           nonEmpty(u.Email),
		Blog:            nonEmpty(u.Blog),
		Company:         nonEmpty(u.Company),
		TwitterUsername: nonEmpty(u.TwitterUsername),
		PublicRepos:     u.GetPublicRepos(),
		Followers:       u.GetFollowers(),
		Following:       u.GetFollowing(),
		CreatedAt:       u.GetCreatedAt().Time,
		UpdatedAt:       u.GetUpdatedAt().Time,
	}
}

// DisplayName returns the profile name, or the login when no name is set
func (p UserProfile) DisplayName() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}

	return p.Login
}
