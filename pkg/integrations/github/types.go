package github

import "github.com/matzehuels/gitroast/pkg/stats"

// User is the identity and counter subset of a GitHub user record.
type User struct {
	Login       string
	Name        string // falls back to Login when the account has no display name
	AvatarURL   string
	Bio         string
	Followers   int
	Following   int
	PublicRepos int
}

// Repo identifies one repository in a listing.
type Repo struct {
	Owner string
	Name  string
	Stars int
}

// Calendar is the trailing-year contribution calendar.
type Calendar struct {
	// Total is the upstream's own total. It is not recomputed from Days.
	Total int
	Days  []stats.ContributionDay
}
