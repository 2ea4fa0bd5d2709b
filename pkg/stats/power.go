package stats

import "math"

// Normalization caps: an input at or above its cap scores 100.
const (
	ContributionsCap = 1000
	FollowersCap     = 500
	PublicReposCap   = 50
	TotalStarsCap    = 500
	TotalCommitsCap  = 2000
)

// Weights of each normalized input. They sum to 1.
const (
	ContributionsWeight = 0.25
	FollowersWeight     = 0.20
	PublicReposWeight   = 0.15
	TotalStarsWeight    = 0.20
	TotalCommitsWeight  = 0.20
)

// PowerLevel combines the five raw metrics into a score in [0, 100].
func PowerLevel(m Metrics) int {
	score := normalize(m.Contributions, ContributionsCap)*ContributionsWeight +
		normalize(m.Followers, FollowersCap)*FollowersWeight +
		normalize(m.PublicRepos, PublicReposCap)*PublicReposWeight +
		normalize(m.TotalStars, TotalStarsCap)*TotalStarsWeight +
		normalize(m.TotalCommits, TotalCommitsCap)*TotalCommitsWeight

	return clampScore(int(math.Round(score)))
}

func normalize(value, ceiling int) float64 {
	if value <= 0 {
		return 0
	}
	return math.Min(float64(value)/float64(ceiling)*100, 100)
}

func clampScore(v int) int {
	return min(max(v, 0), 100)
}
