package stats

// ContributionDay is one entry of the daily contribution calendar.
type ContributionDay struct {
	Date  string `json:"date"` // ISO day, e.g. "2024-03-17"
	Count int    `json:"count"`
}

// MonthlyActivity is the summed contribution count for one calendar month.
type MonthlyActivity struct {
	Month         string `json:"month"` // e.g. "March 2024"
	Contributions int    `json:"contributions"`
}

// Language is one entry of the language distribution.
type Language struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"` // 0-100, share of total observed bytes
}

// Metrics holds the five raw inputs of the power-level score.
type Metrics struct {
	Contributions int
	Followers     int
	PublicRepos   int
	TotalStars    int
	TotalCommits  int
}

// UserStatistics is the fully assembled statistics record for one account.
//
// A record is built once per comparison and treated as immutable afterwards.
// TotalStars, TotalCommits and TopLanguages are each computed from their own
// repository listing, so they may reflect slightly different snapshots.
type UserStatistics struct {
	Name      string `json:"name"`
	Login     string `json:"login"`
	AvatarURL string `json:"avatarUrl"`
	Bio       string `json:"bio"`

	Followers   int `json:"followers"`
	Following   int `json:"following"`
	PublicRepos int `json:"publicRepos"`

	TopLanguages         []Language        `json:"topLanguages"`
	Contributions        int               `json:"contributions"`
	ContributionCalendar []ContributionDay `json:"contributionCalendar"`
	LongestStreak        int               `json:"longestStreak"`
	MostActiveMonths     []MonthlyActivity `json:"mostActiveMonths"`

	TotalStars   int `json:"totalStars"`
	TotalCommits int `json:"totalCommits"`

	PowerLevel    int  `json:"powerLevel"`
	UniversalRank Rank `json:"universalRank"`
}

// Metrics returns the power-level inputs of s.
func (s *UserStatistics) Metrics() Metrics {
	return Metrics{
		Contributions: s.Contributions,
		Followers:     s.Followers,
		PublicRepos:   s.PublicRepos,
		TotalStars:    s.TotalStars,
		TotalCommits:  s.TotalCommits,
	}
}

// Summary is the subset of a profile sent to the text generator.
type Summary struct {
	Name  string       `json:"name"`
	Login string       `json:"login"`
	Stats SummaryStats `json:"stats"`
}

// SummaryStats are the numeric facts a roast may reference.
type SummaryStats struct {
	PowerLevel    int        `json:"powerLevel"`
	TotalStars    int        `json:"totalStars"`
	TotalCommits  int        `json:"totalCommits"`
	Contributions int        `json:"contributions"`
	PublicRepos   int        `json:"publicRepos"`
	Followers     int        `json:"followers"`
	LongestStreak int        `json:"longestStreak"`
	TopLanguages  []Language `json:"topLanguages"`
}

// Summary extracts the generator-facing summary of s.
func (s *UserStatistics) Summary() Summary {
	return Summary{
		Name:  s.Name,
		Login: s.Login,
		Stats: SummaryStats{
			PowerLevel:    s.PowerLevel,
			TotalStars:    s.TotalStars,
			TotalCommits:  s.TotalCommits,
			Contributions: s.Contributions,
			PublicRepos:   s.PublicRepos,
			Followers:     s.Followers,
			LongestStreak: s.LongestStreak,
			TopLanguages:  s.TopLanguages,
		},
	}
}
