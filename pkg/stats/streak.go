package stats

// LongestStreak returns the longest run of consecutive days with a positive
// count. days must be in chronological order with no gaps.
func LongestStreak(days []ContributionDay) int {
	var current, longest int
	for _, d := range days {
		if d.Count > 0 {
			current++
		} else {
			current = 0
		}
		longest = max(longest, current)
	}
	return longest
}
