// Package stats defines the per-account statistics record and the pure
// functions that derive metrics from raw GitHub data.
//
// # Derived Metrics
//
//   - [LongestStreak]: longest run of consecutive days with contributions
//   - [PowerLevel]: weighted 0-100 score over five capped inputs
//   - [UniversalRank]: tier and percentile from a fixed threshold table
//   - [RankLanguages]: byte totals to a top-N percentage distribution
//   - [MonthlyTotals]: daily calendar folded into month buckets
//
// Every function here is deterministic and free of I/O. Fetching lives in
// pkg/integrations/github and orchestration in pkg/pipeline.
//
// # Power Level
//
// Each input is normalized as min(value/cap*100, 100) and combined:
//
//	contributions  cap 1000  weight 0.25
//	followers      cap  500  weight 0.20
//	public repos   cap   50  weight 0.15
//	total stars    cap  500  weight 0.20
//	total commits  cap 2000  weight 0.20
//
// The weighted sum is rounded to the nearest integer.
//
// # Rank
//
// The rank is not a real percentile against the GitHub population. It is a
// fixed ten-tier table keyed on power level, and the percentile is the power
// level itself.
package stats
