package stats

import "math"

// Rank is a discrete tier plus a percentile figure.
type Rank struct {
	Rank       int `json:"rank"`       // 1-based tier index, 1 is best
	Percentile int `json:"percentile"` // equal to the power level
}

// tier is one row of the threshold table.
type tier struct {
	threshold int
	label     string
}

// tiers is scanned top-down; the first row whose threshold is met wins.
var tiers = []tier{
	{90, "S+"},
	{80, "S"},
	{70, "A+"},
	{60, "A"},
	{50, "B+"},
	{40, "B"},
	{30, "C+"},
	{20, "C"},
	{10, "D"},
	{0, "E"},
}

// TierCount is the number of rank tiers.
var TierCount = len(tiers)

// UniversalRank maps a power level onto the tier table. Levels outside
// [0, 100] are clamped first.
//
// The percentile is round(powerLevel/100*100), which is the power level
// itself. The identity is kept so the record shape matches what consumers
// already read.
func UniversalRank(powerLevel int) Rank {
	level := clampScore(powerLevel)
	idx := len(tiers) - 1
	for i, t := range tiers {
		if level >= t.threshold {
			idx = i
			break
		}
	}
	return Rank{
		Rank:       idx + 1,
		Percentile: int(math.Round(float64(level) / 100 * 100)),
	}
}

// Label returns the tier name, e.g. "S+" for tier 1.
func (r Rank) Label() string {
	if r.Rank < 1 || r.Rank > len(tiers) {
		return "?"
	}
	return tiers[r.Rank-1].label
}
