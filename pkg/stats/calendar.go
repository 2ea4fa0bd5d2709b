package stats

import (
	"fmt"
	"sort"
	"time"
)

// MostActiveMonthsLimit is how many months a profile publishes.
const MostActiveMonthsLimit = 3

const (
	dayLayout   = "2006-01-02"
	monthLayout = "January 2006"
)

// MonthlyTotals folds a daily calendar into per-month sums, sorted by sum
// descending. Months with equal sums keep chronological order.
func MonthlyTotals(days []ContributionDay) ([]MonthlyActivity, error) {
	sums := make(map[string]int)
	var order []string

	for _, d := range days {
		t, err := time.Parse(dayLayout, d.Date)
		if err != nil {
			return nil, fmt.Errorf("parse contribution date %q: %w", d.Date, err)
		}
		key := t.Format(monthLayout)
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += d.Count
	}

	months := make([]MonthlyActivity, 0, len(order))
	for _, key := range order {
		months = append(months, MonthlyActivity{Month: key, Contributions: sums[key]})
	}
	sort.SliceStable(months, func(i, j int) bool {
		return months[i].Contributions > months[j].Contributions
	})
	return months, nil
}

// TopMonths returns the first n entries of a sorted month list.
func TopMonths(months []MonthlyActivity, n int) []MonthlyActivity {
	if len(months) > n {
		return months[:n]
	}
	return months
}

// Intensity buckets a daily count into a heatmap level from 0 to 4.
func Intensity(count int) int {
	switch {
	case count <= 0:
		return 0
	case count <= 3:
		return 1
	case count <= 6:
		return 2
	case count <= 9:
		return 3
	default:
		return 4
	}
}

// Tooltip describes a day, e.g. "3 contributions on Mar 17, 2024".
// An unparseable date is echoed verbatim.
func Tooltip(d ContributionDay) string {
	noun := "contributions"
	if d.Count == 1 {
		noun = "contribution"
	}
	date := d.Date
	if t, err := time.Parse(dayLayout, d.Date); err == nil {
		date = t.Format("Jan 2, 2006")
	}
	return fmt.Sprintf("%d %s on %s", d.Count, noun, date)
}
