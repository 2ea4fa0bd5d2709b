package stats

import "sort"

// TopLanguagesLimit is how many languages a profile publishes.
const TopLanguagesLimit = 5

// MergeLanguageBytes sums per-repository byte maps into one total.
func MergeLanguageBytes(perRepo []map[string]int) map[string]int {
	total := make(map[string]int)
	for _, m := range perRepo {
		for lang, n := range m {
			total[lang] += n
		}
	}
	return total
}

// RankLanguages converts byte totals into percentages of the grand total,
// sorted descending, keeping at most limit entries. Ties are broken by name
// so the result is stable. A zero grand total yields an empty slice.
//
// The kept percentages do not sum to 100 when languages are dropped.
func RankLanguages(bytes map[string]int, limit int) []Language {
	var total int
	for _, n := range bytes {
		total += n
	}
	if total <= 0 {
		return []Language{}
	}

	langs := make([]Language, 0, len(bytes))
	for name, n := range bytes {
		langs = append(langs, Language{
			Name:       name,
			Percentage: float64(n) / float64(total) * 100,
		})
	}

	sort.Slice(langs, func(i, j int) bool {
		if langs[i].Percentage != langs[j].Percentage {
			return langs[i].Percentage > langs[j].Percentage
		}
		return langs[i].Name < langs[j].Name
	})

	if limit >= 0 && len(langs) > limit {
		langs = langs[:limit]
	}
	return langs
}
