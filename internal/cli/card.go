package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/gitroast/pkg/roast"
	"github.com/matzehuels/gitroast/pkg/stats"
)

const (
	powerBarWidth = 20
	roastWidth    = 72
	heatCell      = "■"
)

// heatStyles is indexed by stats.Intensity.
var heatStyles = [...]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("22")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
}

// renderCard draws one profile as a bordered stat card.
func renderCard(s *stats.UserStatistics) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(s.Name) + " " + StyleDim.Render("@"+s.Login) + "\n")
	if s.Bio != "" {
		b.WriteString(StyleDim.Render(s.Bio) + "\n")
	}
	b.WriteString("\n")

	rows := [][2]string{
		{"Power level", fmt.Sprintf("%s %3d  %s", powerBar(s.PowerLevel), s.PowerLevel, styleBadge.Render(s.UniversalRank.Label()))},
		{"Stars", fmt.Sprint(s.TotalStars)},
		{"Commits", fmt.Sprint(s.TotalCommits)},
		{"Contributions", fmt.Sprintf("%d this year", s.Contributions)},
		{"Longest streak", fmt.Sprintf("%d days", s.LongestStreak)},
		{"Public repos", fmt.Sprint(s.PublicRepos)},
		{"Followers", fmt.Sprintf("%d (following %d)", s.Followers, s.Following)},
		{"Languages", formatLanguages(s.TopLanguages)},
		{"Busiest months", formatMonths(s.MostActiveMonths)},
	}
	for _, r := range rows {
		b.WriteString(styleLabel.Render(r[0]) + StyleValue.Render(r[1]) + "\n")
	}
	return styleCard.Render(strings.TrimRight(b.String(), "\n"))
}

func powerBar(level int) string {
	filled := level * powerBarWidth / 100
	filled = max(0, min(powerBarWidth, filled))
	return StyleWinner.Render(strings.Repeat("█", filled)) +
		StyleDim.Render(strings.Repeat("░", powerBarWidth-filled))
}

func formatLanguages(langs []stats.Language) string {
	if len(langs) == 0 {
		return "none"
	}
	parts := make([]string, len(langs))
	for i, l := range langs {
		parts[i] = fmt.Sprintf("%s %.1f%%", l.Name, l.Percentage)
	}
	return strings.Join(parts, " · ")
}

func formatMonths(months []stats.MonthlyActivity) string {
	if len(months) == 0 {
		return "none"
	}
	parts := make([]string, len(months))
	for i, m := range months {
		parts[i] = fmt.Sprintf("%s (%d)", m.Month, m.Contributions)
	}
	return strings.Join(parts, ", ")
}

// renderHeatmap lays the calendar out as weekday rows by week columns,
// shaded by contribution intensity.
func renderHeatmap(days []stats.ContributionDay) string {
	if len(days) == 0 {
		return StyleDim.Render("no contribution data")
	}

	offset := 0
	if t, err := time.Parse(time.DateOnly, days[0].Date); err == nil {
		offset = int(t.Weekday())
	}
	weeks := (offset + len(days) + 6) / 7

	labels := [7]string{"", "Mon", "", "Wed", "", "Fri", ""}
	var b strings.Builder
	for d := 0; d < 7; d++ {
		b.WriteString(StyleDim.Render(fmt.Sprintf("%-4s", labels[d])))
		for w := 0; w < weeks; w++ {
			i := w*7 + d - offset
			if i < 0 || i >= len(days) {
				b.WriteString(" ")
				continue
			}
			b.WriteString(heatStyles[stats.Intensity(days[i].Count)].Render(heatCell))
		}
		b.WriteString("\n")
	}

	b.WriteString(StyleDim.Render("    Less "))
	for _, st := range heatStyles {
		b.WriteString(st.Render(heatCell))
	}
	b.WriteString(StyleDim.Render(" More"))
	return b.String()
}

type metricRow struct {
	label string
	a, b  int
}

// renderComparison draws both profiles side by side with the better value
// of each row highlighted.
func renderComparison(a, b *stats.UserStatistics) string {
	metrics := []metricRow{
		{"Power level", a.PowerLevel, b.PowerLevel},
		{"Stars", a.TotalStars, b.TotalStars},
		{"Commits", a.TotalCommits, b.TotalCommits},
		{"Contributions", a.Contributions, b.Contributions},
		{"Longest streak", a.LongestStreak, b.LongestStreak},
		{"Public repos", a.PublicRepos, b.PublicRepos},
		{"Followers", a.Followers, b.Followers},
	}

	rows := make([][]string, 0, len(metrics)+2)
	winners := make([]int, 0, len(metrics)+2)
	for _, m := range metrics {
		rows = append(rows, []string{m.label, fmt.Sprint(m.a), fmt.Sprint(m.b)})
		winners = append(winners, better(m.a, m.b))
	}
	rows = append(rows, []string{"Rank", a.UniversalRank.Label(), b.UniversalRank.Label()})
	winners = append(winners, better(b.UniversalRank.Rank, a.UniversalRank.Rank))
	rows = append(rows, []string{"Top language", topLanguage(a), topLanguage(b)})
	winners = append(winners, 0)

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", a.Name, b.Name).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cell.Foreground(colorGray)
			case row < len(winners) && winners[row] == col:
				return cell.Bold(true).Foreground(colorGreen)
			default:
				return cell.Foreground(colorWhite)
			}
		})
	return t.Render()
}

// better returns 1 when a wins, 2 when b wins, 0 on a tie.
func better(a, b int) int {
	switch {
	case a > b:
		return 1
	case b > a:
		return 2
	default:
		return 0
	}
}

func topLanguage(s *stats.UserStatistics) string {
	if len(s.TopLanguages) == 0 {
		return "none"
	}
	return s.TopLanguages[0].Name
}

// renderRoasts prints roasts as a numbered list with wrapped text.
func renderRoasts(roasts []roast.Roast) string {
	body := lipgloss.NewStyle().Width(roastWidth).PaddingLeft(4)
	var b strings.Builder
	for i, r := range roasts {
		fmt.Fprintf(&b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%2d.", i+1)), StyleTitle.Render(r.Aspect))
		fmt.Fprintf(&b, "    %s %s  %s %s\n",
			StyleDim.Render("winner"), StyleWinner.Render(r.Winner),
			StyleDim.Render("roasted"), StyleLoser.Render(r.Loser))
		b.WriteString(body.Render(r.Roast))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderFillers lists the canned one-liners for one profile.
func renderFillers(s *stats.UserStatistics, pick roast.Picker) string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(s.Name) + "\n")
	for _, line := range roast.Fillers(s, pick) {
		b.WriteString("  " + StyleDim.Render(iconBullet) + " " + line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
