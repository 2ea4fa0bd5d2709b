package roast

import (
	"fmt"
	"strings"

	"github.com/matzehuels/gitroast/pkg/stats"
)

// SystemPrompt sets the persona of the generator.
const SystemPrompt = "You are a hilarious developer comedian who specializes in tech humor and coding roasts. " +
	"Your style is witty, current, and packed with developer culture references. " +
	"You know how to make spicy but good-natured jokes about coding habits and GitHub statistics."

const promptIntro = `You're a witty tech comedian roasting GitHub developers. Create hilarious, spicy (but not offensive) comparisons between these two developers. Think of it as a friendly rap battle between coders.`

const promptTask = `Generate %d spicy, entertaining roasts comparing their GitHub activity. Make them funny and engaging, like a mix of a comedy roast and tech humor. Reference popular culture, coding stereotypes, and developer inside jokes. Think "JavaScript Roast Battle" meets "Silicon Valley" humor.

Compare different aspects like:
- Coding consistency and commit patterns
- Language preferences and tech stack choices
- Project popularity and star counts
- Community engagement and followers
- Code productivity and contribution streaks
- Repository management style
- Overall GitHub presence and impact
- Development habits and patterns
- Tech ecosystem preferences
- Coding style and approach

For each roast, follow this format EXACTLY:

Aspect: [what's being compared]
Winner: [winner's name]
Roast: [your spicy roast]

Example formats:

Example 1:
Aspect: Commit Frequency
Winner: Sarah
Roast: While Sarah's pushing code faster than npm installs dependencies, Bob's commits are like Windows updates - they show up once a month and usually break something! 😅

Example 2:
Aspect: Repository Count
Winner: Alex
Roast: Alex is hoarding repos like developers hoard Stack Overflow tabs! Meanwhile, Chris's GitHub is looking more abandoned than a jQuery tutorial in 2024! 🏚️

Example 3:
Aspect: Code Languages
Winner: Maria
Roast: Maria's out here mastering 5 languages while Pat's still trying to center a div in CSS! That's like bringing a full tech stack to a "Hello World" fight! 💪

Keep the roasts spicy and fun, focusing on their coding stats and dev culture references. Make each roast memorable and quotable, but avoid anything mean-spirited or personal. Think "friendly dev rivalry" vibes!`

// BuildPrompt renders the user message for a comparison of u1 and u2.
func BuildPrompt(u1, u2 stats.Summary) string {
	var b strings.Builder
	b.WriteString(promptIntro)
	b.WriteString("\n\n")
	writeUser(&b, 1, u1)
	b.WriteString("\n")
	writeUser(&b, 2, u2)
	b.WriteString("\n")
	fmt.Fprintf(&b, promptTask, RoastsPerComparison)
	return b.String()
}

func writeUser(b *strings.Builder, n int, u stats.Summary) {
	s := u.Stats
	fmt.Fprintf(b, "User %d: %s (@%s)\n", n, u.Name, u.Login)
	b.WriteString("Stats:\n")
	fmt.Fprintf(b, "- Power Level: %d\n", s.PowerLevel)
	fmt.Fprintf(b, "- Total Stars: %d\n", s.TotalStars)
	fmt.Fprintf(b, "- Total Commits: %d\n", s.TotalCommits)
	fmt.Fprintf(b, "- Contributions: %d\n", s.Contributions)
	fmt.Fprintf(b, "- Public Repos: %d\n", s.PublicRepos)
	fmt.Fprintf(b, "- Followers: %d\n", s.Followers)
	fmt.Fprintf(b, "- Longest Streak: %d days\n", s.LongestStreak)
	fmt.Fprintf(b, "- Top Languages: %s\n", languageNames(s.TopLanguages))
}

func languageNames(langs []stats.Language) string {
	names := make([]string, len(langs))
	for i, l := range langs {
		names[i] = l.Name
	}
	return strings.Join(names, ", ")
}
