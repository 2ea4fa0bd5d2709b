package roast

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/gitroast/pkg/stats"
)

// Picker returns an index in [0, n). Tests pass a fixed picker.
type Picker func(n int) int

// RandomPicker picks uniformly.
func RandomPicker(n int) int { return rand.IntN(n) }

// languageLines maps a language name to its canned lines. Only the first
// line is used today.
var languageLines = map[string][]string{
	"JavaScript": {
		"Ah, JavaScript - because who needs type safety when you have 'undefined is not a function'? 😅",
		"I see you're a JavaScript enthusiast. How many npm packages does it take to print 'Hello World'? 🤔",
	},
	"TypeScript": {
		"A TypeScript developer! Someone who enjoys writing more types than actual code. 🎯",
		"Using TypeScript because you trust no one, not even yourself. Smart choice! 🛡️",
	},
	"Python": {
		"Spaces or tabs? Just kidding, I know you're team Python - where indentation is life! 🐍",
		"Writing Python? That's just executable pseudocode with extra steps! 🚀",
	},
	"Java": {
		"AbstractSingletonProxyFactoryBean... I mean, Java! You must really love typing! ☕",
		"Java developer spotted! How's that enterprise-grade hello world coming along? 🏢",
	},
	"C++": {
		"C++ developer? You must be a masochist who enjoys debugging memory leaks! 💭",
		"Ah, C++, because why make things simple when you can make them complex? 🎮",
	},
	"Ruby": {
		"A Ruby developer! Because why write 10 lines when you can write it in 2? 💎",
		"Ruby: Where everything is an object, even your problems! 🎪",
	},
	"PHP": {
		"PHP developer spotted! Because someone has to maintain WordPress! 🎭",
		"Using PHP? Your commitment to legacy systems is admirable! 🏺",
	},
	"Go": {
		"Go developer! Because error handling is better than exception handling, right? 🏃",
		"Writing Go? That's a very concurrent decision of you! 🔄",
	},
	"Rust": {
		"Ah, Rust! Fighting with the borrow checker must keep you up at night! 🦀",
		"A Rust developer! How many times did you rewrite everything in Rust? 🔒",
	},
}

// threshold is one rung of a metric ladder: lines are tried top-down and
// the first rung whose floor is exceeded wins. The last rung has no floor.
type threshold struct {
	above int
	line  string
}

var (
	contributionLadder = []threshold{
		{1000, "Your keyboard must be begging for mercy with all those contributions! 🔥"},
		{500, "Decent contribution count! The GitHub activity graph must look like a city skyline! 🌆"},
		{-1, "Your contribution graph is like a minimalist art piece - beautifully sparse! 🎨"},
	}
	streakLadder = []threshold{
		{20, "That streak! Do you ever see the sun, or is your monitor your only light source? ☀️"},
		{10, "Nice streak! Almost as long as a Netflix binge-watching session! 📺"},
		{-1, "Your commit streak is like my gym routine - consistently inconsistent! 💪"},
	}
	repoLadder = []threshold{
		{50, "Your GitHub account has more repos than I have excuses for not documenting my code! 📚"},
		{20, "Nice repo collection! Marie Kondo would be proud of your project hoarding! ✨"},
		{-1, "Your repo count is like a capsule wardrobe - minimal but meaningful! 👔"},
	}
	followerLadder = []threshold{
		{1000, "Look at you, GitHub influencer! When's your TED talk on 'How to Center a Div'? 🎤"},
		{100, "Triple-digit followers! You're like a micro-influencer in the coding world! 📱"},
		{-1, "Your follower count is exclusive - like a private npm package! 📦"},
	}
)

func climb(ladder []threshold, v int) string {
	for _, t := range ladder {
		if v > t.above {
			return t.line
		}
	}
	return ladder[len(ladder)-1].line
}

// Fillers returns canned one-liners about a single profile: one about the
// top language (omitted when there is none), then one each for
// contributions, streak, repository count and followers.
//
// pick chooses between the generic language lines when the top language
// has no entry of its own. A nil pick means RandomPicker.
func Fillers(s *stats.UserStatistics, pick Picker) []string {
	if pick == nil {
		pick = RandomPicker
	}

	var lines []string
	if len(s.TopLanguages) > 0 {
		lines = append(lines, languageLine(s.TopLanguages[0], pick))
	}
	return append(lines,
		climb(contributionLadder, s.Contributions),
		climb(streakLadder, s.LongestStreak),
		climb(repoLadder, s.PublicRepos),
		climb(followerLadder, s.Followers),
	)
}

func languageLine(top stats.Language, pick Picker) string {
	if known, ok := languageLines[top.Name]; ok && len(known) > 0 {
		return known[0]
	}
	generic := []string{
		fmt.Sprintf("%.1f%% %s? You really put all your eggs in one basket! 🥚", top.Percentage, top.Name),
		fmt.Sprintf("Wow, %s is your top language. Bold choice! 🎨", top.Name),
	}
	i := pick(len(generic))
	if i < 0 || i >= len(generic) {
		i = 0
	}
	return generic[i]
}
