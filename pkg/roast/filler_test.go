package roast

import (
	"strings"
	"testing"

	"github.com/matzehuels/gitroast/pkg/stats"
)

func first(int) int  { return 0 }
func second(int) int { return 1 }

func TestFillersKnownLanguage(t *testing.T) {
	s := &stats.UserStatistics{
		TopLanguages:  []stats.Language{{Name: "Go", Percentage: 80}},
		Contributions: 1500,
		LongestStreak: 25,
		PublicRepos:   60,
		Followers:     2000,
	}
	got := Fillers(s, first)
	want := []string{
		languageLines["Go"][0],
		contributionLadder[0].line,
		streakLadder[0].line,
		repoLadder[0].line,
		followerLadder[0].line,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFillersThresholdsAreStrict(t *testing.T) {
	s := &stats.UserStatistics{
		Contributions: 1000,
		LongestStreak: 10,
		PublicRepos:   20,
		Followers:     100,
	}
	got := Fillers(s, first)
	if len(got) != 4 {
		t.Fatalf("got %d lines, want 4 (no language line)", len(got))
	}
	want := []string{
		contributionLadder[1].line,
		streakLadder[2].line,
		repoLadder[2].line,
		followerLadder[2].line,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFillersUnknownLanguage(t *testing.T) {
	s := &stats.UserStatistics{
		TopLanguages: []stats.Language{{Name: "Haskell", Percentage: 97.25}},
	}

	got := Fillers(s, first)[0]
	if got != "97.2% Haskell? You really put all your eggs in one basket! 🥚" && got != "97.3% Haskell? You really put all your eggs in one basket! 🥚" {
		t.Errorf("generic line 0 = %q", got)
	}

	got = Fillers(s, second)[0]
	if !strings.HasPrefix(got, "Wow, Haskell is your top language.") {
		t.Errorf("generic line 1 = %q", got)
	}

	got = Fillers(s, func(int) int { return 99 })[0]
	if !strings.Contains(got, "eggs in one basket") {
		t.Errorf("out-of-range pick should fall back to line 0, got %q", got)
	}
}

func TestFillersNilPicker(t *testing.T) {
	s := &stats.UserStatistics{TopLanguages: []stats.Language{{Name: "Zig", Percentage: 50}}}
	got := Fillers(s, nil)
	if len(got) != 5 || !strings.Contains(got[0], "Zig") {
		t.Errorf("Fillers with nil picker = %v", got)
	}
}
