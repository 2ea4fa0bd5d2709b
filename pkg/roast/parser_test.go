package roast

import (
	"strings"
	"testing"

	"github.com/matzehuels/gitroast/pkg/errors"
)

const threeGoodOneBad = `Aspect: Commit Frequency
Winner: Alice Smith
Roast: Alice commits like rent is due.

Aspect: Stars
Winner: Bob
Roast: Bob's stars are a constellation.

  Aspect: Missing Punchline
  Winner: Bob

Roast: Both of them use tabs.
Winner: Alice Smith
Aspect: Indentation
`

func TestParse(t *testing.T) {
	roasts, err := Parse(threeGoodOneBad, "Alice Smith", "Bob")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(roasts) != 3 {
		t.Fatalf("got %d roasts, want 3: %+v", len(roasts), roasts)
	}

	want := []Roast{
		{Aspect: "Commit Frequency", Winner: "Alice Smith", Loser: "Bob", Roast: "Alice commits like rent is due."},
		{Aspect: "Stars", Winner: "Bob", Loser: "Alice Smith", Roast: "Bob's stars are a constellation."},
		{Aspect: "Indentation", Winner: "Alice Smith", Loser: "Bob", Roast: "Both of them use tabs."},
	}
	for i := range want {
		if roasts[i] != want[i] {
			t.Errorf("roasts[%d] = %+v, want %+v", i, roasts[i], want[i])
		}
	}
}

func TestParseNoValidBlocks(t *testing.T) {
	tests := []string{
		"",
		"   \n\n  \n",
		"Aspect: A\nWinner: B",
		"I'm sorry, I can't help with that.",
		"aspect: lower\nwinner: case\nroast: labels",
	}
	for _, text := range tests {
		_, err := Parse(text, "Alice", "Bob")
		if !errors.Is(err, errors.ErrCodeNoValidRoasts) {
			t.Errorf("Parse(%q) error = %v, want NO_VALID_ROASTS", text, err)
		}
	}
}

func TestParseLoserUsesContainment(t *testing.T) {
	tests := []struct {
		name   string
		winner string
		user1  string
		user2  string
		loser  string
	}{
		{"exact user1", "Alice Smith", "Alice Smith", "Bob", "Bob"},
		{"winner decorated", "Alice Smith 👑", "Alice Smith", "Bob", "Bob"},
		{"winner shorter than user1", "Alice", "Alice Smith", "Bob", "Alice Smith"},
		{"winner is user2", "Bob", "Alice", "Bob", "Alice"},
		{"winner unknown", "Nobody", "Alice", "Bob", "Alice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := "Aspect: X\nWinner: " + tt.winner + "\nRoast: Y"
			roasts, err := Parse(text, tt.user1, tt.user2)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if roasts[0].Loser != tt.loser {
				t.Errorf("loser = %q, want %q", roasts[0].Loser, tt.loser)
			}
		})
	}
}

func TestParseFirstLabelWins(t *testing.T) {
	text := "Aspect: first\nAspect: second\nWinner: W\nRoast: R\nRoast: ignored"
	roasts, err := Parse(text, "W", "L")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if roasts[0].Aspect != "first" || roasts[0].Roast != "R" {
		t.Errorf("got %+v", roasts[0])
	}
}

func TestParseCRLF(t *testing.T) {
	text := strings.ReplaceAll("Aspect: A\nWinner: W\nRoast: R\n\nAspect: B\nWinner: W\nRoast: S", "\n", "\r\n")
	roasts, err := Parse(text, "W", "L")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(roasts) != 2 || roasts[1].Roast != "S" {
		t.Errorf("got %+v", roasts)
	}
}
