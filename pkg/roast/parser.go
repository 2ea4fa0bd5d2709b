package roast

import (
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/gitroast/pkg/errors"
)

const (
	aspectLabel = "Aspect:"
	winnerLabel = "Winner:"
	roastLabel  = "Roast:"
)

var blockSeparator = regexp.MustCompile(`\n\s*\n`)

// Parser extracts roasts from a completion. The zero value discards logs.
type Parser struct {
	Logger *log.Logger
}

// Parse is shorthand for Parser{}.Parse.
func Parse(text, user1, user2 string) ([]Roast, error) {
	return Parser{}.Parse(text, user1, user2)
}

// Parse splits text into blocks and keeps every block carrying all three
// labels, in order of appearance. user1 and user2 are the display names of
// the compared accounts.
//
// The loser is user2 when the declared winner contains user1 as a
// substring, and user1 otherwise. A winner of "Alice" against user1
// "Alice Smith" therefore makes Alice Smith the loser; containment runs
// one way only.
func (p Parser) Parse(text, user1, user2 string) ([]Roast, error) {
	logger := p.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	var roasts []Roast
	for _, block := range blockSeparator.Split(text, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		r, ok := parseBlock(block)
		if !ok {
			logger.Warn("dropping malformed roast block", "block", block)
			continue
		}
		r.Loser = user1
		if strings.Contains(r.Winner, user1) {
			r.Loser = user2
		}
		roasts = append(roasts, r)
	}

	if len(roasts) == 0 {
		return nil, errors.New(errors.ErrCodeNoValidRoasts, errors.MsgNoValidRoasts)
	}
	return roasts, nil
}

func parseBlock(block string) (Roast, bool) {
	var r Roast
	var aspect, winner, joke bool
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case !aspect && strings.HasPrefix(line, aspectLabel):
			r.Aspect, aspect = field(line, aspectLabel), true
		case !winner && strings.HasPrefix(line, winnerLabel):
			r.Winner, winner = field(line, winnerLabel), true
		case !joke && strings.HasPrefix(line, roastLabel):
			r.Roast, joke = field(line, roastLabel), true
		}
	}
	return r, aspect && winner && joke
}

func field(line, label string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, label))
}
