package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jask/matchboard/internal/scoreboard"
)

// parsePair splits "Home vs Away" into the two team names. The separator is
// matched case-insensitively so "Spain VS Brazil" works too.
func parsePair(input string) (home, away string, err error) {
	lower := strings.ToLower(input)
	idx := strings.Index(lower, " vs ")
	if idx < 0 {
		return "", "", errors.New(`expected "<home> vs <away>"`)
	}
	home = strings.TrimSpace(input[:idx])
	away = strings.TrimSpace(input[idx+len(" vs "):])
	if home == "" || away == "" {
		return "", "", errors.New(`expected "<home> vs <away>"`)
	}
	return home, away, nil
}

// parseScoreline splits "Home vs Away 3:1" into the pair and both scores.
// Score text goes through scoreboard.ParseScore so the usual validation
// errors surface unchanged.
func parseScoreline(input string) (home, away string, homeScore, awayScore int, err error) {
	trimmed := strings.TrimRight(strings.TrimSpace(input), " ")
	cut := strings.LastIndexByte(trimmed, ' ')
	if cut < 0 {
		return "", "", 0, 0, errors.New(`expected "<home> vs <away> <h>:<a>"`)
	}
	scorePart := trimmed[cut+1:]
	hs, as, ok := strings.Cut(scorePart, ":")
	if !ok {
		return "", "", 0, 0, errors.New(`expected "<home> vs <away> <h>:<a>"`)
	}
	home, away, err = parsePair(trimmed[:cut])
	if err != nil {
		return "", "", 0, 0, err
	}
	homeScore, err = scoreboard.ParseScore(hs)
	if err != nil {
		return "", "", 0, 0, fmt.Errorf("home score: %w", err)
	}
	awayScore, err = scoreboard.ParseScore(as)
	if err != nil {
		return "", "", 0, 0, fmt.Errorf("away score: %w", err)
	}
	return home, away, homeScore, awayScore, nil
}
