package scoreboard

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxTeamScore bounds a single team's score; valid scores are
// 0 <= v < MaxTeamScore.
const MaxTeamScore = 1000

// Match is one active pairwise contest. Team names are fixed at creation and
// scores change only through Board.UpdateScore; callers outside the package
// only ever see value copies.
type Match struct {
	home string
	away string

	homeScore int
	awayScore int

	// position in the global start order, unique per board, sort tie-break only
	orderStarted int
}

func newMatch(home, away string) (*Match, error) {
	if strings.TrimSpace(home) == "" {
		return nil, &ValidationError{Reason: "home team name is required"}
	}
	if strings.TrimSpace(away) == "" {
		return nil, &ValidationError{Reason: "away team name is required"}
	}
	if strings.EqualFold(home, away) {
		return nil, &ValidationError{Reason: "home and away teams must be different"}
	}
	return &Match{home: home, away: away}, nil
}

func (m Match) Home() string { return m.home }

func (m Match) Away() string { return m.away }

func (m Match) HomeScore() int { return m.homeScore }

func (m Match) AwayScore() int { return m.awayScore }

// TotalScore is recomputed on every read, never stored.
func (m Match) TotalScore() int { return m.homeScore + m.awayScore }

// setScores validates both values before committing either, so a failed call
// leaves the previous scores in place.
func (m *Match) setScores(homeScore, awayScore int) error {
	if err := checkScore(homeScore); err != nil {
		return err
	}
	if err := checkScore(awayScore); err != nil {
		return err
	}
	m.homeScore = homeScore
	m.awayScore = awayScore
	return nil
}

func checkScore(v int) error {
	if v < 0 {
		return &ValidationError{Reason: fmt.Sprintf("score %d is negative", v)}
	}
	if v >= MaxTeamScore {
		return &ValidationError{Reason: fmt.Sprintf("score %d is out of range (max %d)", v, MaxTeamScore-1)}
	}
	return nil
}

// ParseScore converts untyped text input into a valid score. Non-numeric and
// fractional input is rejected with the same error kind as out-of-range
// values.
func ParseScore(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ValidationError{Reason: fmt.Sprintf("score %q is not a whole number", strings.TrimSpace(s))}
	}
	if err := checkScore(v); err != nil {
		return 0, err
	}
	return v, nil
}
