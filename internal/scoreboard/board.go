// Package scoreboard tracks the set of matches currently in play: who is
// playing whom, their running scores, and the orderings used by the summary
// view. Matches are keyed by team pair, case-insensitively and regardless of
// home/away order, and a team can appear in at most one active match.
package scoreboard

import "strings"

// Board is the in-memory registry of active matches. It is not safe for
// concurrent use; callers that need that wrap it in their own locking.
type Board struct {
	matches map[string]*Match
	engaged map[string]struct{} // case-folded team names with an active match

	// next orderStarted value; increments forever, never reset
	orderCounter int
}

func NewBoard() *Board {
	return &Board{
		matches: map[string]*Match{},
		engaged: map[string]struct{}{},
	}
}

// pairKey builds the storage key for a home/away pairing. Keys are
// case-folded but orientation-specific; order-insensitive lookups probe both
// orientations. The key never leaks into display or payload equality.
func pairKey(home, away string) string {
	return strings.ToLower(home) + "_" + strings.ToLower(away)
}

// Len reports the number of active matches.
func (b *Board) Len() int { return len(b.matches) }

// StartMatch puts a new 0:0 match on the board. Name validation runs first;
// then either team already being engaged, in any match and under any casing,
// fails with DuplicateTeamError.
func (b *Board) StartMatch(home, away string) error {
	m, err := newMatch(home, away)
	if err != nil {
		return err
	}
	if b.isEngaged(home) || b.isEngaged(away) {
		return &DuplicateTeamError{Home: home, Away: away}
	}

	m.orderStarted = b.orderCounter
	b.orderCounter++

	b.engaged[strings.ToLower(home)] = struct{}{}
	b.engaged[strings.ToLower(away)] = struct{}{}
	b.matches[pairKey(home, away)] = m
	return nil
}

func (b *Board) isEngaged(team string) bool {
	_, ok := b.engaged[strings.ToLower(team)]
	return ok
}

// lookup probes (home, away) and, unless exact, retries once with the roles
// swapped. A single retry, never recursion.
func (b *Board) lookup(home, away string, exact bool) (*Match, error) {
	if m, ok := b.matches[pairKey(home, away)]; ok {
		return m, nil
	}
	if !exact {
		if m, ok := b.matches[pairKey(away, home)]; ok {
			return m, nil
		}
	}
	return nil, &NotFoundError{Home: home, Away: away}
}

// GetMatch returns a snapshot of the active match between the two teams,
// whichever order and casing they are given in. The snapshot keeps the
// home/away orientation the match was started with.
func (b *Board) GetMatch(home, away string) (Match, error) {
	m, err := b.lookup(home, away, false)
	if err != nil {
		return Match{}, err
	}
	return *m, nil
}

// GetMatchExact is the order-sensitive variant: only the given orientation
// is probed.
func (b *Board) GetMatchExact(home, away string) (Match, error) {
	m, err := b.lookup(home, away, true)
	if err != nil {
		return Match{}, err
	}
	return *m, nil
}

// UpdateScore sets both scores on the match stored under exactly this
// home/away orientation. Both values are validated before either is
// committed, so a failed update leaves the previous scores observable.
func (b *Board) UpdateScore(home, away string, homeScore, awayScore int) error {
	m, err := b.lookup(home, away, true)
	if err != nil {
		return err
	}
	return m.setScores(homeScore, awayScore)
}

// FinishMatch takes the match off the board and frees both team names for
// new matches. Same swap-retry policy as GetMatch.
func (b *Board) FinishMatch(home, away string) error {
	m, err := b.lookup(home, away, false)
	if err != nil {
		return err
	}
	delete(b.matches, pairKey(m.home, m.away))
	delete(b.engaged, strings.ToLower(m.home))
	delete(b.engaged, strings.ToLower(m.away))
	return nil
}
