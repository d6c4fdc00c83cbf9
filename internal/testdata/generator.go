package testdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jask/matchboard/internal/scoreboard"
)

// Fixture is one seedable match with its running score.
type Fixture struct {
	Home      string
	Away      string
	HomeScore int
	AwayScore int
}

// WorldCupFixtures returns the well-known sample fixture set, in start
// order. The ordering tests and the demo mode both lean on it.
func WorldCupFixtures() []Fixture {
	return []Fixture{
		{"Mexico", "Canada", 0, 5},
		{"Spain", "Brazil", 10, 2},
		{"Germany", "France", 2, 2},
		{"Uruguay", "Italy", 6, 6},
		{"Argentina", "Australia", 3, 1},
	}
}

// SeedWorldCup starts and scores the sample fixtures on the board.
func SeedWorldCup(board *scoreboard.Board) error {
	for _, f := range WorldCupFixtures() {
		if err := board.StartMatch(f.Home, f.Away); err != nil {
			return err
		}
		if err := board.UpdateScore(f.Home, f.Away, f.HomeScore, f.AwayScore); err != nil {
			return err
		}
	}
	return nil
}

// Seed starts n generated matches with random valid scores. Collisions with
// already-engaged teams are skipped, so the board may end up with fewer than
// n matches when called repeatedly.
func Seed(board *scoreboard.Board, n int) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < n; i++ {
		home := fmt.Sprintf("Team A%d", i)
		away := fmt.Sprintf("Team B%d", i)
		if err := board.StartMatch(home, away); err != nil {
			continue
		}
		_ = board.UpdateScore(home, away, rng.Intn(10), rng.Intn(10))
	}
}
