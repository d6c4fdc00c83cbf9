package scoreboard

import "sort"

// MatchSorter selects one of the closed set of summary orderings. Every
// ordering falls back to the start order, which is unique per board, so no
// two matches ever compare equal.
type MatchSorter int

const (
	// GoalsTotal orders by combined score descending, most recently
	// started first on ties.
	GoalsTotal MatchSorter = iota
	// AlphanumericHomeTeam orders by home team name ascending
	// (case-sensitive), most recently started first on ties.
	AlphanumericHomeTeam
)

func (s MatchSorter) String() string {
	if s == AlphanumericHomeTeam {
		return "home team"
	}
	return "total goals"
}

func (s MatchSorter) less(a, b *Match) bool {
	switch s {
	case AlphanumericHomeTeam:
		if a.home != b.home {
			return a.home < b.home
		}
	default:
		if at, bt := a.TotalScore(), b.TotalScore(); at != bt {
			return at > bt
		}
	}
	return a.orderStarted > b.orderStarted
}

// SortMatches returns snapshots of every active match in the given order.
func (b *Board) SortMatches(s MatchSorter) []Match {
	out := make([]Match, 0, len(b.matches))
	for _, m := range b.matches {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return s.less(&out[i], &out[j]) })
	return out
}
