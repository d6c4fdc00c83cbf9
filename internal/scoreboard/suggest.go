package scoreboard

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestMaxDistance bounds how far a typo can drift before Suggest stays
// quiet.
const suggestMaxDistance = 2

// Suggest returns the engaged team name closest to the given one, if any is
// within a small edit distance. Comparison is case-insensitive and the name
// is returned in its original casing; the empty string means nothing is
// close enough. Intended to enrich not-found feedback.
func (b *Board) Suggest(name string) string {
	folded := strings.ToLower(name)
	best := ""
	bestDist := suggestMaxDistance + 1
	for _, m := range b.matches {
		for _, team := range []string{m.home, m.away} {
			teamFolded := strings.ToLower(team)
			if teamFolded == folded {
				continue
			}
			d := levenshtein.ComputeDistance(folded, teamFolded)
			if d < bestDist || (d == bestDist && team < best) {
				best = team
				bestDist = d
			}
		}
	}
	return best
}
