package scoreboard

import "fmt"

// ValidationError reports a rejected team name or score value. The field
// that failed validation keeps its previous value.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "validation: " + e.Reason }

// DuplicateTeamError is returned by StartMatch when either team is already
// engaged in an active match. One kind covers the exact-pair-active,
// both-sides-active and one-side-active scenarios alike.
type DuplicateTeamError struct {
	Home string
	Away string
}

func (e *DuplicateTeamError) Error() string {
	return fmt.Sprintf("start %s vs %s: at least one of the teams is in an active match already", e.Home, e.Away)
}

// NotFoundError reports a lookup against a pair with no active match.
type NotFoundError struct {
	Home string
	Away string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("match %s vs %s is not on the board", e.Home, e.Away)
}
