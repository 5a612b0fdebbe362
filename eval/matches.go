package eval

import "github.com/coregx/scanrx/ranges"

// Matches is the evaluator's result: either NoMatch, or Match carrying the
// list of (start, end) token-index ranges discovered by the depth-first
// search, in ascending-offset order.
type Matches struct {
	Found  bool
	Ranges []ranges.Range
}

// NoMatch is the zero-value, not-found result.
var NoMatch = Matches{}

// newMatch builds a found Matches value.
func newMatch(rs []ranges.Range) Matches {
	return Matches{Found: true, Ranges: rs}
}
