// Package dice provides the expression parser, roll simulator, and randomness
// sources for the dice roller.
package dice

import "math/big"

// Group is a single side-count entry of a roll request.
//
// Invariant: Sides >= 1 and Count >= 1 for every Group stored in a Request.
type Group struct {
	Sides int // faces per die
	Count int // number of dice with this many faces
}

// Request is the structured form of a dice expression.
//
// Invariant: Groups holds unique side-counts in order of first appearance.
type Request struct {
	Raw      string        // original input line
	Groups   []Group       // side-count → dice-count, ordered
	Constant *int          // nil when no constant term was given
	Dropped  []DroppedTerm // terms discarded while parsing
}

// Counts returns the request's side-count → dice-count mapping.
//
// Postcondition: len(result) == len(r.Groups).
func (r Request) Counts() map[int]int {
	counts := make(map[int]int, len(r.Groups))
	for _, g := range r.Groups {
		counts[g.Sides] = g.Count
	}
	return counts
}

// Count returns the dice-count stored for sides, if any.
func (r Request) Count(sides int) (int, bool) {
	for _, g := range r.Groups {
		if g.Sides == sides {
			return g.Count, true
		}
	}
	return 0, false
}

// Status classifies how much of the expression survived parsing.
func (r Request) Status() ParseStatus {
	kept := len(r.Groups) > 0 || r.Constant != nil
	switch {
	case !kept:
		return StatusEmpty
	case len(r.Dropped) > 0:
		return StatusPartial
	default:
		return StatusParsed
	}
}

// GroupOutcome holds the rolled values for one side-count.
//
// Invariant: every value is in [1, Sides].
type GroupOutcome struct {
	Sides  int
	Values []int
}

// Sum returns the exact sum of all values in the group. Values may be as
// large as math.MaxInt, so the sum is not bounded by int.
func (g GroupOutcome) Sum() *big.Int {
	sum := new(big.Int)
	var v big.Int
	for _, x := range g.Values {
		sum.Add(sum, v.SetInt64(int64(x)))
	}
	return sum
}

// Outcome is the result of rolling a Request.
type Outcome struct {
	Groups   []GroupOutcome // same order as Request.Groups
	Constant *int           // carried through from the Request unchanged
}

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
