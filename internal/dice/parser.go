package dice

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MergePolicy decides what happens when a side-count appears in more than
// one term of the same expression.
type MergePolicy string

const (
	// MergeReplace keeps the dice-count of the last term ("1d6 + 2d6" rolls 2d6).
	MergeReplace MergePolicy = "replace"
	// MergeAccumulate adds the dice-counts together ("1d6 + 2d6" rolls 3d6).
	MergeAccumulate MergePolicy = "accumulate"
)

// ParseMergePolicy converts a configuration string into a MergePolicy.
//
// Postcondition: Returns a known policy or a non-nil error.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch p := MergePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case MergeReplace, MergeAccumulate:
		return p, nil
	default:
		return "", fmt.Errorf("dice: unknown merge policy %q", s)
	}
}

// MaxDiceLimit is the hard ceiling on dice per side-count. Every Request a
// Parser produces can be rolled without exhausting memory.
const MaxDiceLimit = 1_000_000

// Parser turns dice expressions such as "1d20 + 2d6 + 5" into Requests.
//
// The zero value uses MergeReplace and MaxDiceLimit.
type Parser struct {
	Merge   MergePolicy // empty means MergeReplace
	MaxDice int         // per side-count limit; 0 or anything above MaxDiceLimit means MaxDiceLimit
}

func (p Parser) maxDice() int {
	if p.MaxDice <= 0 || p.MaxDice > MaxDiceLimit {
		return MaxDiceLimit
	}
	return p.MaxDice
}

// Parse parses input with the zero-value Parser.
func Parse(input string) Request {
	return Parser{}.Parse(input)
}

// Parse splits input on '+' and interprets every term as either a die group
// "XdN" or an integer constant. Terms that cannot be interpreted are recorded
// in Request.Dropped and otherwise ignored.
//
// Postcondition: never panics; every stored Group has Sides >= 1 and
// 1 <= Count <= MaxDiceLimit.
func (p Parser) Parse(input string) Request {
	req := Request{Raw: input}
	for _, term := range splitTerms(input) {
		switch strings.Count(term, "d") {
		case 0:
			p.parseConstant(&req, term)
		case 1:
			p.parseGroup(&req, term)
		default:
			req.drop(term, ReasonTooManySeparators)
		}
	}
	return req
}

func splitTerms(input string) []string {
	terms := strings.Split(input, "+")
	for i, t := range terms {
		terms[i] = strings.ToLower(strings.TrimSpace(t))
	}
	return terms
}

func (p Parser) parseConstant(req *Request, term string) {
	if !IsInt(term) {
		switch {
		case term == "":
			req.drop(term, ReasonEmpty)
		case IsFloat(term):
			req.drop(term, ReasonFloatConstant)
		default:
			req.drop(term, ReasonNotInteger)
		}
		return
	}
	k, err := strconv.Atoi(term)
	if err != nil {
		req.drop(term, ReasonOutOfRange)
		return
	}
	req.Constant = &k
}

func (p Parser) parseGroup(req *Request, term string) {
	countStr, sidesStr, _ := strings.Cut(term, "d")
	countStr = strings.TrimSpace(countStr)
	sidesStr = strings.TrimSpace(sidesStr)
	if !IsInt(countStr) || !IsInt(sidesStr) {
		req.drop(term, ReasonInvalidOperand)
		return
	}

	count, err := strconv.Atoi(countStr)
	if err != nil {
		req.drop(term, reasonFor(err))
		return
	}
	sides, err := strconv.Atoi(sidesStr)
	if err != nil {
		req.drop(term, reasonFor(err))
		return
	}
	if count < 0 || sides < 1 {
		req.drop(term, ReasonNonPositive)
		return
	}

	idx := req.indexOf(sides)
	total := count
	if idx >= 0 && p.Merge == MergeAccumulate {
		existing := req.Groups[idx].Count
		if existing > math.MaxInt-count {
			req.drop(term, ReasonOutOfRange)
			return
		}
		total += existing
	}
	if total > p.maxDice() {
		req.drop(term, ReasonTooManyDice)
		return
	}

	switch {
	case total == 0 && idx >= 0:
		// A zero count is the same as never having asked for the die.
		req.Groups = append(req.Groups[:idx], req.Groups[idx+1:]...)
	case total == 0:
	case idx >= 0:
		req.Groups[idx].Count = total
	default:
		req.Groups = append(req.Groups, Group{Sides: sides, Count: total})
	}
}

func reasonFor(err error) DropReason {
	if errors.Is(err, strconv.ErrRange) {
		return ReasonOutOfRange
	}
	return ReasonInvalidOperand
}

func (r *Request) indexOf(sides int) int {
	for i, g := range r.Groups {
		if g.Sides == sides {
			return i
		}
	}
	return -1
}

func (r *Request) drop(term string, reason DropReason) {
	r.Dropped = append(r.Dropped, DroppedTerm{Term: term, Reason: reason})
}

// IsInt reports whether s is an optional sign followed by one or more ASCII
// digits and nothing else.
func IsInt(s string) bool {
	return len(s) > 0 && digitsAfterSign(s) == len(s)
}

// IsFloat reports whether s is an optional sign, one or more ASCII digits, a
// '.', and one or more ASCII digits.
func IsFloat(s string) bool {
	whole, frac, ok := strings.Cut(s, ".")
	if !ok || frac == "" {
		return false
	}
	return IsInt(whole) && allDigits(frac)
}

// digitsAfterSign returns the length of the longest prefix of s made of an
// optional sign and at least one digit, or 0 when there is no such prefix.
func digitsAfterSign(s string) int {
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i = 1
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	return i
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
