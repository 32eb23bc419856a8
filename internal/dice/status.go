package dice

// ParseStatus describes the overall result of parsing an expression.
type ParseStatus int

const (
	// StatusEmpty means no group and no constant survived parsing.
	StatusEmpty ParseStatus = iota
	// StatusPartial means something was kept but at least one term was dropped.
	StatusPartial
	// StatusParsed means every term was understood.
	StatusParsed
)

// String implements fmt.Stringer.
func (s ParseStatus) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusPartial:
		return "partial"
	case StatusParsed:
		return "parsed"
	default:
		return "unknown"
	}
}

// DropReason explains why a term was discarded.
type DropReason string

const (
	ReasonEmpty             DropReason = "empty term"
	ReasonNotInteger        DropReason = "constant is not an integer"
	ReasonFloatConstant     DropReason = "decimal constants are not supported"
	ReasonInvalidOperand    DropReason = "dice count and sides must be integers"
	ReasonNonPositive       DropReason = "dice count must be >= 0 and sides >= 1"
	ReasonOutOfRange        DropReason = "number is too large"
	ReasonTooManySeparators DropReason = "more than one 'd' in term"
	ReasonTooManyDice       DropReason = "too many dice"
)

// DroppedTerm records a term the parser could not use.
type DroppedTerm struct {
	Term   string
	Reason DropReason
}
