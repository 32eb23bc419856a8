package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger to provide logged dice rolling.
// Every group is logged at debug level with its sides, count, values, and subtotal.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that rolls with src and logs each roll to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Roll rolls req and logs the result at debug level.
//
// Precondition: req must come from Parse.
func (r *Roller) Roll(req Request) Outcome {
	out := Roll(req, r.src)
	for _, g := range out.Groups {
		r.logger.Debug("dice roll",
			zap.Int("sides", g.Sides),
			zap.Int("count", len(g.Values)),
			zap.Ints("values", g.Values),
			zap.Stringer("subtotal", g.Sum()),
		)
	}
	if out.Constant != nil {
		r.logger.Debug("dice constant", zap.Int("constant", *out.Constant))
	}
	return out
}
