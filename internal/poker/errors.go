package poker

import "errors"

// Validation failures surfaced by the evaluator. Callers match them with
// errors.Is; the returned errors are wrapped with the offending detail.
var (
	ErrInvalidCard     = errors.New("invalid card")
	ErrInvalidHandSize = errors.New("hand must contain exactly 5 cards")
	ErrDuplicateCard   = errors.New("hand cannot have duplicating cards")
	ErrDegenerateHand  = errors.New("hand cannot contain 5 cards of the same rank")
)
