package poker

import "fmt"

// HandSize is the only hand length the evaluator accepts.
const HandSize = 5

// Validate guards a hand before classification:
//   - exactly HandSize cards (ErrInvalidHandSize);
//   - not every card of one rank (ErrDegenerateHand);
//   - no card repeated, comparing rank and suit (ErrDuplicateCard).
//
// The degenerate check runs before the duplicate check so a five-of-a-rank
// submission is reported as such rather than as its first repeated card.
func Validate(cards []Card) error {
	if len(cards) != HandSize {
		return fmt.Errorf("%w: got %d", ErrInvalidHandSize, len(cards))
	}

	sameRank := true
	for _, c := range cards[1:] {
		if !c.SameRank(cards[0]) {
			sameRank = false
			break
		}
	}
	if sameRank {
		return fmt.Errorf("%w: all cards are %s", ErrDegenerateHand, cards[0].Rank())
	}

	seen := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}
