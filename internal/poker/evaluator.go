// internal/poker/evaluator.go
//
// Evaluator: the single entry point of the hand classification engine.
// Responsibilities:
//   - Build cards from (rank, suit) symbols.
//   - Validate the hand (size, degenerate rank, duplicates).
//   - Sort an owned copy by descending rank value.
//   - Run the matchers strongest first; fall back to HighCard.
//
// Evaluation is pure: no shared state, no I/O, and the caller's slice is never
// reordered, so concurrent calls are safe.

package poker

import "fmt"

// Symbol is a card as the caller supplies it, e.g. {Rank: "10", Suit: "H"}.
type Symbol struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// Evaluate classifies a hand given as symbols.
func Evaluate(symbols []Symbol) (Result, error) {
	cards := make([]Card, 0, len(symbols))
	for i, s := range symbols {
		c, err := NewCard(s.Rank, s.Suit)
		if err != nil {
			return Result{}, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return EvaluateCards(cards)
}

// EvaluateCards classifies a hand of constructed cards.
func EvaluateCards(cards []Card) (Result, error) {
	if err := Validate(cards); err != nil {
		return Result{}, err
	}

	h := sortedHand(cards)
	for _, m := range matchers {
		if tieBreak, ok := m.match(h); ok {
			return Result{Category: m.category, Score: m.category.BaseScore() + tieBreak}, nil
		}
	}
	return Result{Category: HighCard, Score: HighCard.BaseScore() + highCardScore(h)}, nil
}
