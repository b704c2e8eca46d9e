package main

import (
	ph "github.com/paulhankin/poker"

	"github.com/robalobadob/pokerhands/internal/poker"
)

var oracleSuits = map[poker.Suit]ph.Suit{
	poker.Clubs:    ph.Club,
	poker.Diamonds: ph.Diamond,
	poker.Hearts:   ph.Heart,
	poker.Spades:   ph.Spade,
}

// toOracle converts a card for github.com/paulhankin/poker, which numbers
// ranks 1 (Ace) through 13.
func toOracle(c poker.Card) (ph.Card, error) {
	r := c.Value()
	if c.Rank() == poker.Ace {
		r = 1
	}
	return ph.MakeCard(oracleSuits[c.Suit()], ph.Rank(r))
}

// describe names the hand using the independent evaluator, e.g.
// "ace-high straight flush".
func describe(cards []poker.Card) (string, error) {
	out := make([]ph.Card, 0, len(cards))
	for _, c := range cards {
		pc, err := toOracle(c)
		if err != nil {
			return "", err
		}
		out = append(out, pc)
	}
	return ph.Describe(out)
}
