package poker

import (
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oracleHand converts a hand for github.com/paulhankin/poker, which numbers
// ranks 1 (Ace) through 13.
func oracleHand(t *testing.T, cs []Card) *[5]ph.Card {
	t.Helper()
	suits := map[Suit]ph.Suit{Clubs: ph.Club, Diamonds: ph.Diamond, Hearts: ph.Heart, Spades: ph.Spade}

	var out [5]ph.Card
	for i, c := range cs {
		r := c.Value()
		if c.Rank() == Ace {
			r = 1
		}
		pc, err := ph.MakeCard(suits[c.Suit()], ph.Rank(r))
		require.NoError(t, err)
		out[i] = pc
	}
	return &out
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// The four-of-a-kind, full-house and flush formulas are not lexicographic, so
// pairs within those categories are left out here and covered by the
// dedicated kicker tests.
func TestComparisonAgreesWithIndependentEvaluator(t *testing.T) {
	hands := [][]string{
		{"AH", "KH", "QH", "JH", "10H"},
		{"9S", "10S", "JS", "QS", "KS"},
		{"AD", "2D", "3D", "4D", "5D"},
		{"7C", "7D", "7H", "7S", "2C"},
		{"QC", "QD", "QH", "4S", "4C"},
		{"2H", "5H", "9H", "JH", "KH"},
		{"10H", "JS", "QD", "KH", "AC"},
		{"6H", "7S", "8D", "9H", "10C"},
		{"2H", "3S", "4D", "5H", "6C"},
		{"AH", "2S", "3D", "4H", "5C"},
		{"AH", "AS", "AD", "KH", "QC"},
		{"5H", "5S", "5D", "KH", "2C"},
		{"5C", "5D", "5H", "QH", "JC"},
		{"AH", "AS", "KD", "KH", "QC"},
		{"KH", "KS", "4D", "4H", "2C"},
		{"KD", "KC", "3D", "3H", "AC"},
		{"9H", "9S", "AD", "3H", "2C"},
		{"9D", "9C", "KD", "QH", "JC"},
		{"2H", "2S", "3D", "4H", "5C"},
		{"AH", "KS", "QD", "JH", "9C"},
		{"AD", "KH", "QS", "JC", "8D"},
		{"AH", "6S", "4D", "3H", "2C"},
		{"KH", "QS", "JD", "10H", "8C"},
		{"7H", "5S", "4D", "3H", "2C"},
	}
	skip := map[Category]bool{FourOfAKind: true, FullHouse: true, Flush: true}

	for i := range hands {
		for j := range hands {
			if i == j {
				continue
			}
			a, b := cards(t, hands[i]...), cards(t, hands[j]...)
			ra, err := EvaluateCards(a)
			require.NoError(t, err)
			rb, err := EvaluateCards(b)
			require.NoError(t, err)
			if ra.Category == rb.Category && skip[ra.Category] {
				continue
			}

			want := sign(int(ph.Eval5(oracleHand(t, a))) - int(ph.Eval5(oracleHand(t, b))))
			got := sign(ra.Score - rb.Score)
			assert.Equalf(t, want, got, "%v vs %v", hands[i], hands[j])
		}
	}
}
