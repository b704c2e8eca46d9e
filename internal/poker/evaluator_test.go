package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eval(t *testing.T, notation ...string) Result {
	t.Helper()
	res, err := EvaluateCards(cards(t, notation...))
	require.NoError(t, err)
	return res
}

func TestEvaluateCategories(t *testing.T) {
	tests := []struct {
		name      string
		hand      []string
		category  Category
		wantScore int
	}{
		{"royal flush", []string{"AH", "KH", "QH", "JH", "10H"}, RoyalFlush, 9_000_000},
		{"straight flush", []string{"2H", "3H", "4H", "5H", "6H"}, StraightFlush, 8_000_020},
		{"steel wheel", []string{"AS", "2S", "3S", "4S", "5S"}, StraightFlush, 8_000_015},
		{"four aces, kicker 2", []string{"AH", "AS", "AD", "AC", "2H"}, FourOfAKind, 7_000_000 + 28*4 + 2},
		{"four twos, kicker ace", []string{"2H", "2S", "2D", "2C", "AH"}, FourOfAKind, 7_000_000 + 16*4 + 14},
		{"threes full of sevens", []string{"3H", "3S", "3D", "7H", "7S"}, FullHouse, 6_000_000 + 17*3 + 7*2},
		{"sevens full of threes", []string{"7H", "7S", "7D", "3H", "3S"}, FullHouse, 6_000_000 + 21*3 + 3*2},
		{"flush", []string{"2H", "3H", "4H", "5H", "7H"}, Flush, 5_000_021},
		{"straight", []string{"2H", "3D", "4H", "5D", "6H"}, Straight, 4_000_020},
		{"wheel", []string{"AH", "2S", "3D", "4H", "5C"}, Straight, 4_000_015},
		{"broadway", []string{"AH", "KS", "QD", "JH", "10C"}, Straight, 4_000_060},
		{"three of a kind", []string{"9H", "9S", "9D", "KH", "2C"}, ThreeOfAKind, 3_000_000 + positional(9, 13, 2)},
		{"two pairs", []string{"4H", "4S", "JD", "JH", "8C"}, TwoPairs, 2_000_000 + positional(11, 4, 8)},
		{"pair", []string{"QH", "QS", "3D", "8H", "5C"}, Pair, 1_000_000 + positional(12, 8, 5, 3)},
		{"high card", []string{"AH", "JS", "8D", "5H", "2C"}, HighCard, positional(14, 11, 8, 5, 2)},
		{"broken wheel is high card", []string{"AH", "2S", "3D", "4H", "6C"}, HighCard, positional(14, 6, 4, 3, 2)},
		{"no wrap-around straight", []string{"QH", "KS", "AD", "2H", "3C"}, HighCard, positional(14, 13, 12, 3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := eval(t, tt.hand...)
			assert.Equal(t, tt.category, res.Category)
			assert.Equal(t, tt.wantScore, res.Score)
		})
	}
}

func TestEvaluateSymbols(t *testing.T) {
	res, err := Evaluate([]Symbol{
		{Rank: "A", Suit: "H"}, {Rank: "K", Suit: "H"}, {Rank: "Q", Suit: "H"},
		{Rank: "J", Suit: "H"}, {Rank: "10", Suit: "H"},
	})
	require.NoError(t, err)
	assert.Equal(t, RoyalFlush, res.Category)

	_, err = Evaluate([]Symbol{
		{Rank: "A", Suit: "H"}, {Rank: "K", Suit: "H"}, {Rank: "Z", Suit: "H"},
		{Rank: "J", Suit: "H"}, {Rank: "10", Suit: "H"},
	})
	assert.ErrorIs(t, err, ErrInvalidCard)
	assert.Contains(t, err.Error(), "card 3")
}

func TestEvaluatePropagatesValidationErrors(t *testing.T) {
	_, err := EvaluateCards(cards(t, "AH", "KH"))
	assert.ErrorIs(t, err, ErrInvalidHandSize)

	_, err = EvaluateCards(cards(t, "AH", "KH", "QH", "JH", "AH"))
	assert.ErrorIs(t, err, ErrDuplicateCard)
}

func TestCategoryDominance(t *testing.T) {
	// weakest hand of each category against the strongest of the one below
	tests := []struct {
		name           string
		weakest        []string
		strongestBelow []string
	}{
		{"pair over high card", []string{"2H", "2S", "3D", "4H", "5C"}, []string{"AH", "KS", "QD", "JH", "9C"}},
		{"two pairs over pair", []string{"3H", "3S", "2D", "2H", "4C"}, []string{"AH", "AS", "KD", "QH", "JC"}},
		{"trips over two pairs", []string{"2H", "2S", "2D", "3H", "4C"}, []string{"AH", "AS", "KD", "KH", "QC"}},
		{"straight over trips", []string{"AH", "2S", "3D", "4H", "5C"}, []string{"AH", "AS", "AD", "KH", "QC"}},
		{"flush over straight", []string{"2H", "3H", "4H", "5H", "7H"}, []string{"AH", "KS", "QD", "JH", "10C"}},
		{"full house over flush", []string{"2H", "2S", "2D", "3H", "3C"}, []string{"AH", "KH", "QH", "JH", "9H"}},
		{"quads over full house", []string{"2H", "2S", "2D", "2C", "3H"}, []string{"AH", "AS", "AD", "KH", "KC"}},
		{"straight flush over quads", []string{"AH", "2H", "3H", "4H", "5H"}, []string{"AH", "AS", "AD", "AC", "KH"}},
		{"royal over straight flush", []string{"AH", "KH", "QH", "JH", "10H"}, []string{"KS", "QS", "JS", "10S", "9S"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := eval(t, tt.weakest...), eval(t, tt.strongestBelow...)
			assert.Equal(t, hi.Category+1, lo.Category)
			assert.Greater(t, lo.Score, hi.Score)
		})
	}
}

func TestKickersBehaveLexicographically(t *testing.T) {
	tests := []struct {
		name          string
		better, worse []string
	}{
		{"high card: one high card beats many mid cards", []string{"AH", "6S", "4D", "3H", "2C"}, []string{"KH", "QS", "JD", "10H", "8C"}},
		{"high card: last kicker", []string{"AH", "KS", "QD", "JH", "9C"}, []string{"AD", "KH", "QS", "JC", "8D"}},
		{"pair: pair rank outweighs kickers", []string{"3H", "3S", "4D", "5H", "6C"}, []string{"2H", "2S", "AD", "KH", "QC"}},
		{"pair: first kicker outweighs the rest", []string{"9H", "9S", "AD", "3H", "2C"}, []string{"9D", "9C", "KD", "QH", "JC"}},
		{"pair: last kicker", []string{"AH", "AS", "KD", "QH", "9C"}, []string{"AD", "AC", "KH", "QS", "8C"}},
		{"two pairs: high pair", []string{"KH", "KS", "2D", "2H", "3C"}, []string{"QH", "QS", "JD", "JH", "AC"}},
		{"two pairs: low pair", []string{"KH", "KS", "4D", "4H", "2C"}, []string{"KD", "KC", "3D", "3H", "AC"}},
		{"two pairs: kicker", []string{"AH", "AS", "KD", "KH", "QC"}, []string{"AD", "AC", "KS", "KC", "JC"}},
		{"trips: triple rank", []string{"3H", "3S", "3D", "2H", "4C"}, []string{"2D", "2C", "2S", "AH", "KC"}},
		{"trips: kicker", []string{"9H", "9S", "9D", "AH", "2C"}, []string{"9C", "9D", "9H", "KH", "QC"}},
		{"straight: higher run", []string{"7H", "8S", "9D", "10H", "JC"}, []string{"6H", "7S", "8D", "9H", "10C"}},
		{"straight: six-high beats wheel", []string{"2H", "3S", "4D", "5H", "6C"}, []string{"AH", "2S", "3D", "4H", "5C"}},
		{"straight flush: six-high beats steel wheel", []string{"2D", "3D", "4D", "5D", "6D"}, []string{"AC", "2C", "3C", "4C", "5C"}},
		{"four of a kind: kicker", []string{"8H", "8S", "8D", "8C", "KH"}, []string{"8H", "8S", "8D", "8C", "QH"}},
		{"full house: pair rank", []string{"8H", "8S", "8D", "KC", "KH"}, []string{"8H", "8S", "8D", "QC", "QH"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, w := eval(t, tt.better...), eval(t, tt.worse...)
			require.Equal(t, b.Category, w.Category)
			assert.Greater(t, b.Score, w.Score)
		})
	}
}

func TestStraightAndFlushOrdering(t *testing.T) {
	sf := eval(t, "2H", "3H", "4H", "5H", "6H")
	flush := eval(t, "2H", "3H", "4H", "5H", "7H")
	straight := eval(t, "2H", "3D", "4H", "5D", "6H")
	wheel := eval(t, "AH", "2S", "3D", "4H", "5C")
	jackHigh := eval(t, "7H", "8S", "9D", "10H", "JC")
	nothing := eval(t, "AH", "2S", "3D", "4H", "7C")

	assert.Greater(t, sf.Score, flush.Score)
	assert.Greater(t, flush.Score, straight.Score)
	assert.Greater(t, jackHigh.Score, wheel.Score)
	assert.Greater(t, wheel.Score, nothing.Score)

	// 6D breaks the flush; it is only a straight.
	assert.Equal(t, Straight, eval(t, "2H", "3H", "4H", "5H", "6D").Category)
}

func TestSuitDoesNotAffectScoreOutsideFlushes(t *testing.T) {
	a := eval(t, "KH", "KS", "7D", "4H", "2C")
	b := eval(t, "KD", "KC", "7S", "4C", "2H")
	assert.Equal(t, a, b)

	a = eval(t, "9H", "10S", "JD", "QH", "KC")
	b = eval(t, "9C", "10D", "JS", "QC", "KD")
	assert.Equal(t, a, b)
}

func TestEvaluateIsOrderIndependent(t *testing.T) {
	hands := [][]string{
		{"AH", "KH", "QH", "JH", "10H"},
		{"AH", "2S", "3D", "4H", "5C"},
		{"3H", "3S", "3D", "7H", "7S"},
		{"4H", "4S", "JD", "JH", "8C"},
		{"QH", "QS", "3D", "8H", "5C"},
		{"AH", "JS", "8D", "5H", "2C"},
	}
	for _, h := range hands {
		want := eval(t, h...)
		permute(h, func(p []string) {
			assert.Equal(t, want, eval(t, p...), "%v", p)
		})
	}
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	in := cards(t, "2C", "KH", "7D", "KS", "AH")
	orig := append([]Card(nil), in...)

	_, err := EvaluateCards(in)
	require.NoError(t, err)
	assert.Equal(t, orig, in)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	h := cards(t, "9H", "9S", "9D", "KH", "2C")
	first, err := EvaluateCards(h)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := EvaluateCards(h)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// permute calls fn with every ordering of s (Heap's algorithm).
func permute(s []string, fn func([]string)) {
	p := append([]string(nil), s...)
	var gen func(k int)
	gen = func(k int) {
		if k == 1 {
			fn(append([]string(nil), p...))
			return
		}
		for i := 0; i < k; i++ {
			gen(k - 1)
			if k%2 == 0 {
				p[i], p[k-1] = p[k-1], p[i]
			} else {
				p[0], p[k-1] = p[k-1], p[0]
			}
		}
	}
	gen(len(p))
}
