// internal/poker/matchers.go
//
// Combination matchers.
// Each matcher is a pure function over a hand sorted by descending rank value.
// On a match it returns the category's tie-break score (without the base);
// the evaluator adds the base score.
//
// Tie-break formulas:
//   - RoyalFlush:    0
//   - StraightFlush: sum of values (Ace counts 1 in the wheel)
//   - FourOfAKind:   (quad + 14) * 4 + kicker
//   - FullHouse:     (triple + 14) * 3 + pair * 2
//   - Flush:         sum of values
//   - Straight:      sum of values (Ace counts 1 in the wheel)
//   - ThreeOfAKind:  positional(triple, kicker, kicker)
//   - TwoPairs:      positional(high pair, low pair, kicker)
//   - Pair:          positional(pair, kicker, kicker, kicker)
//   - HighCard:      positional(all five), the fallback
//
// positional weighs each value by a power of kickerRadix so that the sum
// orders hands lexicographically: one higher card in a more significant
// position outweighs everything after it.

package poker

import "sort"

// kickerRadix exceeds the highest rank value, so no combination of lower
// positions can carry into a higher one.
const kickerRadix = 15

// hand is a sorted, evaluator-owned copy of the caller's cards.
type hand [HandSize]Card

// sortedHand copies cards into a hand ordered by descending rank value.
// Ties are ordered by suit so the result is independent of input order.
func sortedHand(cards []Card) hand {
	var h hand
	copy(h[:], cards)
	sort.Slice(h[:], func(i, j int) bool {
		if h[i].rank != h[j].rank {
			return h[i].rank > h[j].rank
		}
		return h[i].suit < h[j].suit
	})
	return h
}

// matcher pairs a category with its structural test.
type matcher struct {
	category Category
	match    func(h hand) (int, bool)
}

// matchers runs strongest first; the first match wins.
var matchers = [...]matcher{
	{RoyalFlush, matchRoyalFlush},
	{StraightFlush, matchStraightFlush},
	{FourOfAKind, matchFourOfAKind},
	{FullHouse, matchFullHouse},
	{Flush, matchFlush},
	{Straight, matchStraight},
	{ThreeOfAKind, matchThreeOfAKind},
	{TwoPairs, matchTwoPairs},
	{Pair, matchPair},
}

func matchRoyalFlush(h hand) (int, bool) {
	if !sameSuit(h) {
		return 0, false
	}
	royal := [HandSize]Rank{Ace, King, Queen, Jack, Ten}
	for i, c := range h {
		if c.rank != royal[i] {
			return 0, false
		}
	}
	return 0, true
}

func matchStraightFlush(h hand) (int, bool) {
	if !sameSuit(h) || !isStraight(h) {
		return 0, false
	}
	return straightSum(h), true
}

func matchFourOfAKind(h hand) (int, bool) {
	g := groupRanks(h)
	if g[0].size != 4 {
		return 0, false
	}
	return (g[0].rank.Value()+14)*4 + g[1].rank.Value(), true
}

func matchFullHouse(h hand) (int, bool) {
	g := groupRanks(h)
	if len(g) != 2 || g[0].size != 3 {
		return 0, false
	}
	return (g[0].rank.Value()+14)*3 + g[1].rank.Value()*2, true
}

func matchFlush(h hand) (int, bool) {
	if !sameSuit(h) {
		return 0, false
	}
	return sum(h), true
}

func matchStraight(h hand) (int, bool) {
	if !isStraight(h) {
		return 0, false
	}
	return straightSum(h), true
}

func matchThreeOfAKind(h hand) (int, bool) {
	g := groupRanks(h)
	if len(g) != 3 || g[0].size != 3 {
		return 0, false
	}
	return positional(g[0].rank.Value(), g[1].rank.Value(), g[2].rank.Value()), true
}

func matchTwoPairs(h hand) (int, bool) {
	g := groupRanks(h)
	if len(g) != 3 || g[0].size != 2 || g[1].size != 2 {
		return 0, false
	}
	return positional(g[0].rank.Value(), g[1].rank.Value(), g[2].rank.Value()), true
}

func matchPair(h hand) (int, bool) {
	g := groupRanks(h)
	if len(g) != 4 {
		return 0, false
	}
	return positional(g[0].rank.Value(), g[1].rank.Value(), g[2].rank.Value(), g[3].rank.Value()), true
}

// highCardScore is the fallback tie-break when no matcher applies.
func highCardScore(h hand) int {
	vals := make([]int, 0, HandSize)
	for _, c := range h {
		vals = append(vals, c.Value())
	}
	return positional(vals...)
}

// ---------------------------------------------------------------------------
// helpers

func sameSuit(h hand) bool {
	for _, c := range h[1:] {
		if c.suit != h[0].suit {
			return false
		}
	}
	return true
}

// isStraight accepts a consecutive descending run OR the wheel.
func isStraight(h hand) bool {
	return isRun(h) || isWheel(h)
}

func isRun(h hand) bool {
	for i := 0; i < len(h)-1; i++ {
		if h[i].Value()-h[i+1].Value() != 1 {
			return false
		}
	}
	return true
}

// isWheel matches A-5-4-3-2, the only straight where the Ace plays low.
func isWheel(h hand) bool {
	wheel := [HandSize]Rank{Ace, Five, Four, Three, Two}
	for i, c := range h {
		if c.rank != wheel[i] {
			return false
		}
	}
	return true
}

func straightSum(h hand) int {
	s := sum(h)
	if isWheel(h) {
		s -= Ace.Value() - aceLow
	}
	return s
}

func sum(h hand) int {
	s := 0
	for _, c := range h {
		s += c.Value()
	}
	return s
}

func positional(vals ...int) int {
	score := 0
	for _, v := range vals {
		score = score*kickerRadix + v
	}
	return score
}

// rankGroup is a run of cards sharing a rank.
type rankGroup struct {
	rank Rank
	size int
}

// groupRanks collapses a sorted hand into rank groups ordered by size, then
// by rank, both descending. A pair of kings in K K 9 5 2 yields
// [{K,2} {9,1} {5,1} {2,1}].
func groupRanks(h hand) []rankGroup {
	groups := make([]rankGroup, 0, HandSize)
	for _, c := range h {
		if n := len(groups); n > 0 && groups[n-1].rank == c.rank {
			groups[n-1].size++
			continue
		}
		groups = append(groups, rankGroup{rank: c.rank, size: 1})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].size > groups[j].size
	})
	return groups
}
