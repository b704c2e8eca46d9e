// internal/poker/combination.go
//
// Hand categories, weakest to strongest, and their base scores.
// A base score is added to every score in its category; the spacing between
// consecutive bases is wider than any intra-category tie-break, so comparing
// raw scores always decides by category first.

package poker

import "fmt"

// Category is a poker combination.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// categorySpacing separates consecutive base scores. The largest tie-break
// (HighCard, five radix-15 positions of 14) is 759,374.
const categorySpacing = 1_000_000

var categoryNames = [...]string{
	HighCard:      "HighCard",
	Pair:          "Pair",
	TwoPairs:      "TwoPairs",
	ThreeOfAKind:  "ThreeOfAKind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "FullHouse",
	FourOfAKind:   "FourOfAKind",
	StraightFlush: "StraightFlush",
	RoyalFlush:    "RoyalFlush",
}

// Categories lists every category from weakest to strongest.
func Categories() []Category {
	out := make([]Category, 0, len(categoryNames))
	for c := HighCard; c <= RoyalFlush; c++ {
		out = append(out, c)
	}
	return out
}

// BaseScore is the additive offset for every hand in the category.
func (c Category) BaseScore() int { return int(c) * categorySpacing }

func (c Category) String() string {
	if c < HighCard || c > RoyalFlush {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	if c < HighCard || c > RoyalFlush {
		return nil, fmt.Errorf("unknown category: %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	for i, name := range categoryNames {
		if name == string(text) {
			*c = Category(i)
			return nil
		}
	}
	return fmt.Errorf("unknown category: %s", string(text))
}

// Result is the outcome of evaluating one hand. Score is only meaningful when
// compared with another Result's score.
type Result struct {
	Category Category `json:"category"`
	Score    int      `json:"score"`
}
