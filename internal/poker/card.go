// internal/poker/card.go
//
// Card model for the hand evaluator.
// Defines:
//   - Rank: ordinal face value 2..14 (Ace high; the wheel reinterprets it as 1).
//   - Suit: one of Hearts, Spades, Diamonds, Clubs.
//   - Card: an immutable (rank, suit) pair.
//
// Cards are comparable values: == compares rank AND suit, which is what the
// hand validator uses for duplicate detection. Matchers group by rank only
// through SameRank.

package poker

import (
	"fmt"
	"strings"
)

// Rank is a card's face value. The underlying int is its ordinal value.
type Rank int

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// aceLow is the value an Ace takes in the wheel (A-5-4-3-2).
const aceLow = 1

var rankSymbols = map[string]Rank{
	"2": Two, "3": Three, "4": Four, "5": Five, "6": Six, "7": Seven,
	"8": Eight, "9": Nine, "10": Ten, "J": Jack, "Q": Queen, "K": King, "A": Ace,
}

// ParseRank maps a rank symbol ("2".."10", "J", "Q", "K", "A") to a Rank.
func ParseRank(symbol string) (Rank, error) {
	r, ok := rankSymbols[strings.ToUpper(symbol)]
	if !ok {
		return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, symbol)
	}
	return r, nil
}

// Value returns the ordinal value used in score arithmetic.
func (r Rank) Value() int { return int(r) }

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Suit is one of the four card suits.
type Suit byte

const (
	Hearts   Suit = 'H'
	Spades   Suit = 'S'
	Diamonds Suit = 'D'
	Clubs    Suit = 'C'
)

// ParseSuit maps "H", "S", "D" or "C" (any case) to a Suit.
func ParseSuit(symbol string) (Suit, error) {
	if len(symbol) == 1 {
		switch s := Suit(strings.ToUpper(symbol)[0]); s {
		case Hearts, Spades, Diamonds, Clubs:
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, symbol)
}

func (s Suit) String() string { return string(s) }

// Name returns the long form, e.g. "Hearts".
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "Hearts"
	case Spades:
		return "Spades"
	case Diamonds:
		return "Diamonds"
	case Clubs:
		return "Clubs"
	default:
		return "Unknown"
	}
}

// Card is a single playing card.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard constructs a card from a rank symbol and a suit symbol.
// It fails with ErrInvalidCard when either symbol is outside its set.
func NewCard(rank, suit string) (Card, error) {
	r, err := ParseRank(rank)
	if err != nil {
		return Card{}, err
	}
	s, err := ParseSuit(suit)
	if err != nil {
		return Card{}, err
	}
	return Card{rank: r, suit: s}, nil
}

// MustCard is NewCard for literals known to be valid; it panics otherwise.
func MustCard(rank, suit string) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) Rank() Rank { return c.rank }
func (c Card) Suit() Suit { return c.suit }

// Value is shorthand for c.Rank().Value().
func (c Card) Value() int { return c.rank.Value() }

// SameRank reports whether both cards share a rank, ignoring suit.
func (c Card) SameRank(o Card) bool { return c.rank == o.rank }

// String renders the card in rank-then-suit notation, e.g. "10H".
func (c Card) String() string { return c.rank.String() + c.suit.String() }
