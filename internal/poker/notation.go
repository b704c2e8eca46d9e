// internal/poker/notation.go
//
// Text notation for cards, used by the HTTP and CLI layers.
// A card is written rank-then-suit ("KH", "10S"). Suit-then-rank ("HK",
// "S10") is accepted too; the suit letters never collide with rank symbols,
// so both forms are unambiguous. Input is case-insensitive.

package poker

import (
	"fmt"
	"strings"
)

// ParseCard decodes a single card in text notation.
func ParseCard(s string) (Card, error) {
	sym, err := ParseSymbol(s)
	if err != nil {
		return Card{}, err
	}
	return NewCard(sym.Rank, sym.Suit)
}

// ParseSymbol splits a card's text notation into rank and suit symbols
// without checking that the rank exists.
func ParseSymbol(s string) (Symbol, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return Symbol{}, fmt.Errorf("%w: %q is too short", ErrInvalidCard, s)
	}
	if isSuitLetter(s[len(s)-1]) {
		return Symbol{Rank: s[:len(s)-1], Suit: s[len(s)-1:]}, nil
	}
	if isSuitLetter(s[0]) {
		return Symbol{Rank: s[1:], Suit: s[:1]}, nil
	}
	return Symbol{}, fmt.Errorf("%w: %q has no suit", ErrInvalidCard, s)
}

// ParseSymbols decodes a list of cards in text notation.
func ParseSymbols(cards []string) ([]Symbol, error) {
	out := make([]Symbol, 0, len(cards))
	for _, c := range cards {
		sym, err := ParseSymbol(c)
		if err != nil {
			return nil, err
		}
		out = append(out, sym)
	}
	return out, nil
}

// SplitHand splits "KH,AS 10D" style input into card tokens. Commas and
// whitespace both separate cards.
func SplitHand(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// ParseHand decodes a comma or space separated hand, e.g. "KH,AS,10D,2C,2S".
func ParseHand(s string) ([]Card, error) {
	tokens := SplitHand(s)
	cards := make([]Card, 0, len(tokens))
	for _, t := range tokens {
		c, err := ParseCard(t)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func isSuitLetter(b byte) bool {
	switch Suit(b) {
	case Hearts, Spades, Diamonds, Clubs:
		return true
	}
	return false
}
