package poker

import "fmt"

// Winner identifies which side of a comparison won.
type Winner int

const (
	Tie Winner = iota
	Player1
	Player2
)

func (w Winner) String() string {
	switch w {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "tie"
	}
}

func (w Winner) MarshalText() ([]byte, error) { return []byte(w.String()), nil }

func (w *Winner) UnmarshalText(b []byte) error {
	for _, c := range []Winner{Tie, Player1, Player2} {
		if c.String() == string(b) {
			*w = c
			return nil
		}
	}
	return fmt.Errorf("unknown winner %q", b)
}

// Outcome is the comparison of two evaluated hands.
type Outcome struct {
	Winner  Winner `json:"winner"`
	Player1 Result `json:"player1"`
	Player2 Result `json:"player2"`
}

// Compare decides the winner by raw score; category dominance is already
// encoded in the base scores.
func Compare(p1, p2 Result) Outcome {
	o := Outcome{Player1: p1, Player2: p2}
	switch {
	case p1.Score > p2.Score:
		o.Winner = Player1
	case p2.Score > p1.Score:
		o.Winner = Player2
	}
	return o
}

// Narrate describes the outcome for a human, e.g.
// "Player 2 wins with Pair and HighCard. Player 1 had Pair."
// The " and HighCard" suffix marks a win decided by kickers within the same
// category.
func (o Outcome) Narrate() string {
	if o.Winner == Tie {
		return fmt.Sprintf("Both players had even hands with %s.", o.Player1.Category)
	}

	win, lose := o.Player1, o.Player2
	winner, loser := 1, 2
	if o.Winner == Player2 {
		win, lose = lose, win
		winner, loser = loser, winner
	}

	kickers := ""
	if win.Category == lose.Category {
		kickers = " and " + HighCard.String()
	}
	return fmt.Sprintf("Player %d wins with %s%s. Player %d had %s.",
		winner, win.Category, kickers, loser, lose.Category)
}
