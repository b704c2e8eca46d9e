// handcheck compares two five-card hands from the command line:
//
//	handcheck "KH AH QH JH 10H" "2C,2D,5S,9H,JD"
//
// Each hand is scored, tabulated next to an independent description of the
// hand, and the narrated outcome is printed in a box. Exit status is 2 when
// either hand is invalid.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/robalobadob/pokerhands/internal/poker"
)

func main() {
	debug := flag.Bool("debug", false, "log evaluation details")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [-debug] <hand1> <hand2>\n", os.Args[0])
		os.Exit(1)
	}

	logger := pterm.DefaultLogger
	if *debug {
		logger = *logger.WithLevel(pterm.LogLevelDebug)
	}
	log := slog.New(pterm.NewSlogHandler(&logger))

	var (
		hands   [2][]poker.Card
		results [2]poker.Result
	)
	for i := range hands {
		cards, err := poker.ParseHand(flag.Arg(i))
		if err == nil {
			results[i], err = poker.EvaluateCards(cards)
		}
		if err != nil {
			log.Error("invalid hand", "player", i+1, "input", flag.Arg(i), "error", err)
			os.Exit(2)
		}
		hands[i] = cards
		log.Debug("evaluated", "player", i+1, "category", results[i].Category.String(), "score", results[i].Score)
	}

	data := pterm.TableData{{"Player", "Hand", "Category", "Score", "Described as"}}
	for i, cards := range hands {
		desc, err := describe(cards)
		if err != nil {
			log.Warn("describe failed", "player", i+1, "error", err)
			desc = "-"
		}
		data = append(data, []string{
			strconv.Itoa(i + 1), handString(cards), results[i].Category.String(),
			strconv.Itoa(results[i].Score), desc,
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
		log.Error("render table", "error", err)
	}

	outcome := poker.Compare(results[0], results[1])
	title := pterm.LightGreen("|SHOWDOWN|")
	if outcome.Winner == poker.Tie {
		title = pterm.LightYellow("|SPLIT POT|")
	}
	pterm.DefaultBox.
		WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1).
		WithTitle(title).WithTitleTopCenter().
		Println(outcome.Narrate())
}

func handString(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
