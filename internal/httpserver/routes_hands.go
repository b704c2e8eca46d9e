// internal/httpserver/routes_hands.go
//
// Hand evaluation and showdown routes:
//   - GET  /result?player1Hand=..&player2Hand=.. → narrated comparison
//   - POST /showdown  {"player1Hand":[..],"player2Hand":[..]} → same
//   - POST /evaluate  {"hand":[..]} or {"cards":[{rank,suit}..]} → one hand
//   - GET  /showdowns, /showdowns/{id}, /showdowns/mine → history
//
// Hands are written in card notation ("KH", "10S"); query parameters accept
// either repeated values or comma separated lists.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pokerhands/internal/poker"
	"github.com/robalobadob/pokerhands/internal/store"
)

// showdownReq is the payload for POST /showdown.
type showdownReq struct {
	Player1Hand []string `json:"player1Hand"`
	Player2Hand []string `json:"player2Hand"`
}

// showdownRes is returned by GET /result and POST /showdown.
type showdownRes struct {
	ID      string       `json:"id,omitempty"` // empty when persisting failed
	Message string       `json:"message"`
	Winner  poker.Winner `json:"winner"`
	Player1 handRes      `json:"player1"`
	Player2 handRes      `json:"player2"`
}

type handRes struct {
	Hand     []string       `json:"hand"`
	Category poker.Category `json:"category"`
	Score    int            `json:"score"`
}

// handleResult mirrors POST /showdown for query-string callers.
func (s *Server) handleResult(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	s.showdown(w, r, splitParams(q["player1Hand"]), splitParams(q["player2Hand"]))
}

func (s *Server) handleShowdown(w http.ResponseWriter, r *http.Request) {
	var req showdownReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	s.showdown(w, r, splitParams(req.Player1Hand), splitParams(req.Player2Hand))
}

// showdown evaluates both hands, compares them, and records the result.
func (s *Server) showdown(w http.ResponseWriter, r *http.Request, tokens1, tokens2 []string) {
	hand1, res1, err := s.evaluate(tokens1)
	if err != nil {
		s.writeEvalError(w, "player1Hand", err)
		return
	}
	hand2, res2, err := s.evaluate(tokens2)
	if err != nil {
		s.writeEvalError(w, "player2Hand", err)
		return
	}

	outcome := poker.Compare(res1, res2)
	s.metrics.ObserveShowdown(outcome)

	userID := ""
	if me := currentUser(r); me != nil {
		userID = me.ID
	}
	rec := store.NewShowdown(userID, hand1, hand2, outcome)
	id := rec.ID
	if err := s.store.Save(r.Context(), rec); err != nil {
		log.Warn().Err(err).Str("showdown", rec.ID).Msg("save showdown")
		id = ""
	}

	writeJSON(w, http.StatusOK, showdownRes{
		ID:      id,
		Message: rec.Message,
		Winner:  outcome.Winner,
		Player1: handRes{Hand: hand1, Category: res1.Category, Score: res1.Score},
		Player2: handRes{Hand: hand2, Category: res2.Category, Score: res2.Score},
	})
}

// evaluateReq is the payload for POST /evaluate. Hand takes precedence.
type evaluateReq struct {
	Hand  []string       `json:"hand"`
	Cards []poker.Symbol `json:"cards"`
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}

	var (
		hand []string
		res  poker.Result
		err  error
	)
	if len(req.Hand) > 0 {
		hand, res, err = s.evaluate(splitParams(req.Hand))
	} else {
		res, err = poker.Evaluate(req.Cards)
		if err == nil {
			s.metrics.ObserveHand(res)
		}
		for _, c := range req.Cards {
			hand = append(hand, c.Rank+c.Suit)
		}
	}
	if err != nil {
		s.writeEvalError(w, "hand", err)
		return
	}
	writeJSON(w, http.StatusOK, handRes{Hand: hand, Category: res.Category, Score: res.Score})
}

// evaluate decodes card notation and classifies the hand. It returns the
// hand normalised to upper-case rank-then-suit notation.
func (s *Server) evaluate(tokens []string) ([]string, poker.Result, error) {
	syms, err := poker.ParseSymbols(tokens)
	if err != nil {
		return nil, poker.Result{}, err
	}
	res, err := poker.Evaluate(syms)
	if err != nil {
		return nil, poker.Result{}, err
	}
	s.metrics.ObserveHand(res)

	hand := make([]string, 0, len(syms))
	for _, sym := range syms {
		hand = append(hand, sym.Rank+sym.Suit)
	}
	return hand, res, nil
}

// writeEvalError maps core validation errors to 400 responses.
func (s *Server) writeEvalError(w http.ResponseWriter, field string, err error) {
	code := evalErrorCode(err)
	s.metrics.ObserveError(code)
	writeError(w, http.StatusBadRequest, code, field+": "+err.Error())
}

func evalErrorCode(err error) string {
	switch {
	case errors.Is(err, poker.ErrInvalidCard):
		return "invalid_card"
	case errors.Is(err, poker.ErrInvalidHandSize):
		return "invalid_hand_size"
	case errors.Is(err, poker.ErrDuplicateCard):
		return "duplicate_card"
	case errors.Is(err, poker.ErrDegenerateHand):
		return "degenerate_hand"
	default:
		return "invalid_hand"
	}
}

// splitParams flattens repeated and comma separated values.
func splitParams(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, poker.SplitHand(v)...)
	}
	return out
}

// -----------------------------------------------------------------------------
// history

type listRes struct {
	Showdowns []*store.Showdown `json:"showdowns"`
}

// handleRecent lists the newest showdowns (?limit=, default 20, max 100).
func (s *Server) handleRecent(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.Recent(r.Context(), limitParam(r))
	if err != nil {
		log.Error().Err(err).Msg("list showdowns")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	writeJSON(w, http.StatusOK, listRes{Showdowns: list})
}

func (s *Server) handleMine(w http.ResponseWriter, r *http.Request) {
	me := currentUser(r)
	if me == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "")
		return
	}
	list, err := s.store.ByUser(r.Context(), me.ID, limitParam(r))
	if err != nil {
		log.Error().Err(err).Str("user", me.ID).Msg("list user showdowns")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	writeJSON(w, http.StatusOK, listRes{Showdowns: list})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	sd, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found", "")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("get showdown")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	writeJSON(w, http.StatusOK, sd)
}

// limitParam reads ?limit=; the store clamps it.
func limitParam(r *http.Request) int {
	n, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return n
}
