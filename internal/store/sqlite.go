package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/robalobadob/pokerhands/internal/poker"
)

// timeLayout is fixed-width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLite persists showdowns in the showdowns table created by Migrate.
type SQLite struct{ db *sql.DB }

// NewSQLiteStore wraps an opened, migrated database.
func NewSQLiteStore(db *sql.DB) *SQLite { return &SQLite{db: db} }

const showdownColumns = `id, COALESCE(user_id,''), player1_hand, player2_hand,
	player1_category, player1_score, player2_category, player2_score,
	winner, message, created_at`

func (s *SQLite) Save(ctx context.Context, sd *Showdown) error {
	var userID any
	if sd.UserID != "" {
		userID = sd.UserID
	}
	_, err := s.db.ExecContext(ctx, `
        INSERT INTO showdowns
            (id, user_id, player1_hand, player2_hand,
             player1_category, player1_score, player2_category, player2_score,
             winner, message, created_at)
        VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		sd.ID, userID, strings.Join(sd.Player1Hand, ","), strings.Join(sd.Player2Hand, ","),
		sd.Player1.Category.String(), sd.Player1.Score, sd.Player2.Category.String(), sd.Player2.Score,
		int(sd.Winner), sd.Message, sd.CreatedAt.UTC().Format(timeLayout),
	)
	return err
}

func (s *SQLite) Get(ctx context.Context, id string) (*Showdown, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+showdownColumns+` FROM showdowns WHERE id=?`, id)
	sd, err := scanShowdown(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sd, err
}

func (s *SQLite) Recent(ctx context.Context, limit int) ([]*Showdown, error) {
	return s.query(ctx, `SELECT `+showdownColumns+` FROM showdowns
        ORDER BY created_at DESC, rowid DESC LIMIT ?`, ClampLimit(limit))
}

func (s *SQLite) ByUser(ctx context.Context, userID string, limit int) ([]*Showdown, error) {
	return s.query(ctx, `SELECT `+showdownColumns+` FROM showdowns WHERE user_id=?
        ORDER BY created_at DESC, rowid DESC LIMIT ?`, userID, ClampLimit(limit))
}

func (s *SQLite) query(ctx context.Context, q string, args ...any) ([]*Showdown, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Showdown{}
	for rows.Next() {
		sd, err := scanShowdown(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sd)
	}
	return out, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanShowdown(row scanner) (*Showdown, error) {
	var (
		sd           Showdown
		hand1, hand2 string
		cat1, cat2   string
		winner       int
		created      string
	)
	if err := row.Scan(&sd.ID, &sd.UserID, &hand1, &hand2,
		&cat1, &sd.Player1.Score, &cat2, &sd.Player2.Score,
		&winner, &sd.Message, &created); err != nil {
		return nil, err
	}
	if err := sd.Player1.Category.UnmarshalText([]byte(cat1)); err != nil {
		return nil, err
	}
	if err := sd.Player2.Category.UnmarshalText([]byte(cat2)); err != nil {
		return nil, err
	}
	sd.Player1Hand = splitHand(hand1)
	sd.Player2Hand = splitHand(hand2)
	sd.Winner = poker.Winner(winner)
	sd.CreatedAt, _ = time.Parse(timeLayout, created)
	return &sd, nil
}

func splitHand(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
