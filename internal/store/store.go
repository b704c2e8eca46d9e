// internal/store/store.go
//
// Persistence of showdown records (two hands compared, and who won).
// Implementations:
//   - memory.go: map + RWMutex, lost on restart (dev/testing).
//   - sqlite.go: SQLite-backed, used by the server by default.
//
// Records are write-once; there is no update path.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/pokerhands/internal/poker"
)

// ErrNotFound is returned by Get when no record has the requested ID.
var ErrNotFound = errors.New("not found")

// DefaultLimit and MaxLimit bound list queries.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Showdown is one comparison of two hands.
type Showdown struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId,omitempty"` // empty for guests
	Player1Hand []string     `json:"player1Hand"`
	Player2Hand []string     `json:"player2Hand"`
	Player1     poker.Result `json:"player1"`
	Player2     poker.Result `json:"player2"`
	Winner      poker.Winner `json:"winner"`
	Message     string       `json:"message"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// NewShowdown builds a record from an outcome, assigning ID and timestamp.
func NewShowdown(userID string, hand1, hand2 []string, o poker.Outcome) *Showdown {
	return &Showdown{
		ID:          uuid.NewString(),
		UserID:      userID,
		Player1Hand: hand1,
		Player2Hand: hand2,
		Player1:     o.Player1,
		Player2:     o.Player2,
		Winner:      o.Winner,
		Message:     o.Narrate(),
		CreatedAt:   time.Now().UTC(),
	}
}

// Store defines the persistence interface for showdown records.
type Store interface {
	// Save persists a new record.
	Save(ctx context.Context, s *Showdown) error

	// Get retrieves a record by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Showdown, error)

	// Recent lists the newest records first.
	Recent(ctx context.Context, limit int) ([]*Showdown, error)

	// ByUser lists a user's records, newest first.
	ByUser(ctx context.Context, userID string, limit int) ([]*Showdown, error)
}

// ClampLimit applies DefaultLimit to non-positive values and caps at MaxLimit.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}
	return limit
}
