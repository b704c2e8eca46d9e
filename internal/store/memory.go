// internal/store/memory.go
//
// In-memory implementation of Store.
// Characteristics:
//   - Keeps records in insertion order plus an index by ID.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.

package store

import (
	"context"
	"sync"
)

// memory is a slice + map backed Store.
type memory struct {
	mu    sync.RWMutex         // guards fields below
	order []*Showdown          // oldest first
	byID  map[string]*Showdown // keyed by Showdown.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{byID: make(map[string]*Showdown)}
}

// Save appends the record; saving an existing ID replaces its entry.
func (m *memory) Save(ctx context.Context, s *Showdown) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *s
	if _, ok := m.byID[s.ID]; ok {
		for i, o := range m.order {
			if o.ID == s.ID {
				m.order[i] = &cp
			}
		}
	} else {
		m.order = append(m.order, &cp)
	}
	m.byID[s.ID] = &cp
	return nil
}

// Get looks up a record by ID and returns a copy.
func (m *memory) Get(ctx context.Context, id string) (*Showdown, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.byID[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Recent(ctx context.Context, limit int) ([]*Showdown, error) {
	return m.newest(ClampLimit(limit), func(*Showdown) bool { return true }), nil
}

func (m *memory) ByUser(ctx context.Context, userID string, limit int) ([]*Showdown, error) {
	return m.newest(ClampLimit(limit), func(s *Showdown) bool { return s.UserID == userID }), nil
}

// newest walks from the end so the result is newest first.
func (m *memory) newest(limit int, keep func(*Showdown) bool) []*Showdown {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Showdown, 0, limit)
	for i := len(m.order) - 1; i >= 0 && len(out) < limit; i-- {
		if s := m.order[i]; keep(s) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out
}
