// Package store provides Submission persistence behind the core.Store
// interface: an in-memory ordered collection for tests and single-node use,
// and a PostgreSQL implementation for durable deployments.
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/aswanig/labportal/internal/core"
)

// Memory is an in-memory, mutex-guarded submission store. IDs come from a
// counter incremented under the write lock, so assignment stays atomic under
// concurrent appends. Records are held in insertion order and handed out as
// clones; the only way to mutate a stored record is through Update.
type Memory struct {
	mu     sync.RWMutex
	subs   []*core.Submission
	lastID int64
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Append assigns the next submission ID and stores a copy of the record.
func (m *Memory) Append(ctx context.Context, sub *core.Submission) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	cp := sub.Clone()
	cp.ID = m.lastID
	m.subs = append(m.subs, cp)
	return cp.ID, nil
}

// Get returns a copy of the submission with the given ID.
func (m *Memory) Get(ctx context.Context, id int64) (*core.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if sub := m.find(id); sub != nil {
		return sub.Clone(), nil
	}
	return nil, fmt.Errorf("submission %d: %w", id, core.ErrNotFound)
}

// Update applies mutate under the write lock. The mutation runs against a
// clone; only if mutate succeeds does the clone replace the stored record,
// so a failed transition leaves the store unchanged.
func (m *Memory) Update(ctx context.Context, id int64, mutate func(*core.Submission) error) (*core.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subs {
		if sub.ID != id {
			continue
		}
		cp := sub.Clone()
		if err := mutate(cp); err != nil {
			return nil, err
		}
		m.subs[i] = cp
		return cp.Clone(), nil
	}
	return nil, fmt.Errorf("submission %d: %w", id, core.ErrNotFound)
}

// List returns copies of all submissions ordered by ascending ID.
func (m *Memory) List(ctx context.Context) ([]*core.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*core.Submission, len(m.subs))
	for i, sub := range m.subs {
		result[i] = sub.Clone()
	}
	return result, nil
}

// Len returns the number of stored submissions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subs)
}

// find returns the stored record with the given ID, or nil. Caller holds a
// lock. Records are in insertion order, so IDs are ascending.
func (m *Memory) find(id int64) *core.Submission {
	for _, sub := range m.subs {
		if sub.ID == id {
			return sub
		}
	}
	return nil
}

var _ core.Store = (*Memory)(nil)
