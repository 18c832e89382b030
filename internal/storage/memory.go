package storage

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-process Storage used when no database is configured.
// Nothing survives a restart.
type MemoryStore struct {
	mu         sync.RWMutex
	values     map[string]string
	selections []Selection
	closed     bool
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", ErrClosed
	}
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryStore) Put(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	delete(m.values, key)
	return nil
}

func (m *MemoryStore) RecordSelection(ctx context.Context, sel *Selection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if sel.SelectedAt.IsZero() {
		sel.SelectedAt = time.Now()
	}
	sel.ID = int64(len(m.selections) + 1)
	m.selections = append(m.selections, *sel)
	return nil
}

func (m *MemoryStore) TopSelections(ctx context.Context, limit int) ([]SelectionCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}

	counts := make(map[string]*SelectionCount)
	var order []string
	for _, s := range m.selections {
		c, ok := counts[s.Title]
		if !ok {
			c = &SelectionCount{Title: s.Title, URL: s.URL}
			counts[s.Title] = c
			order = append(order, s.Title)
		}
		c.Count++
	}

	out := make([]SelectionCount, 0, len(order))
	for _, title := range order {
		out = append(out, *counts[title])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemoryStore) GetStatus(ctx context.Context) (*Status, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrClosed
	}
	return &Status{
		Backend:        "memory",
		Keys:           len(m.values),
		SelectionCount: len(m.selections),
	}, nil
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
