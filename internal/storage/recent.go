package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
)

const (
	// RecentSearchesKey is the storage key holding the recent searches list
	RecentSearchesKey = "kinetikare-recent-searches"
	// MaxRecentSearches caps the remembered list
	MaxRecentSearches = 5
)

// RecentSearches keeps the most recent selected queries, newest first.
// Persistence is best effort: storage failures are logged and the
// in-memory list stays authoritative.
type RecentSearches struct {
	mu     sync.Mutex
	kv     KV
	items  []string
	logger *log.Logger
}

// NewRecentSearches creates a list backed by kv. A nil logger uses the
// standard logger.
func NewRecentSearches(kv KV, logger *log.Logger) *RecentSearches {
	if logger == nil {
		logger = log.Default()
	}
	return &RecentSearches{kv: kv, logger: logger}
}

// Load replaces the in-memory list with the persisted one. Missing or
// corrupt data yields an empty list.
func (r *RecentSearches) Load(ctx context.Context) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
	if r.kv == nil {
		return nil
	}

	raw, err := r.kv.Get(ctx, RecentSearchesKey)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		r.logger.Printf("recent searches: load failed: %v", err)
		return nil
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		r.logger.Printf("recent searches: discarding corrupt value: %v", err)
		return nil
	}

	for _, q := range stored {
		q = strings.TrimSpace(q)
		if q == "" || contains(r.items, q) {
			continue
		}
		r.items = append(r.items, q)
		if len(r.items) == MaxRecentSearches {
			break
		}
	}
	return r.copyItems()
}

// List returns a copy of the current list
func (r *RecentSearches) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.copyItems()
}

// Add moves query to the front, dropping older duplicates and anything past
// MaxRecentSearches. Blank queries are ignored.
func (r *RecentSearches) Add(ctx context.Context, query string) []string {
	query = strings.TrimSpace(query)

	r.mu.Lock()
	defer r.mu.Unlock()

	if query == "" {
		return r.copyItems()
	}

	next := make([]string, 0, MaxRecentSearches)
	next = append(next, query)
	for _, q := range r.items {
		if q == query {
			continue
		}
		if len(next) == MaxRecentSearches {
			break
		}
		next = append(next, q)
	}
	r.items = next

	r.persist(ctx)
	return r.copyItems()
}

// Clear empties the list and removes the persisted value
func (r *RecentSearches) Clear(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
	if r.kv == nil {
		return
	}
	if err := r.kv.Delete(ctx, RecentSearchesKey); err != nil {
		r.logger.Printf("recent searches: clear failed: %v", err)
	}
}

func (r *RecentSearches) persist(ctx context.Context) {
	if r.kv == nil {
		return
	}
	data, err := json.Marshal(r.items)
	if err != nil {
		r.logger.Printf("recent searches: encode failed: %v", err)
		return
	}
	if err := r.kv.Put(ctx, RecentSearchesKey, string(data)); err != nil {
		r.logger.Printf("recent searches: save failed: %v", err)
	}
}

func (r *RecentSearches) copyItems() []string {
	out := make([]string, len(r.items))
	copy(out, r.items)
	return out
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
