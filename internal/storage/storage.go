package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
	// ErrEmptyKey is returned when a key-value operation has no key
	ErrEmptyKey = errors.New("key cannot be empty")
	// ErrClosed is returned when using a store after Close
	ErrClosed = errors.New("storage closed")
)

// KV is the client-local key-value store the site persists small state in
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Storage defines the persistence the search server needs
type Storage interface {
	KV

	// Selection log operations
	RecordSelection(ctx context.Context, sel *Selection) error
	TopSelections(ctx context.Context, limit int) ([]SelectionCount, error)

	// Status operations
	GetStatus(ctx context.Context) (*Status, error)

	// Database operations
	Close() error
}

// Selection is one result chosen from the search modal
type Selection struct {
	ID         int64
	Query      string
	Title      string
	URL        string
	Action     string
	SelectedAt time.Time
}

// SelectionCount aggregates selections of one result title
type SelectionCount struct {
	Title string
	URL   string
	Count int
}

// Status contains statistics about the store
type Status struct {
	Backend        string // "sqlite" or "memory"
	Keys           int
	SelectionCount int
	SizeMB         float64
	SchemaVersion  string
}
