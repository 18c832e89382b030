package types

import "errors"

// Domain errors for type validation
var (
	// Candidate errors
	ErrEmptyTitle    = errors.New("title cannot be empty")
	ErrNegativeScore = errors.New("score must be >= 0")
	ErrEmptyURL      = errors.New("url cannot be empty")
	ErrInvalidKind   = errors.New("invalid record kind")

	// Search result errors
	ErrInvalidRank = errors.New("rank must be >= 1")
)
