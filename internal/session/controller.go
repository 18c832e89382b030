package session

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/matcher"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/searcher"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/storage"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/pkg/types"
)

var (
	// ErrIndexOutOfRange is returned when selecting a row that doesn't exist
	ErrIndexOutOfRange = errors.New("result index out of range")
	// ErrClosed is returned when selecting while the modal is closed
	ErrClosed = errors.New("search modal is closed")
)

// State of the search modal
type State int

const (
	StateClosed State = iota
	StateOpenEmpty
	StateOpenSearching
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpenEmpty:
		return "open_empty"
	case StateOpenSearching:
		return "open_searching"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// SelectionRecorder logs chosen results
type SelectionRecorder interface {
	RecordSelection(ctx context.Context, sel *storage.Selection) error
}

// Outcome describes a completed selection
type Outcome struct {
	Query          string
	Result         types.SearchResult
	Navigation     types.Navigation
	RecentSearches []string
}

// Controller is the keyboard and selection state machine of the search modal
type Controller struct {
	searcher *searcher.Searcher
	recent   *storage.RecentSearches
	recorder SelectionRecorder
	logger   *log.Logger

	state    State
	query    string
	results  []types.SearchResult
	selected int
}

// Option configures a Controller
type Option func(*Controller)

// WithSelectionRecorder logs every selection to rec
func WithSelectionRecorder(rec SelectionRecorder) Option {
	return func(c *Controller) {
		c.recorder = rec
	}
}

// WithLogger sets the logger used for best-effort failures
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewController creates a closed controller. recent may be nil to skip
// remembering queries.
func NewController(s *searcher.Searcher, recent *storage.RecentSearches, opts ...Option) *Controller {
	c := &Controller{
		searcher: s,
		recent:   recent,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open shows the modal with an empty query
func (c *Controller) Open() {
	c.reset()
	c.state = StateOpenEmpty
}

// SetQuery replaces the query and recomputes the results. Opening is
// implied.
func (c *Controller) SetQuery(ctx context.Context, query string) error {
	resp, err := c.searcher.Search(ctx, searcher.SearchRequest{Query: query, UseCache: true})
	if err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}

	c.query = query
	c.results = resp.Results
	c.selected = 0
	if matcher.IsSearchable(query) {
		c.state = StateOpenSearching
	} else {
		c.state = StateOpenEmpty
	}
	return nil
}

// MoveDown highlights the next row, stopping at the last one
func (c *Controller) MoveDown() {
	if c.selected < len(c.results)-1 {
		c.selected++
	}
}

// MoveUp highlights the previous row, stopping at the first one
func (c *Controller) MoveUp() {
	if c.selected > 0 {
		c.selected--
	}
}

// Enter selects the highlighted row. It returns nil without error when
// there is nothing to select.
func (c *Controller) Enter(ctx context.Context) (*Outcome, error) {
	if c.state == StateClosed || len(c.results) == 0 {
		return nil, nil
	}
	return c.SelectAt(ctx, c.selected)
}

// SelectAt selects the row at index i
func (c *Controller) SelectAt(ctx context.Context, i int) (*Outcome, error) {
	if c.state == StateClosed {
		return nil, ErrClosed
	}
	if i < 0 || i >= len(c.results) {
		return nil, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.results))
	}

	result := c.results[i]
	outcome := &Outcome{
		Query:      c.query,
		Result:     result,
		Navigation: result.Navigation(),
	}

	if c.recent != nil {
		outcome.RecentSearches = c.recent.Add(ctx, c.query)
	}

	if c.recorder != nil {
		sel := &storage.Selection{
			Query:  c.query,
			Title:  result.Title,
			URL:    result.URL,
			Action: string(result.Action),
		}
		if err := c.recorder.RecordSelection(ctx, sel); err != nil {
			c.logger.Printf("session: record selection %q: %v", result.Title, err)
		}
	}

	c.reset()
	return outcome, nil
}

// Escape closes the modal and clears the query
func (c *Controller) Escape() {
	c.reset()
}

// Dismiss handles a backdrop click, same as Escape
func (c *Controller) Dismiss() {
	c.reset()
}

func (c *Controller) reset() {
	c.state = StateClosed
	c.query = ""
	c.results = nil
	c.selected = 0
}

// State returns the current modal state
func (c *Controller) State() State { return c.state }

// Query returns the current query text
func (c *Controller) Query() string { return c.query }

// SelectedIndex returns the highlighted row
func (c *Controller) SelectedIndex() int { return c.selected }

// Results returns a copy of the current result list
func (c *Controller) Results() []types.SearchResult {
	out := make([]types.SearchResult, len(c.results))
	copy(out, c.results)
	return out
}
