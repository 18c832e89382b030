package searcher

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/catalog"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/matcher"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/pkg/types"
)

// DefaultCacheSize is the number of distinct queries memoized by default
const DefaultCacheSize = 256

// SearchState tells the UI which state to render
type SearchState string

const (
	StateKeepTyping SearchState = "keep_typing" // Query shorter than the minimum
	StateNoResults  SearchState = "no_results"  // Searched, nothing matched
	StateResults    SearchState = "results"
)

// SearchRequest contains parameters for a search operation
type SearchRequest struct {
	Query    string
	Limit    int  // 1..MaxResults, defaults to MaxResults
	UseCache bool // Whether to use the query memo
}

// SearchResponse contains search results and metadata
type SearchResponse struct {
	Query        string
	Results      []types.SearchResult
	TotalResults int
	Candidates   int // Candidates produced before deduplication
	State        SearchState
	Duration     time.Duration
	CacheHit     bool
}

// Searcher runs the rule strategies over a catalog and ranks the output
type Searcher struct {
	catalog    *catalog.Catalog
	strategies []Strategy
	cache      *lru.Cache[[32]byte, *SearchResponse]
	cacheMu    sync.RWMutex
}

// Option configures a Searcher
type Option func(*Searcher)

// WithStrategies replaces the default rule categories
func WithStrategies(strategies ...Strategy) Option {
	return func(s *Searcher) {
		s.strategies = strategies
	}
}

// WithCacheSize sets the number of memoized queries
func WithCacheSize(size int) Option {
	return func(s *Searcher) {
		if size <= 0 {
			size = DefaultCacheSize
		}
		cache, err := lru.New[[32]byte, *SearchResponse](size)
		if err == nil {
			s.cache = cache
		}
	}
}

// NewSearcher creates a new Searcher over cat
func NewSearcher(cat *catalog.Catalog, opts ...Option) *Searcher {
	cache, err := lru.New[[32]byte, *SearchResponse](DefaultCacheSize)
	if err != nil {
		// This should never happen with valid size parameter
		panic(fmt.Sprintf("failed to create LRU cache: %v", err))
	}

	s := &Searcher{
		catalog:    cat,
		strategies: DefaultStrategies(),
		cache:      cache,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the catalog the searcher runs over
func (s *Searcher) Catalog() *catalog.Catalog {
	return s.catalog
}

// Search evaluates a query. It is defined for every string; the only error
// is a cancelled or expired context.
func (s *Searcher) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	startTime := time.Now()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.catalog == nil {
		return nil, fmt.Errorf("catalog not initialized")
	}

	s.validateRequest(&req)

	if !matcher.IsSearchable(req.Query) {
		return &SearchResponse{
			Query:    req.Query,
			Results:  []types.SearchResult{},
			State:    StateKeepTyping,
			Duration: time.Since(startTime),
		}, nil
	}

	if req.UseCache {
		if cached, ok := s.checkCache(req); ok {
			cached.CacheHit = true
			cached.Duration = time.Since(startTime)
			return cached, nil
		}
	}

	candidates := s.Evaluate(req.Query)
	results := Rank(candidates, req.Limit)

	response := &SearchResponse{
		Query:        req.Query,
		Results:      results,
		TotalResults: len(results),
		Candidates:   len(candidates),
		State:        StateResults,
	}
	if len(results) == 0 {
		response.State = StateNoResults
	}

	if req.UseCache {
		s.storeInCache(req, response)
	}

	response.Duration = time.Since(startTime)
	return response, nil
}

// Evaluate runs every strategy in priority order and concatenates their
// candidates. Scores accumulate across categories; nothing short-circuits.
func (s *Searcher) Evaluate(query string) []types.SearchCandidate {
	var candidates []types.SearchCandidate
	for _, strategy := range s.strategies {
		in := Input{
			Query:    query,
			Catalog:  s.catalog,
			Produced: len(candidates),
		}
		candidates = append(candidates, strategy.Candidates(in)...)
	}
	return candidates
}

// validateRequest applies defaults and bounds
func (s *Searcher) validateRequest(req *SearchRequest) {
	if req.Limit <= 0 || req.Limit > MaxResults {
		req.Limit = MaxResults
	}
}

// checkCache looks up a memoized response
func (s *Searcher) checkCache(req SearchRequest) (*SearchResponse, bool) {
	hash := computeQueryHash(req)

	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()

	entry, found := s.cache.Get(hash)
	if !found {
		return nil, false
	}
	return copySearchResponse(entry), true
}

// storeInCache memoizes a response
func (s *Searcher) storeInCache(req SearchRequest, response *SearchResponse) {
	hash := computeQueryHash(req)

	s.cacheMu.Lock()
	s.cache.Add(hash, copySearchResponse(response))
	s.cacheMu.Unlock()
}

// InvalidateCache drops every memoized query
func (s *Searcher) InvalidateCache() {
	s.cacheMu.Lock()
	s.cache.Purge()
	s.cacheMu.Unlock()
}

// CacheLen returns the number of memoized queries
func (s *Searcher) CacheLen() int {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	return s.cache.Len()
}

// copySearchResponse creates a deep copy of a SearchResponse
func copySearchResponse(src *SearchResponse) *SearchResponse {
	if src == nil {
		return nil
	}
	dst := *src
	// SearchResult holds only value fields, so copying the slice is a deep copy
	dst.Results = make([]types.SearchResult, len(src.Results))
	copy(dst.Results, src.Results)
	return &dst
}

// computeQueryHash computes the memo key for a request
func computeQueryHash(req SearchRequest) [32]byte {
	return sha256.Sum256([]byte(req.Query + "|" + strconv.Itoa(req.Limit)))
}
