package types

// Kind is the source-type tag of a searchable record, used for default iconography
type Kind string

const (
	KindCondition Kind = "condition"
	KindFAQ       Kind = "faq"
	KindService   Kind = "service"
	KindPage      Kind = "page"
)

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	switch k {
	case KindCondition, KindFAQ, KindService, KindPage:
		return true
	}
	return false
}

// Source names the rule category that produced a candidate
type Source string

const (
	SourceEmergency Source = "emergency"
	SourceBooking   Source = "booking"
	SourceSymptom   Source = "symptom"
	SourceBodyPart  Source = "body_part"
	SourceActivity  Source = "activity"
	SourceTreatment Source = "treatment"
	SourceInsurance Source = "insurance"
	SourceLocation  Source = "location"
	SourceFallback  Source = "fallback"
)

// SearchCandidate is a record emitted by one scoring rule, carrying a
// provisional score before deduplication and ranking
type SearchCandidate struct {
	// Identification
	Title  string // Display name and deduplication key
	Kind   Kind
	Source Source

	// Display
	Description string
	Category    string // Badge label only
	URL         string // Internal path, external URL or tel: URI

	// Scoring
	Score float64
}

// Validate checks if the candidate is valid
func (c *SearchCandidate) Validate() error {
	if c.Title == "" {
		return ErrEmptyTitle
	}
	if c.URL == "" {
		return ErrEmptyURL
	}
	if c.Score < 0 {
		return ErrNegativeScore
	}
	if !c.Kind.Valid() {
		return ErrInvalidKind
	}
	return nil
}

// SearchResult is a ranked candidate ready for display
type SearchResult struct {
	SearchCandidate

	Rank   int // Position in result set (1-based)
	Action ActionKind
}

// Validate checks if the search result is valid
func (sr *SearchResult) Validate() error {
	if sr.Rank < 1 {
		return ErrInvalidRank
	}
	return sr.SearchCandidate.Validate()
}

// Navigation returns the navigation request for selecting this result
func (sr *SearchResult) Navigation() Navigation {
	return NavigationFor(sr.URL)
}
