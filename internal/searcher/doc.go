// Package searcher implements the site's query relevance engine.
//
// A query is run through an ordered list of independent strategies, each a
// rule category that emits zero or more scored candidates:
//
//	emergency keywords        1000
//	booking keywords           500
//	symptom mappings           800 / 400 / 300 / 200 by urgency
//	body parts                 350, 340, 330 for real conditions, 280 generic
//	activities                 320 overview, 300 - 5*rank per condition
//	treatment modalities       250
//	insurance keywords         450
//	location and hours         400
//	fallback                   confidence + 100, only below 3 candidates
//
// Candidates from every strategy are concatenated, deduplicated by title
// (first wins), stably sorted by score and cut to eight.
//
// # Basic Usage
//
//	cat, _ := catalog.Default()
//	s := searcher.NewSearcher(cat)
//
//	resp, err := s.Search(ctx, searcher.SearchRequest{Query: "knee pain"})
//	for _, r := range resp.Results {
//	    fmt.Printf("[%d] %s (%.0f) -> %s\n", r.Rank, r.Title, r.Score, r.URL)
//	}
//
// Queries shorter than two characters are not evaluated; the response state
// is StateKeepTyping. A searched query with no matches has StateNoResults.
//
// # Caching
//
// With UseCache set, responses are memoized per distinct query and limit in
// an LRU. Cached responses are deep-copied in and out.
package searcher
