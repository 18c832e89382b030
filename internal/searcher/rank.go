package searcher

import (
	"sort"

	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/pkg/types"
)

// Rank merges candidates into the final result list: duplicates by exact
// title are dropped keeping the first occurrence, the rest are stably sorted
// by score (descending) and truncated to limit.
func Rank(candidates []types.SearchCandidate, limit int) []types.SearchResult {
	if limit <= 0 || limit > MaxResults {
		limit = MaxResults
	}

	seen := make(map[string]bool, len(candidates))
	unique := make([]types.SearchCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Title == "" || seen[c.Title] {
			continue
		}
		seen[c.Title] = true
		if c.Score < 0 {
			c.Score = 0
		}
		unique = append(unique, c)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Score > unique[j].Score
	})

	if len(unique) > limit {
		unique = unique[:limit]
	}

	results := make([]types.SearchResult, len(unique))
	for i, c := range unique {
		results[i] = types.SearchResult{
			SearchCandidate: c,
			Rank:            i + 1,
			Action:          types.ClassifyURL(c.URL),
		}
	}
	return results
}
