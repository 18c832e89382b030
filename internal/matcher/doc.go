// Package matcher decides whether a candidate text matches a free-text query
// and how confident the match is.
//
// Rules are tried in order and the first applicable one wins:
//
//	exact (case-insensitive)         100
//	substring at position 0           90
//	substring at position p > 0       max(50, 80 - 2p)
//	every query word present          40 + 5 * words
//	some query words present          20 + 20 * matched/words
//	character subsequence >= 70%      coverage * 30
//
// Both inputs are lower-cased and trimmed before matching. Positions and
// coverage are counted in runes, so non-ASCII input behaves the same way as
// ASCII input.
//
// # Basic Usage
//
//	r := matcher.Match("Plantar Fasciitis", "plantar")
//	r.IsMatch     // true
//	r.Confidence  // 90
//
// The subsequence rule is a cheap typo catcher, not an edit distance:
//
//	matcher.Match("sciatica", "sciatika").Confidence  // 22.5
package matcher
