package matcher

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinQueryLength is the number of runes a query needs before it is searched
	MinQueryLength = 2

	// Confidence values for each rule
	ExactConfidence        = 100.0
	PrefixConfidence       = 90.0
	SubstringBaseline      = 80.0
	SubstringDecayPerRune  = 2.0
	SubstringFloor         = 50.0
	AllWordsBase           = 40.0
	AllWordsPerToken       = 5.0
	SomeWordsBase          = 20.0
	SomeWordsSpan          = 20.0
	SubsequenceMinCoverage = 0.7
	SubsequenceScale       = 30.0
)

// Rule identifies which matching rule produced a result
type Rule string

const (
	RuleNone        Rule = ""
	RuleExact       Rule = "exact"
	RuleSubstring   Rule = "substring"
	RuleAllWords    Rule = "all_words"
	RuleSomeWords   Rule = "some_words"
	RuleSubsequence Rule = "subsequence"
)

// Result is the outcome of matching a query against a candidate text
type Result struct {
	IsMatch    bool
	Confidence float64 // 0..100
	Rule       Rule
}

// Match reports whether candidateText matches query, with a confidence in 0..100
func Match(candidateText, query string) Result {
	c := Normalize(candidateText)
	q := Normalize(query)
	if c == "" || q == "" {
		return Result{}
	}

	if c == q {
		return Result{IsMatch: true, Confidence: ExactConfidence, Rule: RuleExact}
	}

	if idx := strings.Index(c, q); idx >= 0 {
		return Result{IsMatch: true, Confidence: substringConfidence(utf8.RuneCountInString(c[:idx])), Rule: RuleSubstring}
	}

	tokens := Tokens(q)
	matched := 0
	for _, tok := range tokens {
		if strings.Contains(c, tok) {
			matched++
		}
	}
	if matched == len(tokens) {
		return Result{IsMatch: true, Confidence: AllWordsBase + AllWordsPerToken*float64(len(tokens)), Rule: RuleAllWords}
	}
	if matched > 0 {
		ratio := float64(matched) / float64(len(tokens))
		return Result{IsMatch: true, Confidence: SomeWordsBase + SomeWordsSpan*ratio, Rule: RuleSomeWords}
	}

	if coverage := subsequenceCoverage(c, q); coverage >= SubsequenceMinCoverage {
		return Result{IsMatch: true, Confidence: coverage * SubsequenceScale, Rule: RuleSubsequence}
	}

	return Result{}
}

// Confidence is shorthand for Match(candidateText, query).Confidence
func Confidence(candidateText, query string) float64 {
	return Match(candidateText, query).Confidence
}

// substringConfidence decays linearly with the match offset and floors at 50
func substringConfidence(pos int) float64 {
	if pos == 0 {
		return PrefixConfidence
	}
	return max(SubstringFloor, SubstringBaseline-SubstringDecayPerRune*float64(pos))
}

// subsequenceCoverage greedily walks candidate and query, advancing the query
// pointer on each equal rune, and returns the fraction of query runes matched
func subsequenceCoverage(candidate, query string) float64 {
	q := []rune(query)
	if len(q) == 0 {
		return 0
	}

	qi := 0
	for _, r := range candidate {
		if qi == len(q) {
			break
		}
		if r == q[qi] {
			qi++
		}
	}
	return float64(qi) / float64(len(q))
}
