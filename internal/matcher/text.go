package matcher

import (
	"strings"
	"unicode/utf8"
)

// Normalize lower-cases and trims s
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Tokens splits a query on whitespace
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}

// IsSearchable reports whether a query is long enough to be evaluated
func IsSearchable(query string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(query)) >= MinQueryLength
}

// ContainsAny reports whether text contains any of the keywords as a substring
func ContainsAny(text string, keywords []string) bool {
	t := Normalize(text)
	if t == "" {
		return false
	}
	for _, kw := range keywords {
		k := Normalize(kw)
		if k != "" && strings.Contains(t, k) {
			return true
		}
	}
	return false
}

// ContainsWord reports whether phrase occurs in text on word boundaries.
// "knee" is found in "my knee hurts" but not in "kneeling".
func ContainsWord(text, phrase string) bool {
	words := Tokens(text)
	target := Tokens(phrase)
	if len(target) == 0 || len(target) > len(words) {
		return false
	}

	for i := 0; i+len(target) <= len(words); i++ {
		found := true
		for j, w := range target {
			if trimPunct(words[i+j]) != w {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}
	return false
}

// ContainsAnyWord reports whether any phrase occurs in text on word boundaries
func ContainsAnyWord(text string, phrases []string) bool {
	for _, p := range phrases {
		if ContainsWord(text, p) {
			return true
		}
	}
	return false
}

func trimPunct(s string) string {
	return strings.Trim(s, ".,;:!?'\"()[]{}")
}
