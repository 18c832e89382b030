package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		candidate  string
		query      string
		wantMatch  bool
		wantRule   Rule
		confidence float64
	}{
		{"exact", "Knee Pain", "knee pain", true, RuleExact, 100},
		{"exact after trim", "Knee Pain", "  KNEE PAIN ", true, RuleExact, 100},
		{"prefix", "Knee Pain", "knee", true, RuleSubstring, 90},
		{"mid string", "Runner's Knee", "knee", true, RuleSubstring, 62},
		{"far offset floors at 50", "Patellofemoral Pain Syndrome", "syndrome", true, RuleSubstring, 50},
		{"all words", "Lower Back Pain", "back lower", true, RuleAllWords, 50},
		{"all words three tokens", "Lower Back Pain", "pain back lower", true, RuleAllWords, 55},
		{"some words", "Lower Back Pain", "back neck", true, RuleSomeWords, 30},
		{"some words one of four", "Lower Back Pain", "pain x y z", true, RuleSomeWords, 25},
		{"subsequence typo", "sciatica", "sciatika", true, RuleSubsequence, 22.5},
		{"subsequence below coverage", "sciatica", "sxyzq", false, RuleNone, 0},
		{"no match", "Tennis Elbow", "xk", false, RuleNone, 0},
		{"empty candidate", "", "knee", false, RuleNone, 0},
		{"empty query", "Knee Pain", "", false, RuleNone, 0},
		{"whitespace query", "Knee Pain", "   ", false, RuleNone, 0},
		{"unicode offset in runes", "Épaule gelée", "gelée", true, RuleSubstring, 66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.candidate, tt.query)
			assert.Equal(t, tt.wantMatch, got.IsMatch)
			assert.Equal(t, tt.wantRule, got.Rule)
			assert.InDelta(t, tt.confidence, got.Confidence, 1e-9)
		})
	}
}

func TestMatch_PrefixNeverScoresLower(t *testing.T) {
	queries := []string{"knee", "back", "shoulder pain", "a"}
	for _, q := range queries {
		prefixed := Confidence(q+" rehab", q)
		for _, lead := range []string{"x ", "sore ", "persistent long standing "} {
			offset := Confidence(lead+q+" rehab", q)
			assert.GreaterOrEqual(t, prefixed, offset, "query %q lead %q", q, lead)
		}
	}
}

func TestMatch_Total(t *testing.T) {
	inputs := []string{"", " ", "a", "日本語", "!!!???", "\x00\xff", "knee\tpain\n", "🦵 pain"}
	for _, c := range inputs {
		for _, q := range inputs {
			assert.NotPanics(t, func() {
				r := Match(c, q)
				assert.GreaterOrEqual(t, r.Confidence, 0.0)
				assert.LessOrEqual(t, r.Confidence, 100.0)
			})
		}
	}
}

func TestIsSearchable(t *testing.T) {
	assert.False(t, IsSearchable(""))
	assert.False(t, IsSearchable("a"))
	assert.False(t, IsSearchable("  a  "))
	assert.True(t, IsSearchable("ab"))
	assert.True(t, IsSearchable("膝痛"))
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		text   string
		phrase string
		want   bool
	}{
		{"my knee hurts", "knee", true},
		{"kneeling", "knee", false},
		{"lower back pain", "lower back", true},
		{"back, lower", "lower back", false},
		{"does my knee?", "knee", true},
		{"knee", "", false},
		{"", "knee", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContainsWord(tt.text, tt.phrase), "%q in %q", tt.phrase, tt.text)
	}
}

func TestContainsAny(t *testing.T) {
	assert.True(t, ContainsAny("I need to BOOK a visit", []string{"appointment", "book"}))
	assert.False(t, ContainsAny("knee pain", []string{"appointment", "book"}))
	assert.False(t, ContainsAny("", []string{"book"}))
	assert.False(t, ContainsAny("knee", []string{"", "  "}))
}
