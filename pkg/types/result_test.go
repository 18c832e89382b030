package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchCandidateValidate(t *testing.T) {
	valid := SearchCandidate{
		Title: "Sciatica",
		Kind:  KindCondition,
		URL:   "/conditions/sciatica",
		Score: 300,
	}

	tests := []struct {
		name    string
		mutate  func(c *SearchCandidate)
		wantErr error
	}{
		{"valid", func(c *SearchCandidate) {}, nil},
		{"empty title", func(c *SearchCandidate) { c.Title = "" }, ErrEmptyTitle},
		{"empty url", func(c *SearchCandidate) { c.URL = "" }, ErrEmptyURL},
		{"negative score", func(c *SearchCandidate) { c.Score = -1 }, ErrNegativeScore},
		{"unknown kind", func(c *SearchCandidate) { c.Kind = "video" }, ErrInvalidKind},
		{"zero score allowed", func(c *SearchCandidate) { c.Score = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestSearchResultValidate(t *testing.T) {
	r := SearchResult{
		SearchCandidate: SearchCandidate{Title: "Book an Appointment", Kind: KindService, URL: "/book", Score: 500},
	}
	assert.ErrorIs(t, r.Validate(), ErrInvalidRank)

	r.Rank = 1
	assert.NoError(t, r.Validate())
}

func TestClassifyURL(t *testing.T) {
	tests := []struct {
		url  string
		want ActionKind
	}{
		{"tel:+15195551234", ActionPhone},
		{"TEL:911", ActionPhone},
		{"https://kinetikare.janeapp.com/#/staff_member/1", ActionBooking},
		{"https://www.example.org/guide", ActionExternal},
		{"http://maps.example.com/?q=clinic", ActionExternal},
		{"/conditions/sciatica", ActionInternal},
		{"/about#location", ActionInternal},
		{"", ActionInternal},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyURL(tt.url))
		})
	}
}

func TestNavigationFor(t *testing.T) {
	nav := NavigationFor("https://kinetikare.janeapp.com/")
	assert.Equal(t, ActionBooking, nav.Action)
	assert.True(t, nav.NewContext)

	nav = NavigationFor("tel:+15195551234")
	assert.Equal(t, ActionPhone, nav.Action)
	assert.False(t, nav.NewContext)

	nav = NavigationFor("/faq#insurance")
	assert.Equal(t, ActionInternal, nav.Action)
	assert.False(t, nav.NewContext)
}
