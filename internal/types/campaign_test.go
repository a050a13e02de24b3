package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMatchType(t *testing.T) {
	tests := []struct {
		input string
		want  MatchType
		ok    bool
	}{
		{"exact", MatchExact, true},
		{"Phrase", MatchPhrase, true},
		{" BROAD ", MatchBroad, true},
		{"", "", false},
		{"modified", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseMatchType(tt.input)
		assert.Equal(t, tt.ok, ok, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestCampaign_Empty(t *testing.T) {
	c := &Campaign{}
	assert.True(t, c.Empty())

	c.AdGroups = []AdGroup{{Name: "brand - acme"}}
	assert.False(t, c.Empty())
}

func TestCampaign_KeywordCount(t *testing.T) {
	c := &Campaign{
		AdGroups: []AdGroup{
			{Keywords: []KeywordCandidate{{Term: "a"}, {Term: "b"}}},
			{Keywords: []KeywordCandidate{{Term: "c"}}},
		},
	}
	assert.Equal(t, 3, c.KeywordCount())
}
