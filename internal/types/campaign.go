package types

import (
	"strings"
	"time"
)

// MatchType is the keyword match policy assigned uniformly to an ad group.
type MatchType string

const (
	MatchExact  MatchType = "exact"
	MatchPhrase MatchType = "phrase"
	MatchBroad  MatchType = "broad"
)

// Valid reports whether the match type is one of the recognized values.
func (m MatchType) Valid() bool {
	switch m {
	case MatchExact, MatchPhrase, MatchBroad:
		return true
	}
	return false
}

// ParseMatchType converts a configuration string into a MatchType.
// Returns false when the value is not recognized.
func ParseMatchType(s string) (MatchType, bool) {
	m := MatchType(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", false
	}
	return m, true
}

// AdGroup is a named cluster of keywords sharing one match-type policy.
type AdGroup struct {
	Name      string             `json:"name"`
	Keywords  []KeywordCandidate `json:"keywords"`
	MatchType MatchType          `json:"match_type"`
}

// PMaxTheme groups broader intent signals for Performance-Max campaigns.
type PMaxTheme struct {
	ThemeName       string   `json:"theme_name"`
	Signals         []string `json:"signals"`
	EstimatedVolume int      `json:"estimated_volume"`
}

// ShoppingRecommendation is a suggested per-term bid for shopping campaigns.
// CompetitorReference links competitor-derived terms back to the competing
// product term they target.
type ShoppingRecommendation struct {
	Term                string  `json:"term"`
	RecommendedBid      float64 `json:"recommended_bid"`
	CompetitorReference string  `json:"competitor_reference,omitempty"`
}

// ConfigSummary is the traceability snapshot of the configuration that
// produced a campaign.
type ConfigSummary struct {
	Brand        string  `json:"brand"`
	Competitor   string  `json:"competitor"`
	SeedKeywords int     `json:"seed_keywords"`
	MinVolume    int     `json:"min_volume"`
	MaxCPC       float64 `json:"max_cpc"`
	MaxGroupSize int     `json:"max_group_size"`
}

// Campaign is the aggregate produced by one pipeline run. It owns its
// contents by value; nothing upstream retains references into it.
type Campaign struct {
	AdGroups                []AdGroup                `json:"ad_groups"`
	PMaxThemes              []PMaxTheme              `json:"pmax_themes"`
	ShoppingRecommendations []ShoppingRecommendation `json:"shopping_recommendations"`
	GeneratedAt             time.Time                `json:"generated_at"`
	SourceConfigSummary     ConfigSummary            `json:"source_config_summary"`
}

// Empty reports whether all three collections are empty.
func (c *Campaign) Empty() bool {
	return len(c.AdGroups) == 0 && len(c.PMaxThemes) == 0 && len(c.ShoppingRecommendations) == 0
}

// KeywordCount returns the total number of keywords across all ad groups.
func (c *Campaign) KeywordCount() int {
	count := 0
	for _, g := range c.AdGroups {
		count += len(g.Keywords)
	}
	return count
}
