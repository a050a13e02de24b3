// Package types defines the data structures exchanged between pipeline stages.
package types

import "strings"

// Origin tags where a keyword candidate came from. It is one of "brand",
// "competitor", or "category:<name>" and is never mutated after creation.
type Origin string

const (
	// OriginBrand marks candidates derived from the brand name.
	OriginBrand Origin = "brand"
	// OriginCompetitor marks candidates derived from the competitor name.
	OriginCompetitor Origin = "competitor"

	categoryPrefix = "category:"
)

// CategoryOrigin builds a category origin tag for the given category name.
func CategoryOrigin(name string) Origin {
	return Origin(categoryPrefix + strings.TrimSpace(strings.ToLower(name)))
}

// IsCategory reports whether the origin is a category origin.
func (o Origin) IsCategory() bool {
	return strings.HasPrefix(string(o), categoryPrefix) && len(o) > len(categoryPrefix)
}

// CategoryName returns the category name for category origins, or "" otherwise.
func (o Origin) CategoryName() string {
	if !o.IsCategory() {
		return ""
	}
	return string(o[len(categoryPrefix):])
}

// Valid reports whether the origin is one of the recognized forms.
func (o Origin) Valid() bool {
	return o == OriginBrand || o == OriginCompetitor || o.IsCategory()
}

// Label returns the partition key used when grouping candidates:
// "brand", "competitor", or the bare category name.
func (o Origin) Label() string {
	if o.IsCategory() {
		return o.CategoryName()
	}
	return string(o)
}

// KeywordCandidate is a single keyword idea with its estimated metrics.
// RelevanceScore is zero until the filter stage computes it; candidates are
// treated as immutable once filtering has annotated them.
type KeywordCandidate struct {
	Term           string  `json:"term"`
	Origin         Origin  `json:"origin"`
	SearchVolume   int     `json:"search_volume"`
	MaxCPC         float64 `json:"max_cpc"`
	RelevanceScore float64 `json:"relevance_score"`
}

// CandidateSet is the JSON artifact wrapper for a collection of candidates.
type CandidateSet struct {
	Candidates []KeywordCandidate `json:"candidates"`
}
