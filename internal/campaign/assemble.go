// Package campaign composes grouped structures into the Campaign aggregate.
package campaign

import (
	"time"

	"github.com/vvaibhav/sem-planner/internal/types"
)

// Meta carries the traceability fields stamped onto an assembled campaign.
// A zero GeneratedAt is replaced with the current time.
type Meta struct {
	GeneratedAt time.Time
	Summary     types.ConfigSummary
}

// Assemble composes the three structure collections into one Campaign.
// Only structural validation happens here: ad groups without keywords and
// themes without signals are dropped rather than emitted as empty artifacts.
// Ad groups and themes may legitimately share terms, so no overlap check is
// performed. Empty collections produce an empty campaign, never an error.
func Assemble(adGroups []types.AdGroup, themes []types.PMaxTheme, recs []types.ShoppingRecommendation, meta Meta) *types.Campaign {
	generatedAt := meta.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}

	kept := make([]types.AdGroup, 0, len(adGroups))
	for _, g := range adGroups {
		if len(g.Keywords) == 0 {
			continue
		}
		kept = append(kept, g)
	}

	keptThemes := make([]types.PMaxTheme, 0, len(themes))
	for _, th := range themes {
		if len(th.Signals) == 0 {
			continue
		}
		keptThemes = append(keptThemes, th)
	}

	keptRecs := make([]types.ShoppingRecommendation, 0, len(recs))
	keptRecs = append(keptRecs, recs...)

	return &types.Campaign{
		AdGroups:                kept,
		PMaxThemes:              keptThemes,
		ShoppingRecommendations: keptRecs,
		GeneratedAt:             generatedAt,
		SourceConfigSummary:     meta.Summary,
	}
}
