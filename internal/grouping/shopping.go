package grouping

import (
	"math"

	"github.com/vvaibhav/sem-planner/internal/types"
)

// buildRecommendations produces one shopping bid per brand- or
// competitor-origin candidate. Category-origin candidates are skipped on
// purpose: shopping campaigns are product-bid-driven, not category-driven.
// The bid is clamped to the configured ceiling.
func buildRecommendations(candidates []types.KeywordCandidate, cfg Config) []types.ShoppingRecommendation {
	recs := make([]types.ShoppingRecommendation, 0)
	for _, c := range candidates {
		if c.Origin != types.OriginBrand && c.Origin != types.OriginCompetitor {
			continue
		}

		bid := roundCents(c.MaxCPC * c.RelevanceScore * cfg.ShoppingBidFactor)
		if bid > cfg.BidCeiling {
			// Rounding must never push the bid past the ceiling.
			bid = math.Floor(cfg.BidCeiling*100) / 100
		}

		rec := types.ShoppingRecommendation{
			Term:           c.Term,
			RecommendedBid: bid,
		}
		if c.Origin == types.OriginCompetitor {
			rec.CompetitorReference = cfg.CompetitorTerm
		}
		recs = append(recs, rec)
	}
	return recs
}

// roundCents rounds a bid to two decimal places.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
