// Package source expands seed keywords into raw keyword candidates with
// estimated metrics. It is the upstream collaborator of the filter stage;
// nothing downstream depends on how candidates were produced.
package source

import (
	"fmt"
	"strings"

	"github.com/vvaibhav/sem-planner/internal/types"
)

// Expansion pattern templates. "%s" is the seed, brand, or competitor term.
var (
	commercialPatterns = []string{
		"buy %s",
		"%s price",
		"%s online",
		"best %s",
		"%s review",
		"%s deals",
		"order %s",
		"where to buy %s",
	}
	longTailPatterns = []string{
		"how to use %s",
		"what is %s",
		"%s benefits",
		"%s for beginners",
		"natural %s",
		"organic %s",
		"%s guide",
		"%s ingredients",
	}
	brandPatterns = []string{
		"%s",
		"%s official",
		"%s store",
		"%s products",
		"%s reviews",
		"%s price",
	}
	competitorPatterns = []string{
		"%s alternative",
		"alternative to %s",
		"better than %s",
		"%s replacement",
	}
	locationPatterns = []string{
		"%[1]s %[2]s",
		"%[1]s in %[2]s",
		"best %[1]s %[2]s",
		"%[1]s delivery %[2]s",
	}
)

// Generator expands a brand/competitor configuration into raw candidates.
// Generation is fully deterministic: identical inputs produce the identical
// candidate collection, metrics included.
type Generator struct {
	brand      string
	competitor string
	seeds      []string
	locations  []string
}

// NewGenerator builds a Generator. Inputs are lowercased and trimmed once so
// every emitted term is already normalized.
func NewGenerator(brand, competitor string, seeds, locations []string) *Generator {
	return &Generator{
		brand:      clean(brand),
		competitor: clean(competitor),
		seeds:      cleanAll(seeds),
		locations:  cleanAll(locations),
	}
}

// Generate produces the full raw candidate collection: direct seeds,
// commercial and long-tail seed variants, location variants, brand variants,
// and competitor variants.
func (g *Generator) Generate() []types.KeywordCandidate {
	candidates := make([]types.KeywordCandidate, 0)

	for _, seed := range g.seeds {
		origin := types.CategoryOrigin(seed)

		candidates = append(candidates, g.candidate(seed, origin, adjustSeed))
		for _, pattern := range commercialPatterns {
			candidates = append(candidates, g.candidate(fmt.Sprintf(pattern, seed), origin, adjustCommercial))
		}
		for _, pattern := range longTailPatterns {
			candidates = append(candidates, g.candidate(fmt.Sprintf(pattern, seed), origin, adjustLongTail))
		}
		for _, location := range g.locations {
			for _, pattern := range locationPatterns {
				candidates = append(candidates, g.candidate(fmt.Sprintf(pattern, seed, location), origin, adjustLocation))
			}
		}
	}

	if g.brand != "" {
		for _, pattern := range brandPatterns {
			candidates = append(candidates, g.candidate(fmt.Sprintf(pattern, g.brand), types.OriginBrand, adjustBrand))
		}
	}
	if g.competitor != "" {
		for _, pattern := range competitorPatterns {
			candidates = append(candidates, g.candidate(fmt.Sprintf(pattern, g.competitor), types.OriginCompetitor, adjustCompetitor))
		}
	}

	return candidates
}

// candidate builds one candidate with metrics derived from the term.
func (g *Generator) candidate(term string, origin types.Origin, adjust metricAdjustment) types.KeywordCandidate {
	term = clean(term)
	volume, cpc := estimateMetrics(term, adjust)
	return types.KeywordCandidate{
		Term:         term,
		Origin:       origin,
		SearchVolume: volume,
		MaxCPC:       cpc,
	}
}

func clean(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func cleanAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if cleaned := clean(v); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
