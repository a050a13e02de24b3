package source

import (
	"hash/fnv"
	"math"
	"math/rand"
	"strings"
)

// metricAdjustment tunes the base volume and CPC for a variant family,
// mirroring how search volume and bid pressure differ by keyword intent.
type metricAdjustment struct {
	volumeFactor float64
	cpcFactor    float64
}

var (
	adjustSeed       = metricAdjustment{volumeFactor: 1.5, cpcFactor: 1.0}
	adjustCommercial = metricAdjustment{volumeFactor: 1.2, cpcFactor: 1.2}
	adjustLongTail   = metricAdjustment{volumeFactor: 0.6, cpcFactor: 0.8}
	adjustLocation   = metricAdjustment{volumeFactor: 0.8, cpcFactor: 0.9}
	adjustBrand      = metricAdjustment{volumeFactor: 0.3, cpcFactor: 0.6}
	adjustCompetitor = metricAdjustment{volumeFactor: 0.5, cpcFactor: 1.1}
)

const (
	baseVolumeFloor = 500
	baseVolumeSpan  = 4500
	baseCPCFloor    = 0.25
	baseCPCSpan     = 1.75
)

// estimateMetrics derives a search volume and top-of-page CPC for a term.
// The PRNG is seeded from the term itself so repeated runs over the same
// configuration produce identical candidates.
func estimateMetrics(term string, adjust metricAdjustment) (int, float64) {
	rng := rand.New(rand.NewSource(termSeed(term)))

	volume := float64(baseVolumeFloor + rng.Intn(baseVolumeSpan))
	volume *= adjust.volumeFactor

	cpc := baseCPCFloor + rng.Float64()*baseCPCSpan
	cpc *= adjust.cpcFactor
	// Longer terms bid cheaper, matching how long-tail queries behave.
	if len(strings.Fields(term)) > 4 {
		cpc *= 0.8
	}

	return int(volume), math.Round(cpc*100) / 100
}

func termSeed(term string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(term))
	return int64(h.Sum64())
}
