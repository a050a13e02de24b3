package scoring

import "strings"

// TokenOverlapScorer scores a term against descriptors using the best Jaccard
// similarity between their token sets. The metric is deterministic and
// monotonic: more shared tokens can only raise the score, an identical
// descriptor yields 1.0, and a fully disjoint term yields 0.0.
type TokenOverlapScorer struct{}

// NewTokenOverlapScorer creates a token-overlap scorer.
func NewTokenOverlapScorer() *TokenOverlapScorer {
	return &TokenOverlapScorer{}
}

// Score implements Scorer.
func (s *TokenOverlapScorer) Score(term string, descriptors []string) (float64, error) {
	termTokens := tokenize(term)
	if len(termTokens) == 0 {
		return 0, &ScoreError{Term: term, Message: "term has no tokens"}
	}

	best := 0.0
	for _, descriptor := range descriptors {
		descTokens := tokenize(descriptor)
		if len(descTokens) == 0 {
			continue
		}
		if sim := jaccard(termTokens, descTokens); sim > best {
			best = sim
		}
	}

	if best > 1.0 {
		best = 1.0
	}
	return best, nil
}

// tokenize lowercases and splits text into a set of whitespace-separated tokens.
func tokenize(text string) map[string]bool {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return nil
	}
	tokens := make(map[string]bool, len(fields))
	for _, f := range fields {
		tokens[f] = true
	}
	return tokens
}

// jaccard computes |a ∩ b| / |a ∪ b| for two token sets.
func jaccard(a, b map[string]bool) float64 {
	intersection := 0
	for token := range a {
		if b[token] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
