// Package scoring provides deterministic relevance scoring between keyword
// terms and brand/category descriptor sets.
package scoring

// Scorer computes a relevance score in [0, 1] for a term against a set of
// descriptors. Implementations must be deterministic: a term identical to a
// descriptor scores 1.0 and unrelated terms score near 0.0.
type Scorer interface {
	Score(term string, descriptors []string) (float64, error)
}
