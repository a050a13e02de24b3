package filtering

import (
	"context"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/vvaibhav/sem-planner/internal/scoring"
	"github.com/vvaibhav/sem-planner/internal/types"
)

// FilterRules holds the business rules applied to raw candidates.
// Descriptors is the brand/category descriptor set relevance is scored
// against.
type FilterRules struct {
	MinVolume          int
	MaxCPC             float64
	ExcludedKeywords   []string
	RelevanceThreshold float64
	Descriptors        []string
}

// Validate checks the rules for out-of-range values.
func (r *FilterRules) Validate() error {
	if r.MinVolume < 0 {
		return &RuleError{Field: "min_volume", Message: "must be non-negative"}
	}
	if r.MaxCPC < 0 {
		return &RuleError{Field: "max_cpc", Message: "must be non-negative"}
	}
	if r.RelevanceThreshold < 0 || r.RelevanceThreshold > 1 {
		return &RuleError{Field: "relevance_threshold", Message: "must be in [0, 1]"}
	}
	return nil
}

// Filter applies FilterRules to candidate collections. The stage order is
// fixed: normalize, exclude, threshold, deduplicate, score, relevance filter.
// Exclusion and dedup run before scoring because they are cheap and shrink
// the scoring workload.
type Filter struct {
	rules      FilterRules
	scorer     scoring.Scorer
	exclusions []string
}

// New builds a Filter, failing fast on invalid rules or a missing scorer.
func New(rules FilterRules, scorer scoring.Scorer) (*Filter, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if scorer == nil {
		return nil, &RuleError{Field: "scorer", Message: "must not be nil"}
	}

	exclusions := make([]string, 0, len(rules.ExcludedKeywords))
	for _, excluded := range rules.ExcludedKeywords {
		normalized := normalizeTerm(excluded)
		if normalized != "" {
			exclusions = append(exclusions, normalized)
		}
	}

	return &Filter{rules: rules, scorer: scorer, exclusions: exclusions}, nil
}

// Report counts what happened to candidates during one Apply call. Dropped
// malformed records never abort the run; they are surfaced here instead.
type Report struct {
	Input            int `json:"input"`
	Output           int `json:"output"`
	DroppedInvalid   int `json:"dropped_invalid"`
	DroppedExcluded  int `json:"dropped_excluded"`
	DroppedThreshold int `json:"dropped_threshold"`
	DroppedDuplicate int `json:"dropped_duplicate"`
	DroppedRelevance int `json:"dropped_relevance"`
	ScoringFailures  int `json:"scoring_failures"`
}

// Apply runs the full filter pipeline over candidates. An empty input or a
// fully exclusionary rule set yields an empty slice, not an error. The output
// never contains two candidates with the same normalized term, and every
// survivor satisfies the volume and CPC thresholds.
func (f *Filter) Apply(ctx context.Context, candidates []types.KeywordCandidate) ([]types.KeywordCandidate, *Report, error) {
	report := &Report{Input: len(candidates)}

	normalized := f.normalize(candidates, report)
	survivors := f.exclude(normalized, report)
	survivors = f.threshold(survivors, report)
	survivors = deduplicate(survivors, report)

	survivors, err := f.score(ctx, survivors, report)
	if err != nil {
		return nil, report, err
	}

	survivors = f.relevanceFilter(survivors, report)
	report.Output = len(survivors)
	return survivors, report, nil
}

// normalize lowercases and trims terms, dropping malformed records (empty
// term, unrecognized origin, negative metrics) with a count.
func (f *Filter) normalize(candidates []types.KeywordCandidate, report *Report) []types.KeywordCandidate {
	out := make([]types.KeywordCandidate, 0, len(candidates))
	for _, c := range candidates {
		c.Term = normalizeTerm(c.Term)
		if c.Term == "" || !c.Origin.Valid() || c.SearchVolume < 0 || c.MaxCPC < 0 {
			report.DroppedInvalid++
			continue
		}
		out = append(out, c)
	}
	return out
}

// exclude drops candidates whose term contains any excluded keyword as a
// substring. Exclusions are already normalized, so the match is
// case-insensitive.
func (f *Filter) exclude(candidates []types.KeywordCandidate, report *Report) []types.KeywordCandidate {
	if len(f.exclusions) == 0 {
		return candidates
	}
	out := candidates[:0]
	for _, c := range candidates {
		if f.isExcluded(c.Term) {
			report.DroppedExcluded++
			continue
		}
		out = append(out, c)
	}
	return out
}

func (f *Filter) isExcluded(term string) bool {
	for _, excluded := range f.exclusions {
		if strings.Contains(term, excluded) {
			return true
		}
	}
	return false
}

// threshold drops candidates below the volume floor or above the CPC ceiling.
func (f *Filter) threshold(candidates []types.KeywordCandidate, report *Report) []types.KeywordCandidate {
	out := candidates[:0]
	for _, c := range candidates {
		if c.SearchVolume < f.rules.MinVolume || c.MaxCPC > f.rules.MaxCPC {
			report.DroppedThreshold++
			continue
		}
		out = append(out, c)
	}
	return out
}

// deduplicate collapses candidates with identical normalized terms, keeping
// the one with the highest search volume. Ties keep the lower CPC, then the
// first-seen candidate. The first-seen position of each term is preserved so
// the result is stable and deterministic.
func deduplicate(candidates []types.KeywordCandidate, report *Report) []types.KeywordCandidate {
	out := make([]types.KeywordCandidate, 0, len(candidates))
	index := make(map[string]int, len(candidates))

	for _, c := range candidates {
		at, seen := index[c.Term]
		if !seen {
			index[c.Term] = len(out)
			out = append(out, c)
			continue
		}
		report.DroppedDuplicate++
		kept := out[at]
		if c.SearchVolume > kept.SearchVolume ||
			(c.SearchVolume == kept.SearchVolume && c.MaxCPC < kept.MaxCPC) {
			out[at] = c
		}
	}
	return out
}

// score computes relevance for each survivor. Scoring is per-candidate and
// embarrassingly parallel; results are written into index-addressed slots so
// input order is preserved for the later stages. A scoring failure assigns a
// zero score and continues; a single bad candidate never aborts the run.
func (f *Filter) score(ctx context.Context, candidates []types.KeywordCandidate, report *Report) ([]types.KeywordCandidate, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	var failures atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range candidates {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			score, err := f.scorer.Score(candidates[i].Term, f.rules.Descriptors)
			if err != nil {
				failures.Add(1)
				score = 0
			}
			candidates[i].RelevanceScore = clamp01(score)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	report.ScoringFailures = int(failures.Load())
	return candidates, nil
}

// relevanceFilter drops candidates scoring below the configured threshold.
func (f *Filter) relevanceFilter(candidates []types.KeywordCandidate, report *Report) []types.KeywordCandidate {
	if f.rules.RelevanceThreshold <= 0 {
		return candidates
	}
	out := candidates[:0]
	for _, c := range candidates {
		if c.RelevanceScore < f.rules.RelevanceThreshold {
			report.DroppedRelevance++
			continue
		}
		out = append(out, c)
	}
	return out
}

// normalizeTerm lowercases, trims, and collapses internal whitespace.
func normalizeTerm(term string) string {
	return strings.Join(strings.Fields(strings.ToLower(term)), " ")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
