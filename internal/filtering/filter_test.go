package filtering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvaibhav/sem-planner/internal/scoring"
	"github.com/vvaibhav/sem-planner/internal/types"
)

// constantScorer returns a fixed score for every term.
type constantScorer struct {
	score float64
}

func (s *constantScorer) Score(string, []string) (float64, error) {
	return s.score, nil
}

// failingScorer fails on one specific term and scores everything else.
type failingScorer struct {
	failOn string
}

func (s *failingScorer) Score(term string, _ []string) (float64, error) {
	if term == s.failOn {
		return 0, &scoring.ScoreError{Term: term, Message: "malformed term"}
	}
	return 0.9, nil
}

func newTestFilter(t *testing.T, rules FilterRules, scorer scoring.Scorer) *Filter {
	t.Helper()
	if scorer == nil {
		scorer = &constantScorer{score: 1.0}
	}
	f, err := New(rules, scorer)
	require.NoError(t, err)
	return f
}

func TestFilterRules_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rules   FilterRules
		wantErr bool
	}{
		{"valid", FilterRules{MinVolume: 50, MaxCPC: 2.0, RelevanceThreshold: 0.5}, false},
		{"zero values", FilterRules{}, false},
		{"negative min volume", FilterRules{MinVolume: -1}, true},
		{"negative max cpc", FilterRules{MaxCPC: -0.1}, true},
		{"threshold above one", FilterRules{RelevanceThreshold: 1.5}, true},
		{"negative threshold", FilterRules{RelevanceThreshold: -0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if tt.wantErr {
				var ruleErr *RuleError
				require.Error(t, err)
				assert.ErrorAs(t, err, &ruleErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_NilScorer(t *testing.T) {
	_, err := New(FilterRules{}, nil)
	require.Error(t, err)
}

// Scenario from the product rules: exclusion drops "cheap protein", dedup
// keeps the higher-volume "whey protein" duplicate.
func TestApply_ExclusionAndDedupScenario(t *testing.T) {
	rules := FilterRules{
		MinVolume:        50,
		MaxCPC:           2.0,
		ExcludedKeywords: []string{"cheap"},
	}
	f := newTestFilter(t, rules, nil)

	input := []types.KeywordCandidate{
		{Term: "cheap protein", Origin: types.CategoryOrigin("protein"), SearchVolume: 80, MaxCPC: 1.5},
		{Term: "whey protein", Origin: types.CategoryOrigin("protein"), SearchVolume: 500, MaxCPC: 1.8},
		{Term: "whey protein", Origin: types.CategoryOrigin("protein"), SearchVolume: 300, MaxCPC: 1.2},
	}

	out, report, err := f.Apply(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "whey protein", out[0].Term)
	assert.Equal(t, 500, out[0].SearchVolume)
	assert.Equal(t, 1.8, out[0].MaxCPC)
	assert.Equal(t, 1, report.DroppedExcluded)
	assert.Equal(t, 1, report.DroppedDuplicate)
	assert.Equal(t, 1, report.Output)
}

func TestApply_EmptyInput(t *testing.T) {
	f := newTestFilter(t, FilterRules{MinVolume: 10, MaxCPC: 5}, nil)

	out, report, err := f.Apply(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 0, report.Input)
	assert.Equal(t, 0, report.Output)
}

func TestApply_FullyExclusionaryRules(t *testing.T) {
	f := newTestFilter(t, FilterRules{MaxCPC: 5, ExcludedKeywords: []string{"protein"}}, nil)

	input := []types.KeywordCandidate{
		{Term: "whey protein", Origin: types.CategoryOrigin("protein"), SearchVolume: 500, MaxCPC: 1.0},
		{Term: "protein bar", Origin: types.CategoryOrigin("protein"), SearchVolume: 400, MaxCPC: 1.0},
	}

	out, report, err := f.Apply(context.Background(), input)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 2, report.DroppedExcluded)
}

func TestApply_ExclusionIsCaseInsensitiveSubstring(t *testing.T) {
	f := newTestFilter(t, FilterRules{MaxCPC: 5, ExcludedKeywords: []string{"FREE"}}, nil)

	input := []types.KeywordCandidate{
		{Term: "Free Protein Samples", Origin: types.CategoryOrigin("protein"), SearchVolume: 100, MaxCPC: 1.0},
		{Term: "carefree nutrition", Origin: types.CategoryOrigin("protein"), SearchVolume: 100, MaxCPC: 1.0},
		{Term: "whey protein", Origin: types.CategoryOrigin("protein"), SearchVolume: 100, MaxCPC: 1.0},
	}

	out, _, err := f.Apply(context.Background(), input)
	require.NoError(t, err)
	// Substring match also catches "carefree".
	require.Len(t, out, 1)
	assert.Equal(t, "whey protein", out[0].Term)
}

func TestApply_ThresholdInvariant(t *testing.T) {
	rules := FilterRules{MinVolume: 100, MaxCPC: 1.5}
	f := newTestFilter(t, rules, nil)

	input := []types.KeywordCandidate{
		{Term: "low volume", Origin: types.CategoryOrigin("a"), SearchVolume: 99, MaxCPC: 1.0},
		{Term: "at volume floor", Origin: types.CategoryOrigin("a"), SearchVolume: 100, MaxCPC: 1.0},
		{Term: "at cpc ceiling", Origin: types.CategoryOrigin("a"), SearchVolume: 200, MaxCPC: 1.5},
		{Term: "over cpc", Origin: types.CategoryOrigin("a"), SearchVolume: 200, MaxCPC: 1.51},
	}

	out, report, err := f.Apply(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 2, report.DroppedThreshold)

	for _, c := range out {
		assert.GreaterOrEqual(t, c.SearchVolume, rules.MinVolume)
		assert.LessOrEqual(t, c.MaxCPC, rules.MaxCPC)
	}
}

func TestApply_DedupInvariant(t *testing.T) {
	f := newTestFilter(t, FilterRules{MaxCPC: 5}, nil)

	input := []types.KeywordCandidate{
		{Term: "Whey Protein", Origin: types.CategoryOrigin("a"), SearchVolume: 100, MaxCPC: 1.0},
		{Term: "whey  protein ", Origin: types.CategoryOrigin("a"), SearchVolume: 100, MaxCPC: 0.8},
		{Term: "protein bar", Origin: types.CategoryOrigin("a"), SearchVolume: 50, MaxCPC: 1.0},
		{Term: "protein bar", Origin: types.CategoryOrigin("a"), SearchVolume: 50, MaxCPC: 1.0},
	}

	out, _, err := f.Apply(context.Background(), input)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, c := range out {
		assert.False(t, seen[c.Term], "duplicate term %q in output", c.Term)
		seen[c.Term] = true
	}
	require.Len(t, out, 2)
	// Equal volumes: the lower CPC wins.
	assert.Equal(t, 0.8, out[0].MaxCPC)
}

func TestApply_DedupPreservesFirstSeenOrder(t *testing.T) {
	f := newTestFilter(t, FilterRules{MaxCPC: 5}, nil)

	input := []types.KeywordCandidate{
		{Term: "alpha", Origin: types.CategoryOrigin("a"), SearchVolume: 10, MaxCPC: 1.0},
		{Term: "beta", Origin: types.CategoryOrigin("a"), SearchVolume: 10, MaxCPC: 1.0},
		{Term: "alpha", Origin: types.CategoryOrigin("a"), SearchVolume: 999, MaxCPC: 1.0},
	}

	out, _, err := f.Apply(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// The winning duplicate replaces the entry in place; order is first-seen.
	assert.Equal(t, "alpha", out[0].Term)
	assert.Equal(t, 999, out[0].SearchVolume)
	assert.Equal(t, "beta", out[1].Term)
}

func TestApply_MalformedRecordsDroppedAndCounted(t *testing.T) {
	f := newTestFilter(t, FilterRules{MaxCPC: 5}, nil)

	input := []types.KeywordCandidate{
		{Term: "   ", Origin: types.CategoryOrigin("a"), SearchVolume: 100, MaxCPC: 1.0},
		{Term: "no origin", SearchVolume: 100, MaxCPC: 1.0},
		{Term: "negative volume", Origin: types.CategoryOrigin("a"), SearchVolume: -1, MaxCPC: 1.0},
		{Term: "negative cpc", Origin: types.CategoryOrigin("a"), SearchVolume: 100, MaxCPC: -1.0},
		{Term: "keeper", Origin: types.CategoryOrigin("a"), SearchVolume: 100, MaxCPC: 1.0},
	}

	out, report, err := f.Apply(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "keeper", out[0].Term)
	assert.Equal(t, 4, report.DroppedInvalid)
}

func TestApply_RelevanceThreshold(t *testing.T) {
	rules := FilterRules{MaxCPC: 5, RelevanceThreshold: 0.5, Descriptors: []string{"whey protein"}}
	f := newTestFilter(t, rules, scoring.NewTokenOverlapScorer())

	input := []types.KeywordCandidate{
		{Term: "whey protein", Origin: types.CategoryOrigin("protein"), SearchVolume: 100, MaxCPC: 1.0},
		{Term: "car insurance", Origin: types.CategoryOrigin("insurance"), SearchVolume: 100, MaxCPC: 1.0},
	}

	out, report, err := f.Apply(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "whey protein", out[0].Term)
	assert.Equal(t, 1.0, out[0].RelevanceScore)
	assert.Equal(t, 1, report.DroppedRelevance)
}

func TestApply_ZeroThresholdKeepsZeroRelevance(t *testing.T) {
	rules := FilterRules{MaxCPC: 5, Descriptors: []string{"something unrelated"}}
	f := newTestFilter(t, rules, scoring.NewTokenOverlapScorer())

	input := []types.KeywordCandidate{
		{Term: "whey protein", Origin: types.CategoryOrigin("protein"), SearchVolume: 100, MaxCPC: 1.0},
	}

	out, _, err := f.Apply(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 0.0, out[0].RelevanceScore)
}

func TestApply_ScoringFailureRecoversWithZeroScore(t *testing.T) {
	rules := FilterRules{MaxCPC: 5}
	f := newTestFilter(t, rules, &failingScorer{failOn: "bad term"})

	input := []types.KeywordCandidate{
		{Term: "bad term", Origin: types.CategoryOrigin("a"), SearchVolume: 100, MaxCPC: 1.0},
		{Term: "good term", Origin: types.CategoryOrigin("a"), SearchVolume: 100, MaxCPC: 1.0},
	}

	out, report, err := f.Apply(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, report.ScoringFailures)
	assert.Equal(t, 0.0, out[0].RelevanceScore)
	assert.Equal(t, 0.9, out[1].RelevanceScore)
}

func TestApply_Idempotent(t *testing.T) {
	rules := FilterRules{
		MinVolume:          50,
		MaxCPC:             2.0,
		ExcludedKeywords:   []string{"cheap", "free"},
		RelevanceThreshold: 0.2,
		Descriptors:        []string{"whey protein", "protein powder"},
	}
	f := newTestFilter(t, rules, scoring.NewTokenOverlapScorer())

	input := []types.KeywordCandidate{
		{Term: "whey protein", Origin: types.CategoryOrigin("protein"), SearchVolume: 500, MaxCPC: 1.8},
		{Term: "protein powder", Origin: types.CategoryOrigin("protein"), SearchVolume: 300, MaxCPC: 1.2},
		{Term: "cheap protein", Origin: types.CategoryOrigin("protein"), SearchVolume: 80, MaxCPC: 1.5},
		{Term: "whey protein", Origin: types.CategoryOrigin("protein"), SearchVolume: 200, MaxCPC: 1.0},
		{Term: "car insurance", Origin: types.CategoryOrigin("insurance"), SearchVolume: 900, MaxCPC: 1.9},
	}

	once, _, err := f.Apply(context.Background(), input)
	require.NoError(t, err)

	twice, _, err := f.Apply(context.Background(), once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestApply_LargeInputScoresInOrder(t *testing.T) {
	f := newTestFilter(t, FilterRules{MaxCPC: 5, Descriptors: []string{"term"}}, scoring.NewTokenOverlapScorer())

	input := make([]types.KeywordCandidate, 0, 200)
	for i := 0; i < 200; i++ {
		input = append(input, types.KeywordCandidate{
			Term:         termForIndex(i),
			Origin:       types.CategoryOrigin("bulk"),
			SearchVolume: i + 1,
			MaxCPC:       1.0,
		})
	}

	out, _, err := f.Apply(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, out, 200)

	// Parallel scoring must not reorder candidates.
	for i, c := range out {
		assert.Equal(t, termForIndex(i), c.Term)
	}
}

func termForIndex(i int) string {
	letters := "abcdefghij"
	return "term " + string(letters[i/100]) + string(letters[i/10%10]) + string(letters[i%10])
}
