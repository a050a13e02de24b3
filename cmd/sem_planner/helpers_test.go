package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vvaibhav/sem-planner/internal/types"
)

const testConfigYAML = `
brand:
  name: NutriBlend
competitor:
  name: PowerMix
seed_keywords:
  - protein powder
filter:
  min_volume: 100
  max_cpc: 5.0
  excluded_keywords:
    - cheap
output:
  formats:
    - csv
    - json
`

// writeTestConfig writes a valid planner config into dir and returns its path.
func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o644))
	return path
}

// writeTestCandidates writes a candidates JSON file and returns its path.
func writeTestCandidates(t *testing.T, dir string, candidates []types.KeywordCandidate) string {
	t.Helper()
	content, err := json.MarshalIndent(types.CandidateSet{Candidates: candidates}, "", "  ")
	require.NoError(t, err)
	path := filepath.Join(dir, "candidates.json")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

// readCandidateSet reads a candidates JSON file back.
func readCandidateSet(t *testing.T, path string) types.CandidateSet {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var set types.CandidateSet
	require.NoError(t, json.Unmarshal(content, &set))
	return set
}
