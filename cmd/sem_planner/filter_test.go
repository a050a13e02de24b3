package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvaibhav/sem-planner/internal/types"
)

func TestFilterCommand_DropsExcludedAndLowVolume(t *testing.T) {
	dir := t.TempDir()
	filterConfigPath = writeTestConfig(t, dir)
	filterInput = writeTestCandidates(t, dir, []types.KeywordCandidate{
		{Term: "whey protein powder", Origin: types.CategoryOrigin("protein powder"), SearchVolume: 500, MaxCPC: 1.5},
		{Term: "cheap protein", Origin: types.CategoryOrigin("protein powder"), SearchVolume: 900, MaxCPC: 1.0},
		{Term: "rare protein isolate", Origin: types.CategoryOrigin("protein powder"), SearchVolume: 50, MaxCPC: 1.0},
	})
	filterOutput = filepath.Join(dir, "filtered.json")
	filterReportPath = filepath.Join(dir, "report.json")

	require.NoError(t, runFilter(nil, nil))

	set := readCandidateSet(t, filterOutput)
	require.Len(t, set.Candidates, 1)
	assert.Equal(t, "whey protein powder", set.Candidates[0].Term)

	_, err := os.Stat(filterReportPath)
	assert.NoError(t, err)
}

func TestFilterCommand_MissingCandidatesFile(t *testing.T) {
	dir := t.TempDir()
	filterConfigPath = writeTestConfig(t, dir)
	filterInput = filepath.Join(dir, "missing.json")
	filterOutput = filepath.Join(dir, "filtered.json")
	filterReportPath = ""

	err := runFilter(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read candidates file")
}

func TestFilterCommand_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	badConfig := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badConfig, []byte("seed_keywords: []\n"), 0o644))

	filterConfigPath = badConfig
	filterInput = writeTestCandidates(t, dir, nil)
	filterOutput = filepath.Join(dir, "filtered.json")
	filterReportPath = ""

	assert.Error(t, runFilter(nil, nil))
}
