package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvaibhav/sem-planner/internal/types"
)

func TestExportCommand_WritesTables(t *testing.T) {
	dir := t.TempDir()

	plan := &types.Campaign{
		AdGroups: []types.AdGroup{{
			Name:      "protein powder - whey",
			Keywords:  []types.KeywordCandidate{{Term: "whey protein", Origin: types.CategoryOrigin("protein powder"), SearchVolume: 500, MaxCPC: 1.5, RelevanceScore: 0.8}},
			MatchType: types.MatchPhrase,
		}},
		PMaxThemes:              []types.PMaxTheme{{ThemeName: "protein powder", Signals: []string{"whey protein"}, EstimatedVolume: 500}},
		ShoppingRecommendations: []types.ShoppingRecommendation{{Term: "nutriblend shop", RecommendedBid: 0.75}},
	}
	exportInput = filepath.Join(dir, "campaign.json")
	require.NoError(t, writeJSONArtifact(exportInput, plan, ""))
	exportOutputDir = filepath.Join(dir, "out")

	require.NoError(t, runExport(nil, nil))

	for _, name := range []string{"keyword_adgroups.csv", "pmax_themes.csv", "shopping_bids.csv"} {
		_, err := os.Stat(filepath.Join(exportOutputDir, name))
		assert.NoError(t, err, "expected CSV file %s", name)
	}
}

func TestExportCommand_MissingCampaignFile(t *testing.T) {
	dir := t.TempDir()
	exportInput = filepath.Join(dir, "missing.json")
	exportOutputDir = filepath.Join(dir, "out")

	assert.Error(t, runExport(nil, nil))
}
