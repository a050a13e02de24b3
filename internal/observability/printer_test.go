package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvaibhav/sem-planner/internal/filtering"
	"github.com/vvaibhav/sem-planner/internal/types"
)

func TestPrintFilterReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFilterReport(&filtering.Report{
		Input:            100,
		Output:           40,
		DroppedExcluded:  30,
		DroppedDuplicate: 20,
		DroppedThreshold: 10,
		ScoringFailures:  1,
	})

	out := buf.String()
	assert.Contains(t, out, "FILTER REPORT")
	assert.Contains(t, out, "100 candidates")
	assert.Contains(t, out, "40 candidates")
	assert.Contains(t, out, "Scoring failures: 1")
}

func TestPrintFilterReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintFilterReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintCampaign(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCampaign(&types.Campaign{
		AdGroups: []types.AdGroup{
			{Name: "brand - acme", MatchType: types.MatchExact, Keywords: []types.KeywordCandidate{{Term: "acme protein"}}},
		},
		PMaxThemes:          []types.PMaxTheme{{ThemeName: "brand", Signals: []string{"acme protein"}}},
		GeneratedAt:         time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		SourceConfigSummary: types.ConfigSummary{Brand: "Acme"},
	})

	out := buf.String()
	assert.Contains(t, out, "CAMPAIGN SUMMARY")
	assert.Contains(t, out, "brand - acme")
	assert.Contains(t, out, "Acme")
}

func TestPrintCampaign_TruncatesLongGroupLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	groups := make([]types.AdGroup, 8)
	for i := range groups {
		groups[i] = types.AdGroup{Name: "group", Keywords: []types.KeywordCandidate{{Term: "x"}}}
	}
	p.PrintCampaign(&types.Campaign{AdGroups: groups})

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestNewLogger(t *testing.T) {
	verbose, err := NewLogger(true)
	require.NoError(t, err)
	require.NotNil(t, verbose)

	quiet, err := NewLogger(false)
	require.NoError(t, err)
	require.NotNil(t, quiet)
}
