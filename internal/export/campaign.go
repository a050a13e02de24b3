package export

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vvaibhav/sem-planner/internal/types"
)

// Deliverable table names.
const (
	TableAdGroups    = "keyword_adgroups"
	TablePMaxThemes  = "pmax_themes"
	TableShoppingBid = "shopping_bids"
)

// Exporter flattens a Campaign into deliverable tables on a TabularSink.
type Exporter struct {
	sink TabularSink
}

// NewExporter creates an Exporter over the given sink.
func NewExporter(sink TabularSink) *Exporter {
	return &Exporter{sink: sink}
}

// Export writes the three deliverable tables and returns their paths.
// Empty collections still produce a header-only table so downstream
// spreadsheet tooling always finds the expected files.
func (e *Exporter) Export(c *types.Campaign) ([]string, error) {
	paths := make([]string, 0, 3)

	path, err := e.sink.WriteTable(TableAdGroups,
		[]string{"ad_group", "keyword", "match_type", "search_volume", "max_cpc", "relevance_score"},
		adGroupRows(c.AdGroups))
	if err != nil {
		return nil, fmt.Errorf("failed to export ad groups: %w", err)
	}
	paths = append(paths, path)

	path, err = e.sink.WriteTable(TablePMaxThemes,
		[]string{"theme_name", "estimated_volume", "signal_count", "signals"},
		themeRows(c.PMaxThemes))
	if err != nil {
		return nil, fmt.Errorf("failed to export pmax themes: %w", err)
	}
	paths = append(paths, path)

	path, err = e.sink.WriteTable(TableShoppingBid,
		[]string{"term", "recommended_bid", "competitor_reference"},
		shoppingRows(c.ShoppingRecommendations))
	if err != nil {
		return nil, fmt.Errorf("failed to export shopping bids: %w", err)
	}
	paths = append(paths, path)

	return paths, nil
}

func adGroupRows(groups []types.AdGroup) [][]string {
	rows := make([][]string, 0)
	for _, g := range groups {
		for _, k := range g.Keywords {
			rows = append(rows, []string{
				g.Name,
				k.Term,
				string(g.MatchType),
				strconv.Itoa(k.SearchVolume),
				formatDecimal(k.MaxCPC),
				formatDecimal(k.RelevanceScore),
			})
		}
	}
	return rows
}

func themeRows(themes []types.PMaxTheme) [][]string {
	rows := make([][]string, 0, len(themes))
	for _, th := range themes {
		rows = append(rows, []string{
			th.ThemeName,
			strconv.Itoa(th.EstimatedVolume),
			strconv.Itoa(len(th.Signals)),
			strings.Join(th.Signals, "; "),
		})
	}
	return rows
}

func shoppingRows(recs []types.ShoppingRecommendation) [][]string {
	rows := make([][]string, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []string{r.Term, formatDecimal(r.RecommendedBid), r.CompetitorReference})
	}
	return rows
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// WriteCampaignJSON writes the full campaign aggregate as an indented JSON
// artifact, the machine-readable counterpart of the CSV deliverables.
func WriteCampaignJSON(path string, c *types.Campaign) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal campaign: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write campaign to %s: %w", path, err)
	}
	return nil
}
