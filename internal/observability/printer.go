package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/vvaibhav/sem-planner/internal/filtering"
	"github.com/vvaibhav/sem-planner/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFilterReport outputs a human-readable summary of one filter pass.
func (p *Printer) PrintFilterReport(report *filtering.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Input:     %d candidates\n", report.Input))
	sb.WriteString(fmt.Sprintf("Output:    %d candidates\n", report.Output))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Invalid:   %d dropped\n", report.DroppedInvalid))
	sb.WriteString(fmt.Sprintf("Excluded:  %d dropped\n", report.DroppedExcluded))
	sb.WriteString(fmt.Sprintf("Threshold: %d dropped\n", report.DroppedThreshold))
	sb.WriteString(fmt.Sprintf("Duplicate: %d dropped\n", report.DroppedDuplicate))
	sb.WriteString(fmt.Sprintf("Relevance: %d dropped", report.DroppedRelevance))
	if report.ScoringFailures > 0 {
		sb.WriteString(fmt.Sprintf("\nScoring failures: %d (scored 0.0)", report.ScoringFailures))
	}

	p.printBox("FILTER REPORT", sb.String())
}

// PrintCampaign outputs a human-readable summary of the assembled campaign.
func (p *Printer) PrintCampaign(c *types.Campaign) {
	if c == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Ad groups:       %d (%d keywords)\n", len(c.AdGroups), c.KeywordCount()))
	sb.WriteString(fmt.Sprintf("PMax themes:     %d\n", len(c.PMaxThemes)))
	sb.WriteString(fmt.Sprintf("Shopping bids:   %d\n", len(c.ShoppingRecommendations)))
	sb.WriteString(fmt.Sprintf("Brand:           %s\n", c.SourceConfigSummary.Brand))
	sb.WriteString(fmt.Sprintf("Generated at:    %s\n", c.GeneratedAt.Format("2006-01-02 15:04:05 MST")))

	sb.WriteString("\nTop ad groups:")
	for i, g := range c.AdGroups {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n  ... and %d more", len(c.AdGroups)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("\n  %s (%d keywords, %s)", g.Name, len(g.Keywords), g.MatchType))
	}

	p.printBox("CAMPAIGN SUMMARY", sb.String())
}
