package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvaibhav/sem-planner/internal/config"
	"github.com/vvaibhav/sem-planner/internal/filtering"
	"github.com/vvaibhav/sem-planner/internal/observability"
	"github.com/vvaibhav/sem-planner/internal/scoring"
	"github.com/vvaibhav/sem-planner/internal/types"
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Filter keyword candidates against the configured rules",
	Long:  "Applies the configured volume, CPC, exclusion, deduplication, and relevance rules to a candidates JSON file, producing the surviving candidates and a drop-count report.",
	RunE:  runFilter,
}

var (
	filterConfigPath string
	filterInput      string
	filterOutput     string
	filterReportPath string
	filterVerbose    bool
)

func init() {
	filterCmd.Flags().StringVarP(&filterConfigPath, "config", "c", "", "Path to planner YAML config file (required)")
	filterCmd.Flags().StringVarP(&filterInput, "candidates", "i", "", "Path to input candidates JSON file (required)")
	filterCmd.Flags().StringVarP(&filterOutput, "out", "o", "", "Path to output filtered candidates JSON file (required)")
	filterCmd.Flags().StringVarP(&filterReportPath, "report", "r", "", "Path to output filter report JSON file (optional)")
	filterCmd.Flags().BoolVarP(&filterVerbose, "verbose", "v", false, "Print a detailed filter report")

	if err := filterCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}
	if err := filterCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := filterCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(filterCmd)
}

func runFilter(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(filterConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	candidates, err := readCandidates(filterInput)
	if err != nil {
		return err
	}

	filter, err := filtering.New(cfg.FilterRules(), scoring.NewTokenOverlapScorer())
	if err != nil {
		return fmt.Errorf("failed to build filter: %w", err)
	}

	kept, report, err := filter.Apply(context.Background(), candidates)
	if err != nil {
		return fmt.Errorf("failed to filter candidates: %w", err)
	}

	if err := writeJSONArtifact(filterOutput, types.CandidateSet{Candidates: kept}, candidatesSchema); err != nil {
		return err
	}

	if filterReportPath != "" {
		if err := writeJSONArtifact(filterReportPath, report, ""); err != nil {
			return err
		}
	}

	if filterVerbose {
		observability.NewPrinter(os.Stdout).PrintFilterReport(report)
	}

	fmt.Printf("Successfully filtered %d candidates to %d keywords in %s\n", report.Input, report.Output, filterOutput)
	return nil
}
