package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvaibhav/sem-planner/internal/config"
	"github.com/vvaibhav/sem-planner/internal/observability"
	"github.com/vvaibhav/sem-planner/internal/pipeline"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full campaign planning pipeline end-to-end",
	Long:  "Generates keyword candidates from the configured seeds, filters them, clusters the survivors, and writes the campaign deliverables to the output directory.",
	RunE:  runGenerate,
}

var (
	generateConfigPath string
	generateOutputDir  string
	generateVerbose    bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "", "Path to planner YAML config file (required)")
	generateCmd.Flags().StringVarP(&generateOutputDir, "out-dir", "o", "", "Output directory (overrides config)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed filter and campaign summaries")

	if err := generateCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(generateConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := observability.NewLogger(generateVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	result, err := pipeline.Run(context.Background(), pipeline.RunOptions{
		Config:    cfg,
		OutputDir: generateOutputDir,
		Verbose:   generateVerbose,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	if result.EmptyResult {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: no keywords survived filtering; the campaign is empty. Check min_volume, max_cpc, and excluded_keywords.\n")
	}

	_, _ = fmt.Fprintf(os.Stdout, "Generated campaign with %d ad groups, %d PMax themes, %d shopping recommendations (%d of %d candidates kept)\n",
		len(result.Campaign.AdGroups), len(result.Campaign.PMaxThemes), len(result.Campaign.ShoppingRecommendations),
		result.Report.Output, result.Report.Input)
	for _, file := range result.ExportedFiles {
		_, _ = fmt.Fprintf(os.Stdout, "  wrote %s\n", file)
	}

	return nil
}
