package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvaibhav/sem-planner/internal/config"
	"github.com/vvaibhav/sem-planner/internal/source"
	"github.com/vvaibhav/sem-planner/internal/types"
)

var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Generate raw keyword candidates from a planner config",
	Long:  "Expands the configured seed keywords, brand, competitor, and service locations into a deterministic set of keyword candidates with estimated search volume and CPC, written as a candidates JSON file.",
	RunE:  runSource,
}

var (
	sourceConfigPath string
	sourceOutput     string
)

func init() {
	sourceCmd.Flags().StringVarP(&sourceConfigPath, "config", "c", "", "Path to planner YAML config file (required)")
	sourceCmd.Flags().StringVarP(&sourceOutput, "out", "o", "", "Path to output candidates JSON file (required)")

	if err := sourceCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}
	if err := sourceCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(sourceCmd)
}

func runSource(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(sourceConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	gen := source.NewGenerator(cfg.Brand.Name, cfg.Competitor.Name, cfg.SeedKeywords, cfg.ServiceLocations)
	candidates := gen.Generate()

	if err := writeJSONArtifact(sourceOutput, types.CandidateSet{Candidates: candidates}, candidatesSchema); err != nil {
		return err
	}

	fmt.Printf("Successfully generated %d candidates to %s\n", len(candidates), sourceOutput)
	return nil
}
