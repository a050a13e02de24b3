package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvaibhav/sem-planner/internal/campaign"
	"github.com/vvaibhav/sem-planner/internal/config"
	"github.com/vvaibhav/sem-planner/internal/grouping"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a campaign from filtered keyword candidates",
	Long:  "Clusters filtered keyword candidates into ad groups, PMax themes, and shopping bid recommendations, and assembles them into a campaign JSON file.",
	RunE:  runBuild,
}

var (
	buildConfigPath string
	buildInput      string
	buildOutput     string
)

func init() {
	buildCmd.Flags().StringVarP(&buildConfigPath, "config", "c", "", "Path to planner YAML config file (required)")
	buildCmd.Flags().StringVarP(&buildInput, "candidates", "i", "", "Path to input filtered candidates JSON file (required)")
	buildCmd.Flags().StringVarP(&buildOutput, "out", "o", "", "Path to output campaign JSON file (required)")

	if err := buildCmd.MarkFlagRequired("config"); err != nil {
		panic(fmt.Sprintf("failed to mark config flag as required: %v", err))
	}
	if err := buildCmd.MarkFlagRequired("candidates"); err != nil {
		panic(fmt.Sprintf("failed to mark candidates flag as required: %v", err))
	}
	if err := buildCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(buildCmd)
}

func runBuild(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(buildConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	candidates, err := readCandidates(buildInput)
	if err != nil {
		return err
	}

	grouped, err := grouping.Group(candidates, cfg.GroupingConfig())
	if err != nil {
		return fmt.Errorf("failed to group keywords: %w", err)
	}

	plan := campaign.Assemble(grouped.AdGroups, grouped.PMaxThemes, grouped.ShoppingRecommendations,
		campaign.Meta{Summary: cfg.Summary()})

	if err := writeJSONArtifact(buildOutput, plan, campaignSchema); err != nil {
		return err
	}

	fmt.Printf("Successfully built campaign with %d ad groups to %s\n", len(plan.AdGroups), buildOutput)
	return nil
}
