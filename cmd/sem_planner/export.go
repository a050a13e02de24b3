package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvaibhav/sem-planner/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export campaign deliverables as CSV tables",
	Long:  "Writes the ad group, PMax theme, and shopping bid tables of a campaign JSON file as CSV files in the output directory.",
	RunE:  runExport,
}

var (
	exportInput     string
	exportOutputDir string
)

func init() {
	exportCmd.Flags().StringVarP(&exportInput, "campaign", "i", "", "Path to input campaign JSON file (required)")
	exportCmd.Flags().StringVarP(&exportOutputDir, "out-dir", "o", "", "Directory to write CSV files into (required)")

	if err := exportCmd.MarkFlagRequired("campaign"); err != nil {
		panic(fmt.Sprintf("failed to mark campaign flag as required: %v", err))
	}
	if err := exportCmd.MarkFlagRequired("out-dir"); err != nil {
		panic(fmt.Sprintf("failed to mark out-dir flag as required: %v", err))
	}

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	plan, err := readCampaign(exportInput)
	if err != nil {
		return err
	}

	sink, err := export.NewCSVDirectory(exportOutputDir)
	if err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	files, err := export.NewExporter(sink).Export(plan)
	if err != nil {
		return fmt.Errorf("failed to export campaign: %w", err)
	}

	for _, file := range files {
		fmt.Printf("  wrote %s\n", file)
	}
	fmt.Printf("Successfully exported campaign from %s\n", exportInput)
	return nil
}
