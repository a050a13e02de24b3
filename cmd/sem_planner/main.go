// Package main provides the entry point for the SEM campaign planner CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sem_planner",
	Short: "SEM keyword filtering and campaign structuring pipeline",
	Long:  "sem_planner turns seed keywords into a structured paid-search campaign: it generates keyword candidates, filters them by volume, cost, exclusions, and relevance, and clusters the survivors into ad groups, PMax themes, and shopping bid recommendations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
