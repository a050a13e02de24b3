package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vvaibhav/sem-planner/internal/schemas"
	"github.com/vvaibhav/sem-planner/internal/types"
)

// Relative schema paths, resolved against the working directory.
const (
	candidatesSchema = "schemas/keyword_candidates.schema.json"
	campaignSchema   = "schemas/campaign.schema.json"
)

// writeJSONArtifact marshals v with indentation, writes it to path, and
// validates the result against the named schema. Validation is a safety
// check, not a requirement; failures are reported but never fatal.
func writeJSONArtifact(path string, v any, schemaRel string) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	if schemaRel != "" {
		if schemaPath := schemas.ResolveSchemaPath(schemaRel); schemaPath != "" {
			if err := schemas.ValidateJSON(schemaPath, path); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
			}
		}
	}

	return nil
}

// readCandidates loads a candidates JSON file.
func readCandidates(path string) ([]types.KeywordCandidate, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidates file %s: %w", path, err)
	}

	var set types.CandidateSet
	if err := json.Unmarshal(content, &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal candidates JSON: %w", err)
	}
	return set.Candidates, nil
}

// readCampaign loads a campaign JSON file.
func readCampaign(path string) (*types.Campaign, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read campaign file %s: %w", path, err)
	}

	var c types.Campaign
	if err := json.Unmarshal(content, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal campaign JSON: %w", err)
	}
	return &c, nil
}
