package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactStepConstants(t *testing.T) {
	// Verify step constants are defined
	steps := []string{
		StepCandidates,
		StepFilterReport,
		StepCampaign,
	}

	for _, step := range steps {
		assert.NotEmpty(t, step, "step constant should not be empty")
	}
}

func TestRunStatusConstants(t *testing.T) {
	assert.Equal(t, "running", StatusRunning)
	assert.Equal(t, "completed", StatusCompleted)
	assert.Equal(t, "failed", StatusFailed)
}

func TestRunType(t *testing.T) {
	// Verify Run struct can be instantiated
	run := Run{
		Brand:      "NutriBlend",
		Competitor: "PowerMix",
		Status:     StatusRunning,
	}

	assert.Equal(t, "NutriBlend", run.Brand)
	assert.Equal(t, "PowerMix", run.Competitor)
	assert.Equal(t, "running", run.Status)
	assert.Nil(t, run.CompletedAt)
}
