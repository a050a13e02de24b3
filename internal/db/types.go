package db

import (
	"time"

	"github.com/google/uuid"
)

// Run represents a planner run record
type Run struct {
	ID          uuid.UUID  `json:"id"`
	Brand       string     `json:"brand"`
	Competitor  string     `json:"competitor"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Run status values
const (
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Artifact step constants for known artifact types
const (
	StepCandidates   = "candidates"
	StepFilterReport = "filter_report"
	StepCampaign     = "campaign"
)
