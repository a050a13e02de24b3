package scoring

import "fmt"

// ScoreError represents a failure to evaluate a single term.
type ScoreError struct {
	Term    string
	Message string
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("scoring failed for %q: %s", e.Term, e.Message)
}
