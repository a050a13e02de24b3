// Package filtering applies volume, CPC, exclusion, and relevance rules to
// raw keyword candidates, producing a reduced, deduplicated set.
package filtering

import "fmt"

// RuleError reports an invalid FilterRules configuration. The pipeline does
// not run when rule validation fails.
type RuleError struct {
	Field   string
	Message string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("invalid filter rules: %s: %s", e.Field, e.Message)
}
