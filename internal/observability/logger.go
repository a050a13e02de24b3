// Package observability provides structured logging and formatted verbose
// output for the planner CLI.
package observability

import "go.uber.org/zap"

// NewLogger builds the pipeline logger. Verbose mode uses zap's development
// config (human-readable, debug level); otherwise the production config
// (JSON, info level) is used.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
