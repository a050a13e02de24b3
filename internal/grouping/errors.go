package grouping

import "fmt"

// ConfigError reports an invalid grouping configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid grouping config: %s: %s", e.Field, e.Message)
}
