package nmasim

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a Parameters field that failed validation.
// Generation never starts from invalid parameters: no random draws are
// made, so a source supplied via WithRand is left untouched.
type ConfigurationError struct {
	Field  string // parameter that failed validation
	Reason string // constraint that was violated
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid parameters: %s: %s", e.Field, e.Reason)
}

// IsConfigurationError reports whether err is, or wraps, a
// ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
