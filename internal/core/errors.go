package core

import "fmt"

// InputError reports an unusable input source (ex: missing file).
// It surfaces as a one-line message and a non-zero exit code.
type InputError struct {
	Path  string
	Cause error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("unable to read %s: %v", e.Path, e.Cause)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}

// ConfigurationError reports an inconsistency in the rule or template
// tables. It denotes a defect in the configuration, not in the input,
// and must abort the run.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Message
}

func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}
