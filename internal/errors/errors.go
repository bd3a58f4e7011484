package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorMismatch = 3   // Indicates disagreeing computation paths.
	ExitErrorConfig   = 4   // Indicates a configuration or input error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError encapsulates a calculation error while preserving the
// original cause, together with the n being computed when it failed.
type CalculationError struct {
	// N is the partition parameter being computed.
	N int
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the cause message prefixed with n.
func (e CalculationError) Error() string {
	return fmt.Sprintf("n=%d: %v", e.N, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// InconsistencyError reports two computation paths that disagree on the same
// n. It is a diagnostic: callers decide whether it is fatal.
type InconsistencyError struct {
	// N is the partition parameter on which the paths disagree.
	N int
	// Method and Got identify the path under test and its value.
	Method string
	Got    int
	// Reference and Want identify the reference path and its value.
	Reference string
	Want      int
}

// Error returns a formatted message naming n and both values.
func (e InconsistencyError) Error() string {
	return fmt.Sprintf("inconsistency at n=%d: %s=%d, %s=%d", e.N, e.Method, e.Got, e.Reference, e.Want)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code.
func ExitCodeFor(err error) int {
	var (
		configErr       ConfigError
		validationErr   ValidationError
		inconsistentErr InconsistencyError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		return ExitErrorCanceled
	case errors.As(err, &configErr), errors.As(err, &validationErr):
		return ExitErrorConfig
	case errors.As(err, &inconsistentErr):
		return ExitErrorMismatch
	default:
		return ExitErrorGeneric
	}
}

// HandleCalculationError writes err to out and returns its exit code.
func HandleCalculationError(err error, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}
	if IsContextError(err) {
		fmt.Fprintf(out, "Calculation canceled: %v\n", err)
	} else {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return ExitCodeFor(err)
}
