package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the suite
// runner. These codes are used to signal the outcome of the program execution
// to the OS. The bare kernel binaries have no failure path and always exit 0.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the run timed out.
	ExitErrorMismatch = 3   // Indicates a kernel produced output differing from its golden value.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the run was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
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

// BenchmarkError encapsulates a benchmark run failure while preserving the
// original cause. This allows for structured error handling and inspection of
// what went wrong during the run.
type BenchmarkError struct {
	// Bench is the name of the benchmark that failed.
	Bench string
	// Cause is the underlying error that triggered this failure.
	Cause error
}

// Error returns a message naming the benchmark and the underlying cause.
func (e BenchmarkError) Error() string {
	return fmt.Sprintf("benchmark %q: %v", e.Bench, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e BenchmarkError) Unwrap() error { return e.Cause }

// TimeoutError represents a run timeout. It captures the operation name and
// the duration limit that was exceeded.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was considered timed out.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
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

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ColorProvider supplies ANSI color codes to the error handler without
// coupling this package to the UI layer.
type ColorProvider interface {
	Red() string
	Yellow() string
	Reset() string
}

// HandleRunError reports a failed run to the user and maps the error to the
// corresponding exit code.
//
// Parameters:
//   - err: The error that terminated the run.
//   - limit: The configured timeout, used to phrase deadline messages.
//   - out: The writer for the user-facing message.
//   - colors: The color provider for highlighting.
//
// Returns:
//   - int: The exit code matching the error class.
func HandleRunError(err error, limit time.Duration, out io.Writer, colors ColorProvider) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintf(out, "%sRun aborted: timed out after %s.%s\n", colors.Red(), limit, colors.Reset())
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sRun canceled by user.%s\n", colors.Yellow(), colors.Reset())
		return ExitErrorCanceled
	case err == nil:
		return ExitSuccess
	default:
		fmt.Fprintf(out, "%sRun failed: %v%s\n", colors.Red(), err, colors.Reset())
		return ExitErrorGeneric
	}
}
