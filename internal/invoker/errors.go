package invoker

import (
	"errors"
	"fmt"
)

// ErrToolNotFound indicates the movefmt executable could not be located.
// Resolver failures wrap it so callers can match with errors.Is.
var ErrToolNotFound = errors.New("movefmt executable not found")

// SpawnError indicates the OS refused to create the child process.
type SpawnError struct {
	// Path is the executable that failed to start.
	Path string
	// Err is the underlying OS error.
	Err error
}

// Error implements the error interface.
func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *SpawnError) Unwrap() error { return e.Err }

// ToolExecutionError indicates movefmt ran but exited with a non-zero status.
type ToolExecutionError struct {
	// ExitCode is the child's exit status.
	ExitCode int
	// Stderr is the child's captured stderr, best-effort decoded. Empty
	// when the bytes were not valid UTF-8.
	Stderr string
}

// Error implements the error interface.
func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("formatter exited with status %d: %s", e.ExitCode, e.Stderr)
}

// OutputDecodeError indicates movefmt's stdout was not valid UTF-8.
type OutputDecodeError struct {
	// Detail describes the decode failure.
	Detail string
}

// Error implements the error interface.
func (e *OutputDecodeError) Error() string {
	return fmt.Sprintf("output generated by formatter is not valid utf8: %s", e.Detail)
}
