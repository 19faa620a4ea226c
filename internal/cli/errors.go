package cli

import (
	"errors"

	"github.com/YashubuStudio/countdown-solver-go/internal/solver"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// toExitError maps err onto an exit code: 2 for anything the user typed
// wrong, 1 for everything else.
func toExitError(err error) *ExitError {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if errors.Is(err, solver.ErrInvalidTarget) || errors.Is(err, solver.ErrInvalidNumbers) {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	return &ExitError{Code: 1, Message: err.Error()}
}
