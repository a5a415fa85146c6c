package search

import (
	"errors"
	"syscall"

	"github.com/dzonerzy/go-search/options"
)

// Process exit codes
const (
	ExitSuccess = 0

	// ExitRuntimeError reports at least one I/O error during the search.
	ExitRuntimeError = 1

	// ExitInvalidOptions reports a command line that could not be parsed.
	ExitInvalidOptions = 1

	// ExitNotDirectory reports an input path that is not a directory.
	ExitNotDirectory = 3
)

// ExitError requests a specific exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit"
}

func (e *ExitError) Unwrap() error { return e.Err }

// ExitCode converts the outcome of a run to a process exit code.
// Precedence:
//  1. ExitError (requested code)
//  2. a closed output pipe, which is not a failure
//  3. option errors
//  4. the status itself, or a runtime error for any other error
func ExitCode(status int, err error) int {
	if err == nil {
		return status
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, syscall.EPIPE) {
		return ExitSuccess
	}
	var optErr *options.OptionsError
	if errors.As(err, &optErr) {
		return ExitInvalidOptions
	}
	return ExitRuntimeError
}
