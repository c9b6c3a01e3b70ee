package cli

import (
	"errors"

	"github.com/alterxyz/gotelegraph/pkg/telegraph"
)

// Exit codes for gotelegraph, following the sysexits convention.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a general failure.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitAPIError indicates the Telegraph API rejected a request.
	ExitAPIError = 69

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromError maps an error returned by command execution to an exit
// code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var apiErr *telegraph.APIError
	if errors.As(err, &apiErr) {
		return ExitAPIError
	}

	if errors.Is(err, telegraph.ErrInvalidPath) || errors.Is(err, telegraph.ErrEmptyTitle) {
		return ExitInvalidUsage
	}

	return ExitFailure
}
