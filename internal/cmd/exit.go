// Package cmd provides CLI command implementations.
package cmd

import (
	"errors"

	xerrors "github.com/extstrap/cli/internal/errors"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully. User
	// cancellation of the prompt flow also exits with this code.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates input or manifest validation failed.
	ExitValidationError = 2

	// ExitGitError indicates the git repository is missing or misconfigured.
	ExitGitError = 3

	// ExitExternalError indicates an external command exited non-zero.
	ExitExternalError = 4

	// ExitNotFound indicates a required file was not found.
	ExitNotFound = 5
)

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *xerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, xerrors.ErrCancelled):
		return ExitSuccess
	case errors.Is(err, xerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, xerrors.ErrGit):
		return ExitGitError
	case errors.Is(err, xerrors.ErrExternal):
		return ExitExternalError
	case errors.Is(err, xerrors.ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}
