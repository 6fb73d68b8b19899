package main

import (
	"errors"
	"fmt"

	"github.com/d2verb/uqffpub/internal/catalog"
	"github.com/d2verb/uqffpub/internal/config"
	"github.com/d2verb/uqffpub/internal/hub"
	"github.com/d2verb/uqffpub/internal/publish"
)

// Exit codes for CLI commands.
const (
	exitSuccess        = 0
	exitError          = 1
	exitUsage          = 2
	exitAuthFailed     = 3
	exitFolderNotFound = 4
	exitPublishFailed  = 5
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errInvalidArgument(err error) *ExitError {
	return &ExitError{
		Code:    exitUsage,
		Message: err.Error(),
	}
}

func errMissingToken() *ExitError {
	return &ExitError{
		Code:    exitUsage,
		Message: fmt.Sprintf("missing access token.\nPass --token or set %s", config.EnvToken),
	}
}

// exitCodeFor maps a command error to the process exit code.
func exitCodeFor(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var taskErr *publish.TaskError
	switch {
	case catalog.IsNotFound(err):
		return exitUsage
	case hub.IsAuthError(err):
		return exitAuthFailed
	case hub.IsLocalPathError(err):
		return exitFolderNotFound
	case errors.As(err, &taskErr):
		return exitPublishFailed
	default:
		return exitError
	}
}
