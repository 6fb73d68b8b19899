package hub

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized indicates a missing, invalid or expired token.
	ErrUnauthorized = errors.New("authentication failed")
	// ErrForbidden indicates the token may not perform the operation,
	// including quota denials.
	ErrForbidden = errors.New("permission denied")
)

// IsAuthError reports whether err is an authentication or permission failure.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden)
}

// NotFoundError indicates the repository does not exist or is not visible.
type NotFoundError struct {
	RepoID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("repository not found: %s", e.RepoID)
}

// ConflictError indicates the repository already exists.
type ConflictError struct {
	RepoID  string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("repository %s already exists: %s", e.RepoID, e.Message)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// APIError is any other non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("hub returned status %d: %s", e.StatusCode, e.Message)
}

// NetworkError wraps a transport failure.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// LocalPathError indicates the folder to upload is missing or unreadable.
type LocalPathError struct {
	Path string
	Err  error
}

func (e *LocalPathError) Error() string {
	return fmt.Sprintf("local folder %s: %v", e.Path, e.Err)
}

func (e *LocalPathError) Unwrap() error {
	return e.Err
}

// IsLocalPathError reports whether err is a LocalPathError.
func IsLocalPathError(err error) bool {
	var lp *LocalPathError
	return errors.As(err, &lp)
}
