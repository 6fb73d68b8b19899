package catalog

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a manifest file does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("manifest %s not found", e.Path)
}

// IsNotFound reports whether err indicates a missing manifest.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ParseError indicates a manifest could not be parsed or is invalid.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
