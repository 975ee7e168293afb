package domain

import (
	"errors"
	"fmt"
)

// ErrStorageUnavailable means the embedded database could not be opened.
// Fatal for the whole session; everything else is recoverable.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ValidationError reports rejected user input. The operation is aborted
// before any write happens.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ParseError reports a malformed import document. Nothing is written when
// parsing fails.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "invalid document: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// IsParse reports whether err is a ParseError.
func IsParse(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
