// Package errors defines custom error types for TMDB lookups.
// FindError classifies why a lookup produced no result.
package errors

import (
	stderrors "errors"
	"fmt"
)

// FindError represents a failed /find lookup.
type FindError struct {
	Kind       string
	StatusCode int
	Message    string
	Cause      error
}

func (e *FindError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *FindError) Unwrap() error {
	return e.Cause
}

// Is matches another FindError of the same kind.
func (e *FindError) Is(target error) bool {
	t, ok := target.(*FindError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Error kind constants
const (
	ErrorTypeRemote    = "REMOTE_ERROR"
	ErrorTypeTransport = "TRANSPORT_ERROR"
	ErrorTypeParse     = "PARSE_ERROR"
)

// Sentinels usable with errors.Is.
var (
	ErrRemote    = &FindError{Kind: ErrorTypeRemote}
	ErrTransport = &FindError{Kind: ErrorTypeTransport}
	ErrParse     = &FindError{Kind: ErrorTypeParse}
)

// NewFindError creates a new FindError
func NewFindError(kind, message string, cause error) *FindError {
	return &FindError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// NewRemoteError creates an error for a non-200 answer from TMDB
func NewRemoteError(statusCode int) *FindError {
	return &FindError{
		Kind:       ErrorTypeRemote,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("TMDB API error: status %d", statusCode),
	}
}

// NewTransportError creates an error for a request that never got a response
func NewTransportError(message string, cause error) *FindError {
	return NewFindError(ErrorTypeTransport, message, cause)
}

// NewParseError creates an error for a body that could not be decoded
func NewParseError(message string, cause error) *FindError {
	return NewFindError(ErrorTypeParse, message, cause)
}

// StatusCode returns the remote status carried by err, or 0.
func StatusCode(err error) int {
	var fe *FindError
	if stderrors.As(err, &fe) {
		return fe.StatusCode
	}
	return 0
}
