// File: internal/apperr/errors.go
package apperr

import (
	"errors"
	"fmt"
)

// This file defines the closed set of classified errors surfaced to the user. Callers
// classify failures with errors.As / errors.Is against a Kind instead of matching the
// text of whatever the upstream service returned.

// Kind tags a classified error.
type Kind int

const (
	// Unknown is returned by KindOf for errors that were never classified.
	Unknown Kind = iota
	MissingPrompt
	UnknownTaskKind
	ConfigurationError
	RateLimitExceeded
	InvalidAPIKey
	AccessDenied
	EmptyResponse
	GenerationFailed
	Timeout
)

var kindNames = map[Kind]string{
	Unknown:            "Unknown",
	MissingPrompt:      "MissingPrompt",
	UnknownTaskKind:    "UnknownTaskKind",
	ConfigurationError: "ConfigurationError",
	RateLimitExceeded:  "RateLimitExceeded",
	InvalidAPIKey:      "InvalidAPIKey",
	AccessDenied:       "AccessDenied",
	EmptyResponse:      "EmptyResponse",
	GenerationFailed:   "GenerationFailed",
	Timeout:            "Timeout",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a classified error carrying a human-readable message.
type Error struct {
	Kind    Kind
	Message string
	Err     error // Underlying cause, if any.
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap provides the underlying error for use with errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match against another *Error of the same Kind, so sentinel-style
// comparisons like errors.Is(err, apperr.New(apperr.EmptyResponse, "")) work.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New creates a classified error with the given message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a classified error around an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the Kind of the first classified error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// IsConfiguration reports whether err stems from missing or invalid configuration.
func IsConfiguration(err error) bool {
	return KindOf(err) == ConfigurationError
}

// IsUsage reports whether err is caused by how the command was invoked.
func IsUsage(err error) bool {
	switch KindOf(err) {
	case MissingPrompt, UnknownTaskKind:
		return true
	}
	return false
}
