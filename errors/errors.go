// Package errors provides error handling for NodeToCode.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownType) {
//	    // handle unresolvable type identifier
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Type resolution sentinels. The type-identifier grammar surfaces these to
// tool callers, always wrapped with the offending identifier in the message.
// Use errors.Is() for type-safe checks; wrap with errors.Wrap()/Wrapf() to
// add context while preserving the sentinel.
var (
	// ErrUnknownType indicates a type identifier matched no resolution branch
	ErrUnknownType = New("unknown type")

	// ErrMissingSubType indicates a generic category (object, struct, enum, ...)
	// was given without a sub-type identifier
	ErrMissingSubType = New("missing sub-type identifier")

	// ErrMissingKeyType indicates a map container was requested without a key type
	ErrMissingKeyType = New("missing map key type")

	// ErrUnknownContainer indicates an unrecognized container keyword
	ErrUnknownContainer = New("unknown container type")

	// ErrInvalidMapKey indicates the resolved key type has no hash/equality contract
	ErrInvalidMapKey = New("invalid map key type")

	// ErrNotFound indicates a named or path lookup did not resolve
	ErrNotFound = New("not found")
)

// Translation sentinels.
var (
	// ErrUnsupportedGraphKind indicates the host reported a graph kind the
	// translator cannot classify. Fatal for the whole translation.
	ErrUnsupportedGraphKind = New("unsupported graph kind")

	// ErrInvalidRequest indicates a malformed tool request
	ErrInvalidRequest = New("invalid request")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsTypeError reports whether err belongs to the type-resolution taxonomy.
func IsTypeError(err error) bool {
	return err != nil && IsAny(err,
		ErrUnknownType,
		ErrMissingSubType,
		ErrMissingKeyType,
		ErrUnknownContainer,
		ErrInvalidMapKey,
		ErrNotFound,
	)
}

// NewNotFoundError creates a not-found error with a formatted message
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRequest, Newf(format, args...).Error())
}
