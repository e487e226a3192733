// Package errors provides structured, code-tagged errors for tool dispatch.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidInput marks a missing or malformed tool argument.
	CodeInvalidInput Code = "INVALID_INPUT"
	// CodeInvalidIdentifier marks an identifier whose provider tag cannot be routed.
	CodeInvalidIdentifier Code = "INVALID_IDENTIFIER"
	// CodeProviderFailure marks a single upstream provider call that failed.
	CodeProviderFailure Code = "PROVIDER_FAILURE"
	// CodeNotFound marks an id whose provider is known but has no matching entity.
	CodeNotFound Code = "NOT_FOUND"
)

// Sentinels for errors.Is checks; matching is by code only.
var (
	ErrInvalidInput      = New(CodeInvalidInput, "invalid input")
	ErrInvalidIdentifier = New(CodeInvalidIdentifier, "invalid identifier")
	ErrProviderFailure   = New(CodeProviderFailure, "provider failure")
	ErrNotFound          = New(CodeNotFound, "not found")
)
