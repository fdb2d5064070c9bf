// Package errors provides error handling for Railyard.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints for remediation guidance
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
//	// Add hints for users
//	return errors.WithHint(err, "install Docker Desktop and start the daemon")
//
//	// Check errors
//	if errors.Is(err, errors.ErrTargetExists) {
//	    // handle existing directory
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
	Is           = crdb.Is
	IsAny        = crdb.IsAny
	As           = crdb.As
	Unwrap       = crdb.Unwrap
	UnwrapAll    = crdb.UnwrapAll
	GetAllHints  = crdb.GetAllHints
	FlattenHints = crdb.FlattenHints
)

// Run-level sentinel errors. Every failure path in a generation run wraps
// exactly one of these; the CLI maps them to exit behavior.
// Use with errors.Is() for type-safe checking; wrap with errors.Wrap()
// to add context while preserving the type.
var (
	// ErrInvalidArgument indicates bad flags or a malformed project name.
	// No side effects have happened yet when this is returned.
	ErrInvalidArgument = New("invalid argument")

	// ErrEnvironmentUnavailable indicates a missing or unreachable external
	// tool, or an unsupported host platform.
	ErrEnvironmentUnavailable = New("environment unavailable")

	// ErrTargetExists indicates the project directory already exists.
	// Detected before anything is written.
	ErrTargetExists = New("target directory exists")

	// ErrGenerationFailure indicates an external generator exited non-zero.
	// The partially generated output has been removed.
	ErrGenerationFailure = New("external generation failed")

	// ErrPatchFailure indicates a post-generation rewrite could not find its
	// target file or anchor.
	ErrPatchFailure = New("post-generation patch failed")
)

// IsInvalidArgument checks if an error is or wraps ErrInvalidArgument
func IsInvalidArgument(err error) bool {
	return err != nil && Is(err, ErrInvalidArgument)
}

// IsEnvironmentUnavailable checks if an error is or wraps ErrEnvironmentUnavailable
func IsEnvironmentUnavailable(err error) bool {
	return err != nil && Is(err, ErrEnvironmentUnavailable)
}

// IsTargetExists checks if an error is or wraps ErrTargetExists
func IsTargetExists(err error) bool {
	return err != nil && Is(err, ErrTargetExists)
}

// IsGenerationFailure checks if an error is or wraps ErrGenerationFailure
func IsGenerationFailure(err error) bool {
	return err != nil && Is(err, ErrGenerationFailure)
}

// IsPatchFailure checks if an error is or wraps ErrPatchFailure
func IsPatchFailure(err error) bool {
	return err != nil && Is(err, ErrPatchFailure)
}

// NewInvalidArgument creates an invalid-argument error with a formatted message
func NewInvalidArgument(format string, args ...interface{}) error {
	return Wrap(ErrInvalidArgument, Newf(format, args...).Error())
}

// NewPatchFailure creates a patch-failure error naming the failing step
func NewPatchFailure(step string, err error) error {
	return Wrap(Wrap(ErrPatchFailure, step), err.Error())
}
