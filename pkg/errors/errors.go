// Package errors provides typed errors for the provisioner.
//
// Every failure surfaced to the operator carries a code from codes.go. Fatal
// errors terminate the process with exit code 1; recoverable errors (status
// queries) are printed and control returns to the menu loop.
package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors for quick checks
var (
	// ErrNotRoot is returned when the process is not running as root.
	ErrNotRoot = errors.New("must be run as root")

	// ErrCommandMissing is returned when a required external command is not on PATH.
	ErrCommandMissing = errors.New("command not found")

	// ErrInvalidInput is returned when operator input is invalid.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotRunning is returned when the node container is not running.
	ErrNotRunning = errors.New("service not running")

	// ErrNullResult is returned when an RPC call yields an empty or null result.
	ErrNullResult = errors.New("empty or null RPC result")
)

// Error is the base interface for all typed errors in the provisioner.
type Error interface {
	error
	// Code returns the error code
	Code() string
	// Message returns the human-readable error message
	Message() string
	// Unwrap returns the underlying cause
	Unwrap() error
}

// BaseError provides a foundation for all typed errors.
type BaseError struct {
	code    string
	message string
	cause   error
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Code returns the error code.
func (e *BaseError) Code() string {
	return e.code
}

// Message returns the error message.
func (e *BaseError) Message() string {
	return e.message
}

// Unwrap returns the underlying cause.
func (e *BaseError) Unwrap() error {
	return e.cause
}

// PrivilegeError represents a missing-privileges failure at startup.
type PrivilegeError struct {
	*BaseError
}

// NewPrivilegeError creates a new PrivilegeError.
func NewPrivilegeError(message string, cause error) *PrivilegeError {
	return &PrivilegeError{
		BaseError: &BaseError{
			code:    CodePrivilege,
			message: message,
			cause:   cause,
		},
	}
}

// DependencyInstallError represents a package-manager or install-script failure.
type DependencyInstallError struct {
	*BaseError
	Dependency string
}

// NewDependencyInstallError creates a new DependencyInstallError.
func NewDependencyInstallError(dependency, message string, cause error) *DependencyInstallError {
	return &DependencyInstallError{
		BaseError: &BaseError{
			code:    CodeDependencyInstall,
			message: message,
			cause:   cause,
		},
		Dependency: dependency,
	}
}

// ValidationError represents malformed operator input.
type ValidationError struct {
	*BaseError
	Field string
	Value string
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		BaseError: &BaseError{
			code:    CodeValidation,
			message: message,
		},
		Field: field,
		Value: value,
	}
}

// Error includes the offending field for validation errors.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.BaseError.Error())
	}
	return e.BaseError.Error()
}

// LaunchError represents a failed service start after all fallbacks.
type LaunchError struct {
	*BaseError
	Hint string
}

// NewLaunchError creates a new LaunchError with a log-inspection hint.
func NewLaunchError(message, hint string, cause error) *LaunchError {
	return &LaunchError{
		BaseError: &BaseError{
			code:    CodeLaunch,
			message: message,
			cause:   cause,
		},
		Hint: hint,
	}
}

// QueryError represents a recoverable status-check failure.
type QueryError struct {
	*BaseError
	Method string
}

// NewQueryError creates a new QueryError for an RPC method.
func NewQueryError(method, message string, cause error) *QueryError {
	return &QueryError{
		BaseError: &BaseError{
			code:    CodeQuery,
			message: message,
			cause:   cause,
		},
		Method: method,
	}
}

// InternalError represents an unexpected internal failure.
type InternalError struct {
	*BaseError
}

// NewInternalError creates a new InternalError.
func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		BaseError: &BaseError{
			code:    CodeInternal,
			message: message,
			cause:   cause,
		},
	}
}
