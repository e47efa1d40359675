// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with codes, severity, and
//              metadata. This provides a structured error handling system that
//              maintains compatibility with Go's standard error interface while
//              adding classification capabilities for library consumers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with structured errors

package error

import (
	"encoding/json"
	"fmt"
	"time"
)

// Error represents a structured error with code, severity, and metadata
type Error struct {
	// Core error information
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	// Context and metadata
	details   map[string]interface{}
	operation string
}

// MaxErrorChainDepth limits the depth of error wrapping to keep error
// chains readable and bounded.
const MaxErrorChainDepth = 15

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:   message,
		code:      CodeUnknown,
		severity:  SeverityMedium,
		timestamp: time.Now(),
		details:   make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context.
// Wrapping a nil error behaves like New.
func Wrap(err error, message string) *Error {
	wrapped := New(message)
	if err == nil {
		return wrapped
	}

	// Refuse to grow unbounded chains; keep the root cause instead
	if getErrorChainDepth(err) >= MaxErrorChainDepth {
		err = getRootCause(err)
	}

	wrapped.cause = err
	if cause, ok := err.(*Error); ok {
		wrapped.code = cause.code
		wrapped.severity = cause.severity
	}
	return wrapped
}

// getErrorChainDepth calculates the depth of an error chain
func getErrorChainDepth(err error) int {
	depth := 0
	current := err
	for current != nil && depth < MaxErrorChainDepth*2 {
		depth++
		if tkErr, ok := current.(*Error); ok {
			current = tkErr.cause
		} else {
			break
		}
	}
	return depth
}

// getRootCause walks to the innermost error of a chain
func getRootCause(err error) error {
	current := err
	for {
		tkErr, ok := current.(*Error)
		if !ok || tkErr.cause == nil {
			return current
		}
		current = tkErr.cause
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code and returns the error for chaining
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithSeverity sets the severity and returns the error for chaining
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a single detail key-value pair
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails merges the given details into the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithOperation records the operation that produced the error
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error was created
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	copied := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		copied[k] = v
	}
	return copied
}

// Operation returns the operation that produced the error
func (e *Error) Operation() string {
	return e.operation
}

// RootCause returns the innermost error of the chain
func (e *Error) RootCause() error {
	if e.cause == nil {
		return e
	}
	return getRootCause(e.cause)
}

// MarshalJSON serializes the error for structured logging and transport
func (e *Error) MarshalJSON() ([]byte, error) {
	payload := map[string]interface{}{
		"message":   e.message,
		"code":      e.code.String(),
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339Nano),
	}
	if e.operation != "" {
		payload["operation"] = e.operation
	}
	if len(e.details) > 0 {
		payload["details"] = e.details
	}
	if e.cause != nil {
		payload["cause"] = e.cause.Error()
	}
	return json.Marshal(payload)
}

// HasCode reports whether err is an *Error carrying the given code
func HasCode(err error, code Code) bool {
	if tkErr, ok := err.(*Error); ok {
		return tkErr.code == code
	}
	return false
}

// GetCode extracts the code from an error, or CodeUnknown for foreign errors
func GetCode(err error) Code {
	if tkErr, ok := err.(*Error); ok {
		return tkErr.code
	}
	return CodeUnknown
}

// GetSeverity extracts the severity from an error, defaulting to medium
func GetSeverity(err error) Severity {
	if tkErr, ok := err.(*Error); ok {
		return tkErr.severity
	}
	return SeverityMedium
}
