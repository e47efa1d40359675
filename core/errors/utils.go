// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides common error handling utilities and per-module
//              convenience constructors used across all textkit packages
//              for consistent error patterns.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation of shared error utilities

package errors

import (
	"fmt"

	tkerror "github.com/msto63/textkit/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  tkerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: tkerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity tkerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *tkerror.Error {
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *tkerror.Error
	if eb.cause != nil {
		err = tkerror.Wrap(eb.cause, eb.message)
	} else {
		err = tkerror.New(eb.message)
	}

	return err.
		WithCode(tkerror.Code(eb.code)).
		WithOperation(eb.operation).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS FOR ALL textkit MODULES
// =============================================================================
// These functions provide a consistent interface for creating errors across
// all textkit packages. Use these instead of fmt.Errorf() or errors.New()

// StringxValidationError creates a validation error for the stringx module
func StringxValidationError(operation, input, expected string) *tkerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Messagef("stringx.%s: validation failed", operation).
		Detail("input", input).
		Detail("expected", expected).
		Severity(tkerror.SeverityLow).
		Build()
}

// StringxInvalidInput creates an invalid input error for the stringx module
func StringxInvalidInput(operation string, input interface{}) *tkerror.Error {
	return InputError(ModuleStringx, operation, input, "valid input parameters")
}

// StringxRandomError wraps a failure of the secure random source
func StringxRandomError(operation string, cause error) *tkerror.Error {
	return NewErrorBuilder(ModuleStringx).
		Operation(operation).
		Message("secure random source unavailable").
		Cause(cause).
		Code(CodeStringxRandomFailed).
		Severity(tkerror.SeverityHigh).
		Build()
}

// ConvertxEncodingError creates an encoding failure error for the convertx module
func ConvertxEncodingError(operation string, value interface{}, cause error) *tkerror.Error {
	return NewErrorBuilder(ModuleConvertx).
		Operation(operation).
		Messagef("convertx.%s: value cannot be encoded", operation).
		Cause(cause).
		Code(CodeConvertxEncodingFailed).
		Detail("value_type", fmt.Sprintf("%T", value)).
		Severity(tkerror.SeverityLow).
		Build()
}

// ContentxInputError creates an invalid input error for the contentx module
func ContentxInputError(operation string, input interface{}, expected string) *tkerror.Error {
	return InputError(ModuleContentx, operation, input, expected)
}

// ValidationxPatternError creates an invalid pattern error for the validationx module
func ValidationxPatternError(operation, pattern string) *tkerror.Error {
	return NewErrorBuilder(ModuleValidationx).
		Operation(operation).
		Messagef("validationx.%s: invalid pattern", operation).
		Code(CodeValidationxInvalidPattern).
		Detail("pattern", pattern).
		Severity(tkerror.SeverityLow).
		Build()
}
