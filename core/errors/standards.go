// File: standards.go
// Title: Error Standards for textkit
// Description: Provides standardized error handling patterns and codes for all
//              textkit packages to ensure consistency and enable structured
//              error analysis by consumers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation for error standardization

package errors

import (
	"fmt"
	"strings"

	tkerror "github.com/msto63/textkit/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx     = "stringx"
	ModuleValidationx = "validationx"
	ModuleConvertx    = "convertx"
	ModuleContentx    = "contentx"
)

// Standardized error codes for all modules
const (
	// Common error codes
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeOperationFailed = "OPERATION_FAILED"

	// Module-specific error codes - stringx
	CodeStringxInvalidFormat   = "STRINGX_INVALID_FORMAT"
	CodeStringxLengthExceeded  = "STRINGX_LENGTH_EXCEEDED"
	CodeStringxRandomFailed    = "STRINGX_RANDOM_FAILED"
	CodeStringxOperationFailed = "STRINGX_OPERATION_FAILED"

	// Module-specific error codes - validationx
	CodeValidationxInvalidPattern  = "VALIDATIONX_INVALID_PATTERN"
	CodeValidationxOperationFailed = "VALIDATIONX_OPERATION_FAILED"

	// Module-specific error codes - convertx
	CodeConvertxEncodingFailed  = "CONVERTX_ENCODING_FAILED"
	CodeConvertxOperationFailed = "CONVERTX_OPERATION_FAILED"

	// Module-specific error codes - contentx
	CodeContentxInvalidRate     = "CONTENTX_INVALID_RATE"
	CodeContentxOperationFailed = "CONTENTX_OPERATION_FAILED"
)

// StandardError creates a standardized error with module context
func StandardError(module, operation, message string) *tkerror.Error {
	return tkerror.New(message).
		WithCode(tkerror.Code(getModuleErrorCode(module, operation))).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
		}).
		WithSeverity(tkerror.SeverityMedium)
}

// ModuleError creates an error specific to a module operation
func ModuleError(module, operation string, cause error, details map[string]interface{}) *tkerror.Error {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["module"] = module
	details["operation"] = operation

	code := tkerror.Code(getModuleErrorCode(module, operation))

	if cause != nil {
		return tkerror.Wrap(cause, fmt.Sprintf("%s.%s failed", module, operation)).
			WithCode(code).
			WithOperation(operation).
			WithDetails(details).
			WithSeverity(tkerror.SeverityMedium)
	}

	return tkerror.New(fmt.Sprintf("%s.%s failed", module, operation)).
		WithCode(code).
		WithOperation(operation).
		WithDetails(details).
		WithSeverity(tkerror.SeverityMedium)
}

// ValidationError creates a standardized validation error
func ValidationError(module, field string, value interface{}, message string) *tkerror.Error {
	return tkerror.New(message).
		WithCode(tkerror.Code(fmt.Sprintf("%s_VALIDATION_FAILED", strings.ToUpper(module)))).
		WithDetails(map[string]interface{}{
			"module": module,
			"field":  field,
			"value":  value,
		}).
		WithSeverity(tkerror.SeverityLow)
}

// InputError creates a standardized input validation error
func InputError(module, operation string, input interface{}, expected string) *tkerror.Error {
	return tkerror.New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(tkerror.Code(CodeInvalidInput)).
		WithOperation(operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		}).
		WithSeverity(tkerror.SeverityMedium)
}

// OperationError creates a standardized operation failure error
func OperationError(module, operation string, cause error, context map[string]interface{}) *tkerror.Error {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["module"] = module
	context["operation"] = operation

	return tkerror.Wrap(cause, fmt.Sprintf("%s.%s operation failed", module, operation)).
		WithCode(tkerror.Code(getOperationErrorCode(module))).
		WithOperation(operation).
		WithDetails(context).
		WithSeverity(tkerror.SeverityHigh)
}

// getModuleErrorCode returns the appropriate error code for a module operation
func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleStringx:
		return getStringxErrorCode(operation)
	case ModuleValidationx:
		return getValidationxErrorCode(operation)
	case ModuleConvertx:
		return getConvertxErrorCode(operation)
	case ModuleContentx:
		return getContentxErrorCode(operation)
	default:
		return CodeOperationFailed
	}
}

func getStringxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "format"):
		return CodeStringxInvalidFormat
	case strings.Contains(operation, "length") || strings.Contains(operation, "truncate"):
		return CodeStringxLengthExceeded
	case strings.Contains(operation, "random"):
		return CodeStringxRandomFailed
	default:
		return CodeInvalidInput
	}
}

func getValidationxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "pattern") || strings.Contains(operation, "match"):
		return CodeValidationxInvalidPattern
	default:
		return CodeValidationxOperationFailed
	}
}

func getConvertxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "json") || strings.Contains(operation, "yaml") ||
		strings.Contains(operation, "toml") || strings.Contains(operation, "encode"):
		return CodeConvertxEncodingFailed
	default:
		return CodeConvertxOperationFailed
	}
}

func getContentxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "reading") || strings.Contains(operation, "rate"):
		return CodeContentxInvalidRate
	default:
		return CodeContentxOperationFailed
	}
}

func getOperationErrorCode(module string) string {
	switch module {
	case ModuleStringx:
		return CodeStringxOperationFailed
	case ModuleValidationx:
		return CodeValidationxOperationFailed
	case ModuleConvertx:
		return CodeConvertxOperationFailed
	case ModuleContentx:
		return CodeContentxOperationFailed
	default:
		return CodeOperationFailed
	}
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	if tkErr, ok := err.(*tkerror.Error); ok {
		if details := tkErr.Details(); details != nil {
			if mod, exists := details["module"]; exists {
				return mod == module
			}
		}
	}
	return false
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	if tkErr, ok := err.(*tkerror.Error); ok {
		if mod, ok := tkErr.Details()["module"].(string); ok {
			return mod
		}
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	if tkErr, ok := err.(*tkerror.Error); ok {
		if op, ok := tkErr.Details()["operation"].(string); ok {
			return op
		}
	}
	return ""
}
