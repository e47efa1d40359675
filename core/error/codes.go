// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the textkit library. These codes enable structured error
//              handling and error analysis in consuming applications.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the textkit library
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Text processing
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeInvalidLength   Code = "INVALID_LENGTH"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"
	CodeEncodingFailed  Code = "ENCODING_FAILED"
	CodeRandomSource    Code = "RANDOM_SOURCE"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidPattern   Code = "INVALID_PATTERN"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}
