// File: standards_test.go
// Title: Unit Tests for Standardized Errors
// Description: Tests for standardized error constructors, module code
//              assignment, the fluent builder, and error analysis helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test implementation

package errors

import (
	"errors"
	"testing"

	tkerror "github.com/msto63/textkit/core/error"
)

func TestStandardError(t *testing.T) {
	err := StandardError(ModuleStringx, "truncate", "length out of range")

	if err.Error() != "length out of range" {
		t.Errorf("Error() = %q; want %q", err.Error(), "length out of range")
	}
	if got := GetErrorModule(err); got != ModuleStringx {
		t.Errorf("GetErrorModule() = %q; want %q", got, ModuleStringx)
	}
	if got := GetErrorOperation(err); got != "truncate" {
		t.Errorf("GetErrorOperation() = %q; want %q", got, "truncate")
	}
	if err.Code() != tkerror.Code(CodeStringxLengthExceeded) {
		t.Errorf("Code() = %v; want %v", err.Code(), CodeStringxLengthExceeded)
	}
}

func TestModuleErrorCodes(t *testing.T) {
	tests := []struct {
		name      string
		module    string
		operation string
		expected  string
	}{
		{"stringx truncate", ModuleStringx, "truncate_checked", CodeStringxLengthExceeded},
		{"stringx random", ModuleStringx, "random_string", CodeStringxRandomFailed},
		{"stringx default", ModuleStringx, "between", CodeInvalidInput},
		{"validationx match", ModuleValidationx, "matches_any", CodeValidationxInvalidPattern},
		{"convertx json", ModuleConvertx, "to_json", CodeConvertxEncodingFailed},
		{"convertx yaml", ModuleConvertx, "to_yaml", CodeConvertxEncodingFailed},
		{"contentx rate", ModuleContentx, "reading_time", CodeContentxInvalidRate},
		{"unknown module", "mystery", "op", CodeOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getModuleErrorCode(tt.module, tt.operation); got != tt.expected {
				t.Errorf("getModuleErrorCode(%q, %q) = %q; want %q",
					tt.module, tt.operation, got, tt.expected)
			}
		})
	}
}

func TestModuleErrorWrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := ModuleError(ModuleConvertx, "to_json", cause, map[string]interface{}{"value_type": "chan int"})

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false; want true")
	}
	if !IsModuleError(err, ModuleConvertx) {
		t.Error("IsModuleError(err, convertx) = false; want true")
	}
	if IsModuleError(err, ModuleStringx) {
		t.Error("IsModuleError(err, stringx) = true; want false")
	}
	if err.Details()["value_type"] != "chan int" {
		t.Errorf("details[value_type] = %v; want chan int", err.Details()["value_type"])
	}
}

func TestInputError(t *testing.T) {
	err := InputError(ModuleContentx, "reading_time", 0, "positive words-per-minute rate")

	if err.Code() != tkerror.CodeInvalidInput {
		t.Errorf("Code() = %v; want %v", err.Code(), tkerror.CodeInvalidInput)
	}
	if err.Details()["expected"] != "positive words-per-minute rate" {
		t.Errorf("details[expected] = %v", err.Details()["expected"])
	}
}

func TestErrorBuilder(t *testing.T) {
	cause := errors.New("entropy exhausted")
	err := NewErrorBuilder(ModuleStringx).
		Operation("random_string").
		Cause(cause).
		Detail("length", 32).
		Severity(tkerror.SeverityHigh).
		Build()

	if !errors.Is(err, cause) {
		t.Error("built error lost its cause")
	}
	if err.Severity() != tkerror.SeverityHigh {
		t.Errorf("Severity() = %v; want %v", err.Severity(), tkerror.SeverityHigh)
	}
	// Code auto-derived from module and operation
	if err.Code() != tkerror.Code(CodeStringxRandomFailed) {
		t.Errorf("Code() = %v; want %v", err.Code(), CodeStringxRandomFailed)
	}
	// Message auto-generated
	if got := err.Error(); got != "stringx.random_string failed: entropy exhausted" {
		t.Errorf("Error() = %q", got)
	}
}

func TestAnalysisOnForeignError(t *testing.T) {
	plain := errors.New("plain")

	if IsModuleError(plain, ModuleStringx) {
		t.Error("IsModuleError(plain) = true; want false")
	}
	if GetErrorModule(plain) != "" {
		t.Errorf("GetErrorModule(plain) = %q; want empty", GetErrorModule(plain))
	}
	if GetErrorOperation(plain) != "" {
		t.Errorf("GetErrorOperation(plain) = %q; want empty", GetErrorOperation(plain))
	}
}

func TestConvenienceConstructors(t *testing.T) {
	verr := StringxValidationError("validate_length", "ab", "at least 3 characters")
	if !IsModuleError(verr, ModuleStringx) {
		t.Error("StringxValidationError not tagged with stringx module")
	}
	if verr.Severity() != tkerror.SeverityLow {
		t.Errorf("Severity() = %v; want %v", verr.Severity(), tkerror.SeverityLow)
	}

	eerr := ConvertxEncodingError("to_json", make(chan int), errors.New("unsupported type"))
	if eerr.Code() != tkerror.Code(CodeConvertxEncodingFailed) {
		t.Errorf("Code() = %v; want %v", eerr.Code(), CodeConvertxEncodingFailed)
	}
	if eerr.Details()["value_type"] != "chan int" {
		t.Errorf("details[value_type] = %v; want chan int", eerr.Details()["value_type"])
	}

	perr := ValidationxPatternError("matches_any", "admin.*")
	if perr.Details()["pattern"] != "admin.*" {
		t.Errorf("details[pattern] = %v; want admin.*", perr.Details()["pattern"])
	}
}
