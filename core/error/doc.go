// File: doc.go
// Title: Package Documentation for error
// Description: Package error implements the structured error type used by all
//              textkit packages, combining Go's standard error interface with
//              codes, severity levels, and metadata.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial package documentation

// Package error provides the structured error foundation for textkit.
//
// The Error type carries a message, an optional wrapped cause, a Code for
// classification, a Severity for prioritization, and a free-form details map.
// It implements error and Unwrap, so it composes with errors.Is and errors.As
// like any other Go error.
//
// Creating and enriching errors:
//
//	err := error.New("value does not fit the requested length").
//	    WithCode(error.CodeInvalidLength).
//	    WithSeverity(error.SeverityLow).
//	    WithOperation("truncate").
//	    WithDetail("max_length", 10)
//
// Wrapping preserves the cause chain:
//
//	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
//	    return error.Wrap(err, "random source unavailable").
//	        WithCode(error.CodeRandomSource)
//	}
//
// Inspecting errors:
//
//	if error.HasCode(err, error.CodeInvalidInput) {
//	    // reject the call site input
//	}
//
// Most callers do not use this package directly; the core/errors package
// layers standardized per-module constructors on top of it.
package error
