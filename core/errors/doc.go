// File: doc.go
// Title: Package Documentation for errors
// Description: Package errors provides THE STANDARD error handling interface
//              for all textkit packages: standardized codes, per-module
//              constructors, and error analysis utilities layered on the
//              core error type.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial package documentation

// Package errors provides standardized error creation for textkit packages.
//
// It layers module-aware constructors on top of core/error so that every
// error produced by the library carries a consistent code, the originating
// module and operation, and enough detail for callers to act on it.
//
// Creating errors:
//
//	// Generic, module-tagged
//	err := errors.StandardError(errors.ModuleStringx, "truncate", "length must not be negative")
//
//	// Input validation
//	err = errors.InputError(errors.ModuleContentx, "reading_time", -1, "positive words-per-minute rate")
//
//	// Wrapping a cause
//	err = errors.ModuleError(errors.ModuleConvertx, "to_json", marshalErr, nil)
//
// The fluent builder covers everything else:
//
//	err = errors.NewErrorBuilder(errors.ModuleStringx).
//	    Operation("random_string").
//	    Cause(randErr).
//	    Severity(tkerror.SeverityHigh).
//	    Build()
//
// Analysis:
//
//	errors.IsModuleError(err, errors.ModuleStringx) // true
//	errors.GetErrorOperation(err)                   // "random_string"
//
// Note that the bulk of the textkit API never returns errors at all: the
// transformation and predicate functions degrade to safe defaults. The
// constructors here serve the explicitly checked variants (TruncateChecked,
// ReadingTimeChecked, ToJSON, RandomString).
package errors
