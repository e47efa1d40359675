// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides extended string operations for textkit,
//              offering Unicode-safe transformation, case conversion, masking,
//              and secure random generation that extend Go's standard library.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial package documentation

// Package stringx provides extended string operations for textkit.
//
// Package: stringx
// Title: Extended String Operations for textkit
// Description: This package provides string transformation utilities that
//              extend the Go standard library with commonly needed
//              operations. Focus on Unicode safety and degrade-to-default
//              behavior for production-ready string manipulation.
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Overview
//
// The stringx package extends Go's standard strings package with the
// transformations a content-handling application reaches for most often:
// occurrence-targeted replacement, delimiter extraction, truncation, word
// limiting, whitespace normalization, case conversion, masking, accent
// transliteration, and secure random string generation.
//
// Every transformation is a pure function of its arguments. Instead of
// returning errors for malformed input, the functions degrade to a safe
// default: the unchanged subject, an empty string, or a clamped cut. The
// explicitly checked variants (TruncateChecked, ValidateLength) return
// standardized errors for callers that want failures surfaced.
//
// All character counting is rune-based, so multi-byte UTF-8 text is never
// split mid-character.
//
// Architecture
//
// The package is organized into functional groups:
//
//   - Core Operations: replacement, extraction, truncation, whitespace,
//     masking (stringx.go)
//   - Case Conversion: camelCase, snake_case keys, kebab-case slugs,
//     Title and Sentence case (case.go)
//   - Transliteration: accent and diacritic removal (accent.go)
//   - Random Generation: secure random strings and UUIDs (random.go)
//
// Usage Examples
//
// Basic transformations:
//
//	stringx.Truncate("This is a long sentence", 10, "...") // "This is..."
//	stringx.Between("[", "]", "Hello [world] test")        // "world"
//	stringx.ReplaceFirst("o", "0", "foo bar")              // "f0o bar"
//	stringx.Words("one two three four", 2, "...")          // "one two..."
//	stringx.Mask("1234567890", 4, "*")                     // "1234**7890"
//
// Whitespace handling:
//
//	stringx.ReduceWhitespace("  a \t b\n c  ") // "a b c"
//	stringx.RemoveWhitespace("a b\tc")         // "abc"
//	stringx.RemoveLineBreaks("a\r\nb\nc")      // "abc"
//
// Case conversions:
//
//	stringx.Camel("my-variable_name") // "myVariableName"
//	stringx.Snake("My Config Key!")   // "my_config_key"
//	stringx.Kebab("Héllo,  World!")   // "hello-world"
//	stringx.Title("hello world")      // "Hello World"
//	stringx.Sentence("HELLO WORLD")   // "Hello world"
//
// Random string generation:
//
//	token, err := stringx.RandomURLSafe(32)
//	hex, err := stringx.RandomHex(16)
//	id, err := stringx.RandomUUID()
//
// Concurrency
//
// The package holds no mutable state; every function may be called
// concurrently from any number of goroutines without coordination.
package stringx
