// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements essential string operations that extend the Go
//              standard library. Focuses on Unicode safety and predictable
//              degrade-to-default behavior: transformation functions never
//              fail, they return their input or an empty string instead.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/textkit/core/errors"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty returns true if the string is not empty.
// Convenience function that's the inverse of IsEmpty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
// Convenience function that's the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first non-blank string from the provided strings.
// This is useful for providing default values while ignoring whitespace-only strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// ReplaceFirst replaces the first occurrence of search in subject with replace.
// If search is empty, subject is empty, or search is not found, subject is
// returned unchanged.
func ReplaceFirst(search, replace, subject string) string {
	if search == "" || subject == "" {
		return subject
	}
	i := strings.Index(subject, search)
	if i < 0 {
		return subject
	}
	return subject[:i] + replace + subject[i+len(search):]
}

// ReplaceLast replaces the last occurrence of search in subject with replace.
// If search is empty, subject is empty, or search is not found, subject is
// returned unchanged.
func ReplaceLast(search, replace, subject string) string {
	if search == "" || subject == "" {
		return subject
	}
	i := strings.LastIndex(subject, search)
	if i < 0 {
		return subject
	}
	return subject[:i] + replace + subject[i+len(search):]
}

// Between returns the substring strictly between the first occurrence of
// start and the first occurrence of end that appears after the start match.
// It returns an empty string if either delimiter is absent. Nested delimiters
// are not supported; only the first qualifying span is considered.
func Between(start, end, subject string) string {
	if start == "" || end == "" || subject == "" {
		return ""
	}
	i := strings.Index(subject, start)
	if i < 0 {
		return ""
	}
	from := i + len(start)
	j := strings.Index(subject[from:], end)
	if j < 0 {
		return ""
	}
	return subject[from : from+j]
}

// Truncate truncates a string to at most length characters, appending the
// suffix when content was cut. The count is rune-based, so multi-byte
// characters are never split. If the string already fits, it is returned
// unchanged. When the suffix alone does not fit within length, the string is
// hard-cut without a suffix so the result never exceeds length characters.
func Truncate(s string, length int, suffix string) string {
	if length <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= length {
		return s
	}

	suffixLen := utf8.RuneCountInString(suffix)
	if suffixLen >= length {
		return string([]rune(s)[:length])
	}
	return string([]rune(s)[:length-suffixLen]) + suffix
}

// Words keeps the first limit space-separated words of s, rejoined with
// single spaces. The suffix is appended only when words were actually cut.
// Splitting is on literal single spaces, not general whitespace.
func Words(s string, limit int, suffix string) string {
	if s == "" || limit <= 0 {
		return ""
	}
	tokens := strings.Split(s, " ")
	if len(tokens) <= limit {
		return s
	}
	return strings.Join(tokens[:limit], " ") + suffix
}

// ReduceWhitespace trims the string and collapses every run of whitespace
// (spaces, tabs, line breaks) to a single space.
func ReduceWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// RemoveWhitespace deletes all whitespace characters from the string.
func RemoveWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// RemoveLineBreaks trims the string and deletes all carriage-return and
// line-feed characters without replacement.
func RemoveLineBreaks(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, s)
}

// Mask obscures the middle of a string, keeping the first and last visible
// characters readable. When the string has no more than 2*visible characters
// everything is masked, so short secrets never leak through the window. The
// count is rune-based. An empty maskChar defaults to "*".
func Mask(s string, visible int, maskChar string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	if visible < 0 {
		visible = 0
	}
	if maskChar == "" {
		maskChar = "*"
	}

	if len(runes) <= 2*visible {
		return strings.Repeat(maskChar, len(runes))
	}

	var b strings.Builder
	b.WriteString(string(runes[:visible]))
	b.WriteString(strings.Repeat(maskChar, len(runes)-2*visible))
	b.WriteString(string(runes[len(runes)-visible:]))
	return b.String()
}

// ===============================
// Checked Variants
// ===============================

// ValidateLength validates that a string meets length requirements,
// following standard error patterns. Bounds of zero are ignored.
func ValidateLength(s string, minLen, maxLen int) error {
	length := utf8.RuneCountInString(s)

	if minLen > 0 && length < minLen {
		return errors.StringxValidationError("validate_length",
			fmt.Sprintf("%s (length: %d)", s, length),
			fmt.Sprintf("at least %d characters", minLen))
	}

	if maxLen > 0 && length > maxLen {
		return errors.StringxValidationError("validate_length",
			fmt.Sprintf("%s (length: %d)", s, length),
			fmt.Sprintf("at most %d characters", maxLen))
	}

	return nil
}

// TruncateChecked truncates a string with input validation, following
// standard error patterns.
func TruncateChecked(s string, length int, suffix string) (string, error) {
	if length < 0 {
		return "", errors.StringxInvalidInput("truncate_checked", length)
	}
	if length == 0 {
		return "", nil
	}
	return Truncate(s, length, suffix), nil
}

// MustTruncate truncates a string, panicking on invalid input (follows Must* pattern)
func MustTruncate(s string, length int, suffix string) string {
	result, err := TruncateChecked(s, length, suffix)
	if err != nil {
		panic(err)
	}
	return result
}
