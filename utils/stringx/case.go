// File: case.go
// Title: String Case Conversion Utilities
// Description: Implements case conversion functions for naming conventions
//              and display text: camelCase, snake_case keys, kebab-case
//              slugs, Title Case, and Sentence case. Slug and key forms
//              restrict output to a safe character set.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with case conversion utilities

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/msto63/textkit/utils/convertx"
)

// Camel converts a string to camelCase. Hyphens and underscores are treated
// as word separators alongside spaces; the first word stays lowercase.
// Example: "my-variable_name" -> "myVariableName"
func Camel(s string) string {
	if IsEmpty(s) {
		return s
	}

	cleaned := strings.NewReplacer("-", " ", "_", " ").Replace(s)
	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return ""
	}

	// cases.Caser carries internal state, so a fresh one per call keeps the
	// function safe for concurrent use.
	caser := cases.Title(language.English, cases.Compact)

	var b strings.Builder
	for _, word := range words {
		b.WriteString(caser.String(strings.ToLower(word)))
	}

	out := b.String()
	first, size := utf8.DecodeRuneInString(out)
	return string(unicode.ToLower(first)) + out[size:]
}

// Snake converts a string to a snake_case key. Spaces become underscores,
// the result is lowercased, and everything outside the safe key charset
// (lowercase letters, digits, underscore, hyphen) is stripped.
// Example: "My Config Key!" -> "my_config_key"
func Snake(s string) string {
	if IsEmpty(s) {
		return s
	}

	s = strings.ToLower(strings.ReplaceAll(s, " ", "_"))

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Kebab slugifies a string: accents are transliterated, the result is
// lowercased, and every run of whitespace or unsafe characters collapses to
// a single hyphen. The output contains only lowercase letters, digits, and
// hyphens, with no leading or trailing hyphen. Kebab is idempotent.
// Example: "Héllo,  World!" -> "hello-world"
func Kebab(s string) string {
	s = strings.ToLower(RemoveAccents(s))

	var b strings.Builder
	pendingHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteRune('-')
			}
			b.WriteRune(r)
			pendingHyphen = false
		} else {
			pendingHyphen = true
		}
	}
	return b.String()
}

// Title lowercases the string and then uppercases the first letter of each
// whitespace-delimited word, preserving the original whitespace.
// Example: "hello  WORLD" -> "Hello  World"
func Title(s string) string {
	if IsEmpty(s) {
		return s
	}

	runes := []rune(strings.ToLower(s))
	atWordStart := true
	for i, r := range runes {
		if unicode.IsSpace(r) {
			atWordStart = true
			continue
		}
		if atWordStart {
			runes[i] = unicode.ToUpper(r)
			atWordStart = false
		}
	}
	return string(runes)
}

// Sentence lowercases the string and uppercases only the very first character.
// Example: "HELLO world. AGAIN" -> "Hello world. again"
func Sentence(s string) string {
	if IsEmpty(s) {
		return s
	}

	s = strings.ToLower(s)
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + s[size:]
}

// Upper stringifies an arbitrary value and folds it to upper case.
func Upper(value interface{}) string {
	return strings.ToUpper(convertx.From(value))
}

// Lower stringifies an arbitrary value and folds it to lower case.
func Lower(value interface{}) string {
	return strings.ToLower(convertx.From(value))
}
