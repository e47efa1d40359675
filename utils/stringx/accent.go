// File: accent.go
// Title: Accent and Diacritic Removal
// Description: Implements transliteration of accented characters to their
//              closest ASCII approximation via Unicode decomposition. Used by
//              slug generation and available standalone for search
//              normalization.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with NFD-based transliteration

package stringx

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveAccents transliterates accented characters to their base form:
// "café" becomes "cafe", "Müller" becomes "Muller". The string is decomposed
// (NFD), combining marks are stripped, and the result is recomposed (NFC).
// Characters without a decomposed base form (e.g. "ß") pass through
// unchanged. On a malformed input the original string is returned.
func RemoveAccents(s string) string {
	// transform.Chain transformers are stateful; build per call so the
	// function stays safe for concurrent use.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
