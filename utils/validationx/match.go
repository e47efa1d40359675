// File: match.go
// Title: Multi-Needle Containment and Pattern Matching
// Description: Implements containment, prefix, and suffix checks against
//              multiple needles, and normalized list matching with optional
//              trailing-wildcard patterns.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with matching predicates

package validationx

import (
	"strings"
)

// WildcardSuffix marks a pattern as a prefix test in MatchesAny.
const WildcardSuffix = "*"

// ContainsAny returns true if the haystack contains at least one of the
// needles (case-sensitive). An empty needle list yields false.
func ContainsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

// ContainsAll returns true if the haystack contains every needle
// (case-sensitive). An empty needle list is vacuously true.
func ContainsAll(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

// StartsWithAny returns true if the string starts with at least one of the
// given prefixes.
func StartsWithAny(s string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// EndsWithAny returns true if the string ends with at least one of the
// given suffixes.
func EndsWithAny(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

// MatchesAny reports whether the string matches one of the patterns. Both
// sides are trimmed and lowercased before comparison. When wildcard is
// enabled, a pattern ending in "*" matches as a prefix test with the marker
// stripped; otherwise exact equality is required. An empty input string or
// an empty pattern list yields false.
func MatchesAny(s string, patterns []string, wildcard bool) bool {
	candidate := strings.ToLower(strings.TrimSpace(s))
	if candidate == "" || len(patterns) == 0 {
		return false
	}

	for _, p := range patterns {
		pattern := strings.ToLower(strings.TrimSpace(p))
		if pattern == "" {
			continue
		}

		if wildcard && strings.HasSuffix(pattern, WildcardSuffix) {
			if strings.HasPrefix(candidate, strings.TrimSuffix(pattern, WildcardSuffix)) {
				return true
			}
			continue
		}

		if candidate == pattern {
			return true
		}
	}
	return false
}
