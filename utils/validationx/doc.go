// File: doc.go
// Title: Package Documentation for validationx
// Description: Package validationx provides boolean string predicates:
//              containment and prefix/suffix checks over multiple needles,
//              normalized pattern-list matching, and format validation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial package documentation

// Package validationx provides boolean string predicates for textkit.
//
// Every predicate is a pure function that returns true or false with no
// side effects; malformed input yields false rather than an error.
//
// Containment and matching:
//
//	validationx.ContainsAny("haystack", "hay", "straw")              // true
//	validationx.ContainsAll("haystack", "hay", "stack")              // true
//	validationx.StartsWithAny("admin.php", "admin", "edit")          // true
//	validationx.MatchesAny("Admin.php", []string{"admin.*"}, true)   // true
//
// Format checks delegate to the standard library's parsers, so IsEmail,
// IsURL, and IsIP accept exactly what net/mail, net/url, and net accept:
//
//	validationx.IsEmail("user@example.com") // true
//	validationx.IsURL("https://example.com") // true
//	validationx.IsIP("::1")                  // true
//	validationx.IsDate("2024-01-15")         // true
//	validationx.IsJSON(`{"key": "value"}`)   // true
//
// Case membership requires alphabetic content: a string with no letters is
// neither upper nor lower case.
//
//	validationx.IsUpper("HELLO") // true
//	validationx.IsUpper("123")   // false
//	validationx.IsLower("123")   // false
package validationx
