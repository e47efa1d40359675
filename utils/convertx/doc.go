// File: doc.go
// Title: Package Documentation for convertx
// Description: Package convertx converts between arbitrary values, delimited
//              strings, and ordered string sequences.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial package documentation

// Package convertx converts values and sequences to and from strings.
//
// From stringifies any value without ever panicking: scalars render
// naturally, structured values serialize to compact JSON, and unencodable
// values fall back to an empty string. ToJSON is the error-returning
// variant; ToYAML and ToTOML render the same values in alternative formats.
//
//	convertx.From(42)                          // "42"
//	convertx.From([]int{1, 2, 3})              // "[1,2,3]"
//	convertx.From(map[string]int{"a": 1})      // `{"a":1}`
//
// The sequence converters split and join delimited text:
//
//	convertx.ToArray("apple, banana, cherry", ",") // ["apple" "banana" "cherry"]
//	convertx.ToCSV([]string{"a ", " b"}, ",")      // "a,b"
//	convertx.ToWords("one  two\tthree")            // ["one" "two" "three"]
//	convertx.ToLines("a\r\nb\nc")                  // ["a" "b" "c"]
//	convertx.ToSentences("Hi. Bye!")               // ["Hi" " Bye"]
//
// ToCSV applies no quoting or escaping; callers are responsible for choosing
// a separator that does not occur in their data.
package convertx
