// File: example_test.go
// Title: Usage Examples for stringx
// Description: Runnable documentation examples for the stringx package.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial examples

package stringx_test

import (
	"fmt"

	"github.com/msto63/textkit/utils/stringx"
)

func ExampleTruncate() {
	fmt.Println(stringx.Truncate("This is a long sentence", 10, "..."))
	fmt.Println(stringx.Truncate("short", 10, "..."))
	// Output:
	// This is...
	// short
}

func ExampleBetween() {
	fmt.Println(stringx.Between("[", "]", "Hello [world] test"))
	// Output: world
}

func ExampleReplaceFirst() {
	fmt.Println(stringx.ReplaceFirst("o", "0", "foo boo"))
	fmt.Println(stringx.ReplaceLast("o", "0", "foo boo"))
	// Output:
	// f0o boo
	// foo bo0
}

func ExampleWords() {
	fmt.Println(stringx.Words("the quick brown fox", 2, "..."))
	// Output: the quick...
}

func ExampleMask() {
	fmt.Println(stringx.Mask("1234567890", 4, "*"))
	fmt.Println(stringx.Mask("12345678", 4, "*"))
	// Output:
	// 1234**7890
	// ********
}

func ExampleKebab() {
	fmt.Println(stringx.Kebab("Héllo,  World!"))
	// Output: hello-world
}

func ExampleCamel() {
	fmt.Println(stringx.Camel("my_variable_name"))
	// Output: myVariableName
}

func ExampleTitle() {
	fmt.Println(stringx.Title("the go programming language"))
	// Output: The Go Programming Language
}

func ExampleReduceWhitespace() {
	fmt.Println(stringx.ReduceWhitespace("  too \t many\n spaces  "))
	// Output: too many spaces
}
