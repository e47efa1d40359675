// File: contentx_test.go
// Title: Unit Tests for Content Helpers
// Description: Unit tests for markup stripping, excerpt generation, word
//              counting, and reading-time estimation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test implementation

package contentx

import (
	"strings"
	"testing"

	"github.com/msto63/textkit/core/errors"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"paragraphs", "<p>Hello</p><p>World</p>", "Hello World"},
		{"nested markup", "<div><b>bold</b> text</div>", "bold text"},
		{"attributes", `<a href="https://example.com">link</a>`, "link"},
		{"self closing", "line<br/>break", "line break"},
		{"no markup", "plain text", "plain text"},
		{"whitespace normalized", "<p>  a  </p>\n<p>b</p>", "a b"},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripTags(tt.input); got != tt.expected {
				t.Errorf("StripTags(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		length    int
		stripTags bool
		expected  string
	}{
		{"plain truncation", "This is a long sentence", 10, false, "This is..."},
		{"fits unchanged", "short", 20, false, "short"},
		{"markup stripped first", "<p>This is a long sentence</p>", 10, true, "This is..."},
		{"markup kept when disabled", "<p>ab</p>", 20, false, "<p>ab</p>"},
		{"empty content", "", 10, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Excerpt(tt.content, tt.length, tt.stripTags); got != tt.expected {
				t.Errorf("Excerpt(%q, %d, %v) = %q; want %q",
					tt.content, tt.length, tt.stripTags, got, tt.expected)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"simple words", "one two three", 3},
		{"hyphenated word counts once", "a well-known fact", 3},
		{"apostrophized word counts once", "don't stop", 2},
		{"markup not counted", "<p>Hello <b>World</b></p>", 2},
		{"bare punctuation not counted", "one - two", 2},
		{"digits count", "chapter 7", 2},
		{"empty input", "", 0},
		{"whitespace only", "  \n\t ", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.input); got != tt.expected {
				t.Errorf("WordCount(%q) = %d; want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestReadingTime(t *testing.T) {
	twoHundredWords := strings.TrimSpace(strings.Repeat("word ", 200))

	tests := []struct {
		name        string
		content     string
		rate        int
		wantMinutes int
		wantSeconds int
	}{
		{"exactly one minute", twoHundredWords, 200, 1, 0},
		{"half a minute", strings.Repeat("word ", 100), 200, 0, 30},
		{"ninety seconds", strings.Repeat("word ", 300), 200, 1, 30},
		{"rounds to whole minute", strings.Repeat("word ", 399), 200, 2, 0},
		{"empty content", "", 200, 0, 0},
		{"zero rate degrades to zero", twoHundredWords, 0, 0, 0},
		{"negative rate degrades to zero", twoHundredWords, -5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReadingTime(tt.content, tt.rate)
			if got.Minutes != tt.wantMinutes || got.Seconds != tt.wantSeconds {
				t.Errorf("ReadingTime(rate=%d) = {%d, %d}; want {%d, %d}",
					tt.rate, got.Minutes, got.Seconds, tt.wantMinutes, tt.wantSeconds)
			}
		})
	}
}

func TestReadingTimeChecked(t *testing.T) {
	if _, err := ReadingTimeChecked("some words", 0); err == nil {
		t.Fatal("ReadingTimeChecked(0) expected error")
	} else if !errors.IsModuleError(err, errors.ModuleContentx) {
		t.Errorf("error not tagged with contentx module: %v", err)
	}

	got, err := ReadingTimeChecked(strings.Repeat("word ", 200), 200)
	if err != nil {
		t.Fatalf("ReadingTimeChecked returned unexpected error: %v", err)
	}
	if got.Minutes != 1 || got.Seconds != 0 {
		t.Errorf("ReadingTimeChecked = {%d, %d}; want {1, 0}", got.Minutes, got.Seconds)
	}
}
