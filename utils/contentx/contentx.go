// File: contentx.go
// Title: Content Processing Helpers
// Description: Implements higher-level text processing over the stringx
//              transforms: markup-tag stripping, excerpt generation,
//              natural-language word counting, and reading-time estimation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with content helpers

package contentx

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/msto63/textkit/core/errors"
	"github.com/msto63/textkit/utils/stringx"
)

// ExcerptSuffix is appended to excerpts that were cut short.
const ExcerptSuffix = "..."

// DefaultWordsPerMinute is a common silent-reading rate for adults.
const DefaultWordsPerMinute = 200

var markupTag = regexp.MustCompile(`<[^>]*>`)

// ReadTime holds a reading-time estimate split into whole minutes and
// remaining seconds. Both values are non-negative.
type ReadTime struct {
	Minutes int
	Seconds int
}

// StripTags removes all angle-bracket-delimited markup from the string and
// normalizes the resulting whitespace, so "<p>Hello</p><p>World</p>" becomes
// "Hello World".
func StripTags(s string) string {
	return stringx.ReduceWhitespace(markupTag.ReplaceAllString(s, " "))
}

// Excerpt produces a shortened preview of content, at most length characters
// including the "..." suffix. With stripTags enabled the markup is removed
// first so the budget is spent on readable text.
func Excerpt(content string, length int, stripTags bool) string {
	if stripTags {
		content = StripTags(content)
	}
	return stringx.Truncate(content, length, ExcerptSuffix)
}

// WordCount strips markup and counts word tokens. A token counts as a word
// when it contains at least one letter or digit, so hyphenated and
// apostrophized words ("well-known", "don't") count once and bare
// punctuation does not count at all.
func WordCount(s string) int {
	count := 0
	for _, token := range strings.Fields(StripTags(s)) {
		if strings.ContainsFunc(token, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}) {
			count++
		}
	}
	return count
}

// ReadingTime estimates how long the content takes to read at the given
// rate. Minutes is the floor of words/wordsPerMinute; Seconds is the
// remainder rounded to the nearest second. A zero or negative rate yields
// the zero estimate; use ReadingTimeChecked to surface that as an error.
func ReadingTime(content string, wordsPerMinute int) ReadTime {
	if wordsPerMinute <= 0 {
		return ReadTime{}
	}

	exact := float64(WordCount(content)) / float64(wordsPerMinute)
	minutes := int(exact)
	seconds := int(math.Round((exact - float64(minutes)) * 60))
	if seconds == 60 {
		minutes++
		seconds = 0
	}
	return ReadTime{Minutes: minutes, Seconds: seconds}
}

// ReadingTimeChecked estimates reading time with input validation, following
// standard error patterns.
func ReadingTimeChecked(content string, wordsPerMinute int) (ReadTime, error) {
	if wordsPerMinute <= 0 {
		return ReadTime{}, errors.ContentxInputError("reading_time",
			wordsPerMinute, "positive words-per-minute rate")
	}
	return ReadingTime(content, wordsPerMinute), nil
}
