// File: convertx.go
// Title: Value and Sequence Conversion Utilities
// Description: Implements safe stringification of arbitrary values and
//              conversions between delimited strings and ordered sequences.
//              Stringification never panics; structured values serialize to
//              JSON (or YAML/TOML via the explicit encoders) and fall back
//              to an empty string on failure.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with conversion utilities

package convertx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/textkit/core/errors"
)

// DefaultSeparator is used by ToArray and ToCSV when no separator is given.
const DefaultSeparator = ","

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// From safely stringifies an arbitrary value. Scalars use their natural text
// representation, errors and Stringers are rendered through their own
// methods, and structured values (slices, maps, structs) serialize to
// compact JSON. From never panics; when a value cannot be serialized the
// result is an empty string.
func From(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}

	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return string(data)
}

// ToJSON serializes a value to compact JSON, returning a standardized error
// when the value cannot be encoded. Use From when a silent fallback to an
// empty string is acceptable.
func ToJSON(value interface{}) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", errors.ConvertxEncodingError("to_json", value, err)
	}
	return string(data), nil
}

// ToYAML serializes a value to YAML, falling back to an empty string when
// the value cannot be encoded. The trailing newline emitted by the encoder
// is trimmed.
func ToYAML(value interface{}) string {
	defer func() {
		// yaml.Marshal panics on some unsupported values instead of
		// returning an error; the fallback contract is "" either way.
		_ = recover()
	}()

	data, err := yaml.Marshal(value)
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(string(data), "\n")
}

// ToTOML serializes a value to TOML, falling back to an empty string when
// the value cannot be encoded. TOML requires a table at the top level, so
// scalars and bare sequences yield an empty string.
func ToTOML(value interface{}) string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(value); err != nil {
		return ""
	}
	return strings.TrimSpace(buf.String())
}

// ToArray splits a delimited string into an ordered sequence of trimmed
// tokens. An empty separator defaults to ",". Empty (post-trim) tokens are
// kept so that ToArray(ToCSV(xs), sep) round-trips token counts. An empty
// input yields an empty slice.
func ToArray(s, separator string) []string {
	if s == "" {
		return []string{}
	}
	if separator == "" {
		separator = DefaultSeparator
	}

	parts := strings.Split(s, separator)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// ToCSV joins a sequence into a delimited string, trimming each element.
// An empty separator defaults to ",". No quoting or escaping is applied;
// callers must choose a separator absent from their data.
func ToCSV(items []string, separator string) string {
	if len(items) == 0 {
		return ""
	}
	if separator == "" {
		separator = DefaultSeparator
	}

	trimmed := make([]string, len(items))
	for i, item := range items {
		trimmed[i] = strings.TrimSpace(item)
	}
	return strings.Join(trimmed, separator)
}

// ToWords splits a string on runs of whitespace, discarding empty tokens.
func ToWords(s string) []string {
	return strings.Fields(s)
}

// ToLines splits a string into lines, handling \n, \r\n, and \r line
// endings. Empty lines are discarded.
func ToLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := make([]string, 0, strings.Count(s, "\n")+1)
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ToSentences splits a string on runs of sentence-ending punctuation
// (periods, exclamation marks, question marks), discarding empty fragments.
// Leading whitespace on later fragments is preserved as-is.
func ToSentences(s string) []string {
	fragments := sentenceBoundary.Split(s, -1)

	sentences := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if fragment != "" {
			sentences = append(sentences, fragment)
		}
	}
	return sentences
}
