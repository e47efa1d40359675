// File: validationx.go
// Title: String Format Predicates
// Description: Implements boolean format validation over strings: JSON,
//              email, URL, IP literals, dates, numeric grammars, character
//              classes, and case membership. Every predicate is pure and
//              side-effect free; malformed input yields false, never an error.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with format predicates

package validationx

import (
	"encoding/json"
	"math"
	"net"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// dateLayouts are the calendar formats IsDate accepts, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"02.01.2006",
}

// IsJSON returns true if the string is a syntactically valid JSON document.
// Scalars ("42", `"text"`, "true") are valid JSON documents too.
func IsJSON(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	return json.Valid([]byte(s))
}

// IsEmail returns true if the string parses as an email address
// (RFC 5322 addr-spec, without a display name).
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// IsURL returns true if the string is an absolute URL with a scheme and host.
func IsURL(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	parsed, err := url.ParseRequestURI(s)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}

// IsDate returns true if the string parses under one of the supported
// calendar-date layouts (RFC 3339, ISO date, datetime, US and European
// numeric dates).
func IsDate(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// IsIP returns true if the string is an IPv4 or IPv6 literal.
func IsIP(s string) bool {
	return net.ParseIP(s) != nil
}

// IsIPv4 returns true if the string is an IPv4 literal.
func IsIPv4(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() != nil
}

// IsIPv6 returns true if the string is an IPv6 literal.
func IsIPv6(s string) bool {
	ip := net.ParseIP(s)
	return ip != nil && ip.To4() == nil
}

// IsNumeric returns true if the string parses as a decimal number,
// integer or floating point.
func IsNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsInteger returns true if the string parses as a base-10 integer.
func IsInteger(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// IsFloat returns true if the string parses under the floating-point
// grammar (decimal point and exponent forms included). Every integer
// literal is also a valid float; IsInteger is the stricter check.
func IsFloat(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsAlpha returns true if the string is non-empty and contains only
// alphabetic characters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// IsAlphanumeric returns true if the string is non-empty and contains only
// letters and digits.
func IsAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

// IsHex returns true if the string is non-empty and contains only
// hexadecimal digits (no 0x prefix).
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// IsUpper returns true if the string is non-empty, purely alphabetic, and
// equal to its upper-cased form. A string with no alphabetic characters is
// neither upper nor lower case.
func IsUpper(s string) bool {
	return IsAlpha(s) && s == strings.ToUpper(s)
}

// IsLower returns true if the string is non-empty, purely alphabetic, and
// equal to its lower-cased form.
func IsLower(s string) bool {
	return IsAlpha(s) && s == strings.ToLower(s)
}

// IsUUID returns true if the string is a valid UUID in one of the commonly
// accepted encodings (canonical hyphenated form included).
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}

// IsLengthValid returns true if the character count (not byte count) of the
// string lies within the inclusive [min, max] range.
func IsLengthValid(s string, min, max int) bool {
	length := utf8.RuneCountInString(s)
	return length >= min && length <= max
}

// IsLengthValidDefault applies the default length range [1, MaxInt]: any
// non-empty string passes.
func IsLengthValidDefault(s string) bool {
	return IsLengthValid(s, 1, math.MaxInt)
}
