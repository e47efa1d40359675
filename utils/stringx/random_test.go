// File: random_test.go
// Title: Unit Tests for Secure String Generation
// Description: Unit tests for random string generation including length,
//              charset membership, and UUID shape.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial test implementation

package stringx

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		charset string
	}{
		{"default charset", 16, ""},
		{"custom charset", 32, "abc123"},
		{"single char charset", 8, "x"},
		{"length one", 1, Alphanumeric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RandomString(tt.length, tt.charset)
			if err != nil {
				t.Fatalf("RandomString(%d, %q) error: %v", tt.length, tt.charset, err)
			}
			if len(got) != tt.length {
				t.Errorf("len = %d; want %d", len(got), tt.length)
			}

			charset := tt.charset
			if charset == "" {
				charset = Alphanumeric
			}
			for _, c := range got {
				if !strings.ContainsRune(charset, c) {
					t.Errorf("character %q not in charset %q", c, charset)
				}
			}
		})
	}
}

func TestRandomStringZeroLength(t *testing.T) {
	got, err := RandomString(0, Alphanumeric)
	if err != nil || got != "" {
		t.Errorf("RandomString(0) = (%q, %v); want (\"\", nil)", got, err)
	}

	got, err = RandomString(-5, Alphanumeric)
	if err != nil || got != "" {
		t.Errorf("RandomString(-5) = (%q, %v); want (\"\", nil)", got, err)
	}
}

func TestRandomStringsDiffer(t *testing.T) {
	a, err := RandomAlphanumeric(32)
	if err != nil {
		t.Fatalf("RandomAlphanumeric error: %v", err)
	}
	b, err := RandomAlphanumeric(32)
	if err != nil {
		t.Fatalf("RandomAlphanumeric error: %v", err)
	}
	// 62^32 possibilities; a collision here means the generator is broken
	if a == b {
		t.Errorf("two random strings are identical: %q", a)
	}
}

func TestRandomHex(t *testing.T) {
	got, err := RandomHex(40)
	if err != nil {
		t.Fatalf("RandomHex error: %v", err)
	}
	if len(got) != 40 {
		t.Errorf("len = %d; want 40", len(got))
	}
	for _, c := range got {
		if !strings.ContainsRune(HexDigits, c) {
			t.Errorf("character %q is not a hex digit", c)
		}
	}
}

func TestRandomURLSafe(t *testing.T) {
	got, err := RandomURLSafe(64)
	if err != nil {
		t.Fatalf("RandomURLSafe error: %v", err)
	}
	for _, c := range got {
		if !strings.ContainsRune(URLSafe, c) {
			t.Errorf("character %q is not URL-safe", c)
		}
	}
}

func TestRandomUUID(t *testing.T) {
	got, err := RandomUUID()
	if err != nil {
		t.Fatalf("RandomUUID error: %v", err)
	}
	if len(got) != 36 {
		t.Errorf("len = %d; want 36", len(got))
	}
	for _, pos := range []int{8, 13, 18, 23} {
		if got[pos] != '-' {
			t.Errorf("expected hyphen at position %d in %q", pos, got)
		}
	}
	if got[14] != '4' {
		t.Errorf("expected version 4 marker in %q", got)
	}
}
