// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to support prioritized
//              handling and alerting decisions in applications that consume
//              the textkit library.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

// Severity levels from least to most severe
const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Level returns the numeric level of the severity for comparisons
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if errors of this severity warrant alerting
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}
