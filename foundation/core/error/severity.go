// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers can decide
//              whether a failure is a typo at the prompt or a broken setup.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-10-15 v0.2.0: Severity mapping for command language codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a problem with user input that can be corrected
	// by re-entering the command
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure inside a host procedure or converter
	SeverityMedium

	// SeverityHigh indicates a broken setup, e.g. an invalid registry
	SeverityHigh

	// SeverityCritical indicates the program cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch {
	case code.IsInputError():
		return SeverityLow
	case code.IsRegistrationError(), code == CodeConfigError:
		return SeverityHigh
	case code == CodeInternal:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
