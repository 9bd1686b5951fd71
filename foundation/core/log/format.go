// File: format.go
// Title: Log Output Formats
// Description: Selects the charmbracelet formatter used for log output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with JSON, text and logfmt
// - 2025-10-15 v0.2.0: Delegates rendering to charmbracelet/log

package log

import (
	"fmt"
	"strings"

	charmlog "github.com/charmbracelet/log"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatText is human readable, colored when writing to a terminal
	FormatText Format = iota

	// FormatJSON writes one JSON object per line
	FormatJSON

	// FormatLogfmt writes key=value pairs
	FormatLogfmt
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatLogfmt:
		return "logfmt"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "console", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "logfmt":
		return FormatLogfmt, nil
	default:
		return FormatText, fmt.Errorf("invalid log format: %s", format)
	}
}

func (f Format) charm() charmlog.Formatter {
	switch f {
	case FormatJSON:
		return charmlog.JSONFormatter
	case FormatLogfmt:
		return charmlog.LogfmtFormatter
	default:
		return charmlog.TextFormatter
	}
}
