// ============================================================================
// procline - typed procedure invocation from the command line
// ============================================================================
//
// Package:     shell
// Description: Styles for shell output
// Author:      msto63
// Created:     2025-10-15
// License:     MIT
// ============================================================================

package shell

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorAccent  = lipgloss.Color("#F59E0B") // Amber
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

// Styles renders shell output for one writer. Styling is dropped when the
// writer is not a terminal.
type Styles struct {
	OK      lipgloss.Style
	Error   lipgloss.Style
	Caret   lipgloss.Style
	Match   lipgloss.Style
	Muted   lipgloss.Style
	Heading lipgloss.Style
}

// NewStyles creates styles for the given renderer
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		OK: r.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Error: r.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Caret: r.NewStyle().
			Foreground(ColorError),
		Match: r.NewStyle().
			Foreground(ColorAccent).
			Underline(true),
		Muted: r.NewStyle().
			Foreground(ColorMuted),
		Heading: r.NewStyle().
			Bold(true),
	}
}
