// Package config loads procline configuration.
//
// Package: config
// Title: procline Configuration
// Description: Reads a TOML or YAML file (chosen by extension), applies
//              defaults and then environment overrides with the PROCLINE_
//              prefix. Durations are written as Go duration strings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Example (TOML):
//
//	[general]
//	log_level = "debug"
//
//	[engine]
//	max_command_length = 2048
//	slow_threshold = "250ms"
//
//	[shell]
//	prompt = "sketch> "
//	fuzzy = true
//
//	[[alias]]
//	name = "d"
//	target = "draw"
//
// Environment overrides use the section and key in upper case, e.g.
// PROCLINE_ENGINE_SLOW_THRESHOLD=1s or PROCLINE_SHELL_FUZZY=true.
package config
