// Package log provides structured logging for procline.
//
// Package: log
// Title: procline Structured Logging
// Description: A thin layer over github.com/charmbracelet/log that keeps a
//              stable API for the rest of the code base: levels, formats,
//              persistent context fields, child loggers per component and
//              timers for measuring procedure runs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-10-15 v0.2.0: Backed by charmbracelet/log, dropped async and audit
//
// Usage:
//
//	import mdwlog "github.com/msto63/procline/foundation/core/log"
//
//	logger := mdwlog.GetDefault().WithField("component", "tcol-engine")
//	logger.Info("procedure registered", mdwlog.Fields{"name": "draw"})
//
//	timer := logger.StartTimer("run")
//	// ... call the host procedure
//	timer.Stop()
package log
