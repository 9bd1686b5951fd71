// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it when
//              stopped, escalating to warn above a configurable threshold.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2025-10-15 v0.2.0: Slow threshold replaces checkpoints

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	threshold time.Duration
	stopped   bool

	now func() time.Time
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		level:     LevelDebug,
		now:       time.Now,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields = t.fields.Merge(Fields{key: value})
	return t
}

// WithThreshold logs the completion message at warn when the elapsed time
// reaches d. Zero disables the check.
func (t *Timer) WithThreshold(d time.Duration) *Timer {
	t.threshold = d
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.startTime)
}

// Stop stops the timer and logs the elapsed time. Calling Stop again
// returns 0 and logs nothing.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	fields := t.fields.Merge(Fields{
		"operation":   t.operation,
		"duration_ms": float64(elapsed.Microseconds()) / 1000,
	})

	if t.threshold > 0 && elapsed >= t.threshold {
		fields["threshold_ms"] = t.threshold.Milliseconds()
		t.logger.log(LevelWarn, "operation slow", fields)
		return elapsed
	}
	t.logger.log(t.level, "operation completed", fields)
	return elapsed
}
