// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type on top of charmbracelet/log with
//              persistent context fields, named child loggers and
//              integration with the procline error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-10-15 v0.2.0: Rendering delegated to charmbracelet/log

package log

import (
	"io"
	"os"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"

	mdwerror "github.com/msto63/procline/foundation/core/error"
)

// Logger represents a structured logger with contextual information
type Logger struct {
	base   *charmlog.Logger
	name   string
	fields Fields
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string

	// ReportTimestamp adds a time field to every message
	ReportTimestamp bool
}

// New creates a new logger with default configuration writing text to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatText})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	base := charmlog.NewWithOptions(output, charmlog.Options{
		Level:           config.Level.charm(),
		Formatter:       config.Format.charm(),
		Prefix:          config.Name,
		ReportTimestamp: config.ReportTimestamp,
		TimeFormat:      time.RFC3339,
	})

	return &Logger{base: base, name: config.Name}
}

// WithName returns a child logger using name as message prefix
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		base:   l.base.WithPrefix(name),
		name:   name,
		fields: l.fields,
	}
}

// WithField returns a child logger that adds key to every message
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a child logger that adds fields to every message
func (l *Logger) WithFields(fields Fields) *Logger {
	if len(fields) == 0 {
		return l
	}
	return &Logger{
		base:   l.base.With(fields.keyvals()...),
		name:   l.name,
		fields: l.fields.Merge(fields),
	}
}

// Fields returns a copy of the persistent context fields
func (l *Logger) Fields() Fields {
	return Fields(nil).Merge(l.fields)
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// Debug logs a debug message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.base.Debug(message, mergeAll(fields).keyvals()...)
}

// Info logs an info message
func (l *Logger) Info(message string, fields ...Fields) {
	l.base.Info(message, mergeAll(fields).keyvals()...)
}

// Warn logs a warning message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.base.Warn(message, mergeAll(fields).keyvals()...)
}

// Error logs an error message
func (l *Logger) Error(message string, fields ...Fields) {
	l.base.Error(message, mergeAll(fields).keyvals()...)
}

// ErrorWithErr logs an error message with an error attached
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.Error(message, append(fields, Err(err))...)
}

// WarnWithErr logs a warning message with an error attached
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.Warn(message, append(fields, Err(err))...)
}

// LogError logs err with the code, severity and position it carries.
// Input errors are logged at warn, everything else at error.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	fields := Fields{
		"code":     mdwerror.GetCode(err).String(),
		"severity": mdwerror.GetSeverity(err).String(),
	}
	if line, column, ok := mdwerror.GetPosition(err); ok {
		fields["line"] = line
		fields["column"] = column
	}

	if mdwerror.GetSeverity(err) == mdwerror.SeverityLow {
		l.Warn(err.Error(), fields)
		return
	}
	l.Error(err.Error(), fields)
}

// StartTimer creates and starts a timer for the given operation
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled reports whether messages at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.GetLevel())
}

// GetLevel returns the current minimum level
func (l *Logger) GetLevel() Level {
	return levelFromCharm(l.base.GetLevel())
}

// SetLevel changes the minimum level of this logger
func (l *Logger) SetLevel(level Level) {
	l.base.SetLevel(level.charm())
}

func (l *Logger) log(level Level, message string, fields Fields) {
	switch level {
	case LevelDebug:
		l.Debug(message, fields)
	case LevelWarn:
		l.Warn(message, fields)
	case LevelError:
		l.Error(message, fields)
	default:
		l.Info(message, fields)
	}
}

var (
	defaultLogger = New()
	defaultMu     sync.RWMutex
)

// GetDefault returns the process-wide default logger
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Debug logs a debug message with the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info message with the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning message with the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error message with the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
