// File: error.go
// Title: Core Error Implementation
// Description: Implements the Error type carrying a code, a severity, a cause
//              chain, free-form details and an optional source position in
//              the command text. Compatible with errors.Is/As and with
//              github.com/pkg/errors stack traces for foreign causes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors
// - 2025-10-15 v0.2.0: Source positions, pkg/errors causes, trimmed metadata

package error

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Error represents a structured error with context, codes, and metadata
type Error struct {
	message  string
	cause    error
	code     Code
	severity Severity
	details  map[string]interface{}

	// position of the offending token; line is 1-based, column 0-based
	line   int
	column int
	hasPos bool
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message:  message,
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. Code, severity and
// position of a wrapped *Error are inherited; foreign errors get a stack
// trace recorded at the wrap site.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var mdwErr *Error
	if errors.As(err, &mdwErr) {
		wrapped := &Error{
			message:  message,
			cause:    err,
			code:     mdwErr.code,
			severity: mdwErr.severity,
			details:  make(map[string]interface{}, len(mdwErr.details)),
			line:     mdwErr.line,
			column:   mdwErr.column,
			hasPos:   mdwErr.hasPos,
		}
		for k, v := range mdwErr.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:  message,
		cause:    pkgerrors.WithStack(err),
		code:     CodeUnknown,
		severity: SeverityMedium,
		details:  make(map[string]interface{}),
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Error implements the standard error interface
func (e *Error) Error() string {
	var b strings.Builder
	if e.hasPos {
		fmt.Fprintf(&b, "line %d, column %d: ", e.line, e.column)
	}
	b.WriteString(e.message)
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.causeMessage())
	}
	return b.String()
}

// causeMessage avoids repeating the position prefix of a wrapped *Error.
func (e *Error) causeMessage() string {
	var inner *Error
	if errors.As(e.cause, &inner) && inner.hasPos && e.hasPos {
		msg := inner.message
		if inner.cause != nil {
			msg += ": " + inner.causeMessage()
		}
		return msg
	}
	return e.cause.Error()
}

// Format supports %+v, which appends the cause chain including stack traces
// recorded by github.com/pkg/errors.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, e.Error())
			if e.cause != nil {
				fmt.Fprintf(s, "\ncaused by: %+v", e.cause)
			}
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is an *Error with the same code. This lets
// callers compare against sentinel values built with New(...).WithCode(...).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.code != CodeUnknown && t.code == e.code
}

// WithCode sets the error code and derives the severity from it
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	e.severity = GetSeverityFromCode(code)
	return e
}

// WithSeverity overrides the severity level
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithPosition records the source position of the offending token
func (e *Error) WithPosition(line, column int) *Error {
	e.line = line
	e.column = column
	e.hasPos = true
	return e
}

// Message returns the message without position prefix and cause
func (e *Error) Message() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity level
func (e *Error) Severity() Severity {
	return e.severity
}

// Details returns a copy of the error details
func (e *Error) Details() map[string]interface{} {
	out := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		out[k] = v
	}
	return out
}

// Position returns the recorded source position, if any
func (e *Error) Position() (line, column int, ok bool) {
	return e.line, e.column, e.hasPos
}

// Cause returns the direct cause, if any
func (e *Error) Cause() error {
	return e.cause
}

// RootCause returns the deepest error in the chain, looking through
// github.com/pkg/errors wrappers
func (e *Error) RootCause() error {
	var current error = e
	for {
		next := errors.Unwrap(current)
		if next == nil {
			return current
		}
		current = next
	}
}

// String returns a detailed representation for debugging
func (e *Error) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.code, e.Error())
	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" {")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.details[k])
		}
		b.WriteString("}")
	}
	return b.String()
}

// HasCode reports whether any error in the chain carries the given code
func HasCode(err error, code Code) bool {
	for err != nil {
		if mdwErr, ok := err.(*Error); ok && mdwErr.code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode returns the code of the outermost *Error in the chain
func GetCode(err error) Code {
	var mdwErr *Error
	if errors.As(err, &mdwErr) {
		return mdwErr.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of the outermost *Error in the chain
func GetSeverity(err error) Severity {
	var mdwErr *Error
	if errors.As(err, &mdwErr) {
		return mdwErr.severity
	}
	return SeverityMedium
}

// GetPosition returns the source position of the outermost positioned
// *Error in the chain
func GetPosition(err error) (line, column int, ok bool) {
	for err != nil {
		if mdwErr, isMdw := err.(*Error); isMdw && mdwErr.hasPos {
			return mdwErr.line, mdwErr.column, true
		}
		err = errors.Unwrap(err)
	}
	return 0, 0, false
}
