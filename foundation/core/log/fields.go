// File: fields.go
// Title: Structured Log Fields
// Description: Field maps attached to log messages and helpers to build them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation as part of log entries
// - 2025-10-15 v0.2.0: Fields converted to sorted key/value pairs

package log

import (
	"sort"
	"time"
)

// Fields represents structured key-value pairs attached to a log message
type Fields map[string]interface{}

// Field creates a single-field map
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field
func Err(err error) Fields {
	return Fields{"error": err}
}

// Duration creates a duration field
func Duration(key string, d time.Duration) Fields {
	return Fields{key: d}
}

// Merge returns a new map with the fields of f overlaid by other
func (f Fields) Merge(other Fields) Fields {
	out := make(Fields, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// keyvals flattens the fields into alternating keys and values sorted by
// key so output is stable.
func (f Fields) keyvals() []interface{} {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	kv := make([]interface{}, 0, 2*len(keys))
	for _, k := range keys {
		kv = append(kv, k, f[k])
	}
	return kv
}

func mergeAll(fields []Fields) Fields {
	switch len(fields) {
	case 0:
		return nil
	case 1:
		return fields[0]
	}
	var out Fields
	for _, f := range fields {
		out = out.Merge(f)
	}
	return out
}
