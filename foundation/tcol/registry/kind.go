// File: kind.go
// Title: Parameter Kinds
// Description: The value kinds a procedure parameter can declare.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-15
// Modified: 2025-10-15

package registry

import (
	"strings"

	mdwerror "github.com/msto63/procline/foundation/core/error"
)

// Kind is the declared type of a parameter
type Kind int

const (
	KindString Kind = iota + 1
	KindInteger
	KindFloat
	KindBoolean
	KindEnum
	KindCustom
)

// String returns the lower case kind name used in signatures and files
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBoolean:
		return "boolean"
	case KindEnum:
		return "enum"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	return k >= KindString && k <= KindCustom
}

// ParseKind parses a kind name as written in definition files. A few
// common synonyms are accepted.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "str", "text":
		return KindString, nil
	case "integer", "int":
		return KindInteger, nil
	case "float", "double", "number":
		return KindFloat, nil
	case "boolean", "bool":
		return KindBoolean, nil
	case "enum":
		return KindEnum, nil
	case "custom":
		return KindCustom, nil
	default:
		return 0, mdwerror.Newf("unsupported parameter kind: `%s`", s).
			WithCode(mdwerror.CodeUnsupportedParameterKind)
	}
}
