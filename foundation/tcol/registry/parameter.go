// File: parameter.go
// Title: Parameter Descriptors
// Description: Describes one typed parameter of a procedure including its
//              converter: none for primitive kinds, a literal table for
//              enums and a host function for custom kinds.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-15
// Modified: 2025-10-15

package registry

import (
	"fmt"
	"strings"
)

// ConverterFunc converts the unquoted text of a token into a value
type ConverterFunc func(text string) (any, error)

// Converters maps converter names used in definition files to functions
type Converters map[string]ConverterFunc

// EnumValue is one legal literal of an enum parameter and the value bound
// when it is used
type EnumValue struct {
	Name  string
	Value any
}

// Parameter describes one declared parameter
type Parameter struct {
	Name     string
	Kind     Kind
	Optional bool

	// Values lists the legal literals of an enum, in declaration order
	Values []EnumValue

	// Convert is set for custom kinds only
	Convert ConverterFunc

	// TypeName labels custom kinds in signatures, e.g. "point"
	TypeName string
}

// Literals returns the enum literal names in declaration order
func (p Parameter) Literals() []string {
	names := make([]string, len(p.Values))
	for i, v := range p.Values {
		names[i] = v.Name
	}
	return names
}

// Lookup finds the value of an enum literal by exact name
func (p Parameter) Lookup(name string) (any, bool) {
	for _, v := range p.Values {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

// TypeLabel is the type shown in signatures
func (p Parameter) TypeLabel() string {
	switch {
	case p.Kind == KindEnum:
		return strings.Join(p.Literals(), "|")
	case p.Kind == KindCustom && p.TypeName != "":
		return p.TypeName
	default:
		return p.Kind.String()
	}
}

// String renders "<name:type>" for required and "[name:type]" for optional
// parameters
func (p Parameter) String() string {
	if p.Optional {
		return fmt.Sprintf("[%s:%s]", p.Name, p.TypeLabel())
	}
	return fmt.Sprintf("<%s:%s>", p.Name, p.TypeLabel())
}
