// File: definition.go
// Title: Declarative Procedure Metadata
// Description: The metadata a host supplies to describe its procedures and
//              the Source interface Build consumes it through.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-15
// Modified: 2025-10-15

package registry

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwast "github.com/msto63/procline/foundation/tcol/ast"
)

// Definition describes one procedure
type Definition struct {
	Name        string
	Description string
	Handle      any
	Params      []ParamDefinition
}

// ParamDefinition describes one parameter. A parameter is optional when it
// is Nullable and not Required; booleans that are not optional are bound to
// false when omitted.
type ParamDefinition struct {
	Name     string
	Kind     Kind
	Required bool
	Nullable bool

	// Values lists the legal literals for KindEnum
	Values []EnumValue

	// Converter is mandatory for KindCustom
	Converter ConverterFunc

	// TypeName labels a custom kind in signatures
	TypeName string
}

// Source yields the procedure metadata of a host
type Source interface {
	Definitions() ([]Definition, error)
}

// SourceFunc adapts a function to Source
type SourceFunc func() ([]Definition, error)

// Definitions calls f
func (f SourceFunc) Definitions() ([]Definition, error) {
	return f()
}

// Definitions is a fixed list of definitions usable as a Source
type Definitions []Definition

// Definitions returns d
func (d Definitions) Definitions() ([]Definition, error) {
	return d, nil
}

// Sources concatenates several sources in order
func Sources(sources ...Source) Source {
	return SourceFunc(func() ([]Definition, error) {
		var all []Definition
		for _, s := range sources {
			defs, err := s.Definitions()
			if err != nil {
				return nil, err
			}
			all = append(all, defs...)
		}
		return all, nil
	})
}

// EnumOf builds a required enum parameter whose literals are the String()
// forms of values and whose bound value is the typed value itself
func EnumOf[T fmt.Stringer](name string, values ...T) ParamDefinition {
	enum := make([]EnumValue, len(values))
	for i, v := range values {
		enum[i] = EnumValue{Name: v.String(), Value: v}
	}
	return ParamDefinition{Name: name, Kind: KindEnum, Required: true, Values: enum}
}

// EnumStrings builds a required enum parameter binding the literal itself
func EnumStrings(name string, literals ...string) ParamDefinition {
	enum := make([]EnumValue, len(literals))
	for i, l := range literals {
		enum[i] = EnumValue{Name: l, Value: l}
	}
	return ParamDefinition{Name: name, Kind: KindEnum, Required: true, Values: enum}
}

// AsOptional returns a copy of pd that may be omitted
func (pd ParamDefinition) AsOptional() ParamDefinition {
	pd.Required = false
	pd.Nullable = true
	return pd
}

// parameter validates pd. Names and enum literals are stored in NFC, the
// form the parser hands out.
func (pd ParamDefinition) parameter() (Parameter, error) {
	pd.Name = norm.NFC.String(pd.Name)
	if !mdwast.IsIdentifier(pd.Name) {
		return Parameter{}, mdwerror.Newf("invalid parameter name: `%s`", pd.Name).
			WithCode(mdwerror.CodeInvalidDefinition)
	}
	if !pd.Kind.Valid() {
		return Parameter{}, mdwerror.Newf("parameter `%s`: unsupported parameter kind %d", pd.Name, int(pd.Kind)).
			WithCode(mdwerror.CodeUnsupportedParameterKind)
	}

	param := Parameter{
		Name:     pd.Name,
		Kind:     pd.Kind,
		Optional: pd.Nullable && !pd.Required,
		TypeName: pd.TypeName,
	}

	switch pd.Kind {
	case KindEnum:
		if len(pd.Values) == 0 {
			return Parameter{}, mdwerror.Newf("parameter `%s`: enum without values", pd.Name).
				WithCode(mdwerror.CodeInvalidDefinition)
		}
		seen := make(map[string]bool, len(pd.Values))
		param.Values = make([]EnumValue, 0, len(pd.Values))
		for _, v := range pd.Values {
			v.Name = norm.NFC.String(v.Name)
			if v.Name == "" || seen[v.Name] {
				return Parameter{}, mdwerror.Newf("parameter `%s`: invalid or repeated enum literal `%s`", pd.Name, v.Name).
					WithCode(mdwerror.CodeInvalidDefinition)
			}
			seen[v.Name] = true
			param.Values = append(param.Values, v)
		}
	case KindCustom:
		if pd.Converter == nil {
			return Parameter{}, mdwerror.Newf("parameter `%s`: custom kind without converter", pd.Name).
				WithCode(mdwerror.CodeInvalidDefinition)
		}
		param.Convert = pd.Converter
	}

	return param, nil
}
