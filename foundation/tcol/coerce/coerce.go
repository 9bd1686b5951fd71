// File: coerce.go
// Title: TCOL Value Coercion
// Description: Converts the text of a value token into the typed value a
//              parameter declares. Failures carry the token position and,
//              for converter failures, the converter's error as cause.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-15
// Modified: 2025-10-15

// Package coerce converts command line tokens into typed parameter values.
//
//	string   quotes stripped, otherwise the literal text
//	integer  base-10 signed, bound as int
//	float    decimal, bound as float64
//	boolean  a bare flag is true; explicit values must be "true" or "false"
//	enum     exact literal match, bound as the literal's value
//	custom   the parameter's converter on the unquoted text
package coerce

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"

	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwast "github.com/msto63/procline/foundation/tcol/ast"
	"github.com/msto63/procline/foundation/tcol/registry"
)

// Number forms accepted by the lexer. Quoted and identifier tokens are held
// to the same grammar.
var (
	integerPattern = regexp.MustCompile(`^-?[0-9]+$`)
	floatPattern   = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+([eE][+-]?[0-9]+)?)?$`)
)

// Value coerces value for param. A nil value means the parameter was given
// as a bare flag, which only booleans accept.
func Value(param registry.Parameter, value *mdwast.Value, flagPos mdwast.Position) (any, error) {
	if value == nil {
		if param.Kind == registry.KindBoolean {
			return true, nil
		}
		return nil, failure(param, "<flag>", flagPos,
			errors.Errorf("parameter `%s` of kind %s needs a value", param.Name, param.Kind))
	}

	v, err := Text(param, value.Text)
	if err != nil {
		return nil, failure(param, value.Raw, value.Pos, err)
	}
	return v, nil
}

// Text coerces the unquoted text of a token for param
func Text(param registry.Parameter, text string) (any, error) {
	switch param.Kind {
	case registry.KindString:
		return text, nil

	case registry.KindInteger:
		if !integerPattern.MatchString(text) {
			return nil, errors.Errorf("`%s` is not an integer", text)
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, errors.Wrapf(err, "`%s` is not an integer", text)
		}
		return n, nil

	case registry.KindFloat:
		if !floatPattern.MatchString(text) {
			return nil, errors.Errorf("`%s` is not a number", text)
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "`%s` is not a number", text)
		}
		return f, nil

	case registry.KindBoolean:
		switch text {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, errors.Errorf("`%s` is not a boolean, expected true or false", text)

	case registry.KindEnum:
		if v, ok := param.Lookup(text); ok {
			return v, nil
		}
		return nil, errors.Errorf("`%s` is not one of %s", text, param.TypeLabel())

	case registry.KindCustom:
		if param.Convert == nil {
			return nil, errors.Errorf("parameter `%s` has no converter", param.Name)
		}
		v, err := param.Convert(text)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return v, nil

	default:
		return nil, mdwerror.Newf("unsupported parameter kind: %s", param.Kind).
			WithCode(mdwerror.CodeUnsupportedParameterKind)
	}
}

func failure(param registry.Parameter, raw string, pos mdwast.Position, cause error) *mdwerror.Error {
	return mdwerror.Wrapf(cause, "cannot bind %s to parameter `%s`", raw, param.Name).
		WithCode(mdwerror.CodeTypeCoercionFailure).
		WithPosition(pos.Line, pos.Column).
		WithDetail("parameter", param.Name).
		WithDetail("kind", param.Kind.String())
}
