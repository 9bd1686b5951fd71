// File: procedure.go
// Title: Procedure Descriptors
// Description: An immutable, validated procedure: name, ordered parameters
//              and the opaque handle passed back to the host on invocation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-10-15
// Modified: 2025-10-15

package registry

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwast "github.com/msto63/procline/foundation/tcol/ast"
)

// Procedure is a registered procedure. Aliases are separate Procedures
// sharing parameters and handle with their origin.
type Procedure struct {
	name        string
	description string
	params      []Parameter
	index       map[string]int
	handle      any
	origin      *Procedure
}

// NewProcedure validates def and builds a procedure from it
func NewProcedure(def Definition) (*Procedure, error) {
	def.Name = norm.NFC.String(def.Name)
	if !mdwast.IsIdentifier(def.Name) {
		return nil, mdwerror.Newf("invalid procedure name: `%s`", def.Name).
			WithCode(mdwerror.CodeInvalidDefinition)
	}

	p := &Procedure{
		name:        def.Name,
		description: def.Description,
		params:      make([]Parameter, 0, len(def.Params)),
		index:       make(map[string]int, len(def.Params)),
		handle:      def.Handle,
	}

	for _, pd := range def.Params {
		param, err := pd.parameter()
		if err != nil {
			return nil, mdwerror.Wrapf(err, "procedure `%s`", def.Name).
				WithDetail("procedure", def.Name)
		}
		if _, dup := p.index[param.Name]; dup {
			return nil, mdwerror.Newf("procedure `%s`: parameter `%s` declared twice", def.Name, param.Name).
				WithCode(mdwerror.CodeAmbiguousParameterName).
				WithDetail("procedure", def.Name)
		}
		p.index[param.Name] = len(p.params)
		p.params = append(p.params, param)
	}

	return p, nil
}

// Name returns the name the procedure is registered under
func (p *Procedure) Name() string {
	return p.name
}

// Description returns the help text, if any
func (p *Procedure) Description() string {
	return p.description
}

// Handle returns the opaque host handle
func (p *Procedure) Handle() any {
	return p.handle
}

// NumParams returns the number of declared parameters
func (p *Procedure) NumParams() int {
	return len(p.params)
}

// Params returns a copy of the parameters in declaration order
func (p *Procedure) Params() []Parameter {
	out := make([]Parameter, len(p.params))
	copy(out, p.params)
	return out
}

// ParamAt returns the parameter in positional slot i
func (p *Procedure) ParamAt(i int) (Parameter, bool) {
	if i < 0 || i >= len(p.params) {
		return Parameter{}, false
	}
	return p.params[i], true
}

// Param looks up a parameter by exact name
func (p *Procedure) Param(name string) (Parameter, bool) {
	i, ok := p.index[name]
	if !ok {
		return Parameter{}, false
	}
	return p.params[i], true
}

// IsAlias reports whether the procedure was created by CreateAlias
func (p *Procedure) IsAlias() bool {
	return p.origin != nil
}

// Origin returns the procedure an alias was created from, or p itself
func (p *Procedure) Origin() *Procedure {
	if p.origin != nil {
		return p.origin
	}
	return p
}

// Signature renders the name followed by every parameter, e.g.
// "draw <x:integer> <y:integer> [color:red|green|blue]"
func (p *Procedure) Signature() string {
	var b strings.Builder
	b.WriteString(p.name)
	for _, param := range p.params {
		b.WriteByte(' ')
		b.WriteString(param.String())
	}
	return b.String()
}

func (p *Procedure) alias(name string) *Procedure {
	return &Procedure{
		name:        name,
		description: p.description,
		params:      p.params,
		index:       p.index,
		handle:      p.handle,
		origin:      p.Origin(),
	}
}
