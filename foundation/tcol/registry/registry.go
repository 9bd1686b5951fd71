// File: registry.go
// Title: TCOL Procedure Registry
// Description: Maps procedure names to procedures. Rejects duplicate names,
//              builds all-or-nothing from a Source and supports aliases.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial registry with objects, methods and aliases
// - 2025-10-15 v0.2.0: Flat procedure registry, identity checked aliases

package registry

import (
	"sort"

	"golang.org/x/text/unicode/norm"

	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwlog "github.com/msto63/procline/foundation/core/log"
	mdwast "github.com/msto63/procline/foundation/tcol/ast"
)

// Options configures registry behavior
type Options struct {
	Logger *mdwlog.Logger
}

// Registry maps names to procedures
type Registry struct {
	procedures map[string]*Procedure
	logger     *mdwlog.Logger
}

// New creates an empty registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	return &Registry{
		procedures: make(map[string]*Procedure),
		logger:     opts.Logger.WithField("component", "tcol-registry"),
	}
}

// Build reads every definition from src and registers it. Any invalid
// definition or duplicate name fails the whole build.
func Build(src Source, opts Options) (*Registry, error) {
	defs, err := src.Definitions()
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read procedure definitions")
	}

	r := New(opts)
	for _, def := range defs {
		proc, err := NewProcedure(def)
		if err != nil {
			return nil, err
		}
		if err := r.Register(proc); err != nil {
			return nil, err
		}
	}

	r.logger.Info("procedure registry built", mdwlog.Fields{"procedures": len(r.procedures)})
	return r, nil
}

// Register adds a procedure under its name
func (r *Registry) Register(proc *Procedure) error {
	if proc == nil {
		return mdwerror.New("procedure cannot be nil").WithCode(mdwerror.CodeInvalidDefinition)
	}
	if _, exists := r.procedures[proc.name]; exists {
		return mdwerror.Newf("duplicate procedure name: `%s`", proc.name).
			WithCode(mdwerror.CodeDuplicateProcedureName).
			WithDetail("procedure", proc.name)
	}

	r.procedures[proc.name] = proc
	r.logger.Debug("procedure registered", mdwlog.Fields{
		"name":   proc.name,
		"params": len(proc.params),
	})
	return nil
}

// Resolve looks up a procedure by exact name, compared in NFC
func (r *Registry) Resolve(name string) (*Procedure, bool) {
	proc, ok := r.procedures[norm.NFC.String(name)]
	return proc, ok
}

// Contains reports whether proc itself, not just its name, is registered
func (r *Registry) Contains(proc *Procedure) bool {
	if proc == nil {
		return false
	}
	registered, ok := r.procedures[proc.name]
	return ok && registered == proc
}

// CreateAlias registers newName for proc. proc must be registered by
// identity and newName must be unused. The original entry is not touched.
func (r *Registry) CreateAlias(proc *Procedure, newName string) (*Procedure, error) {
	newName = norm.NFC.String(newName)
	if !r.Contains(proc) {
		name := "<nil>"
		if proc != nil {
			name = proc.name
		}
		return nil, mdwerror.Newf("alias target not found: `%s`", name).
			WithCode(mdwerror.CodeAliasTargetNotFound)
	}
	if _, exists := r.procedures[newName]; exists {
		return nil, mdwerror.Newf("alias name already exists: `%s`", newName).
			WithCode(mdwerror.CodeAliasNameAlreadyExists).
			WithDetail("alias", newName)
	}
	if !mdwast.IsIdentifier(newName) {
		return nil, mdwerror.Newf("invalid alias name: `%s`", newName).
			WithCode(mdwerror.CodeInvalidDefinition)
	}

	alias := proc.alias(newName)
	r.procedures[newName] = alias

	r.logger.Info("alias created", mdwlog.Fields{
		"alias":  newName,
		"target": alias.Origin().name,
	})
	return alias, nil
}

// Len returns the number of registered names including aliases
func (r *Registry) Len() int {
	return len(r.procedures)
}

// Names returns all registered names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.procedures))
	for name := range r.procedures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Procedures returns all registered procedures sorted by name
func (r *Registry) Procedures() []*Procedure {
	names := r.Names()
	procs := make([]*Procedure, len(names))
	for i, name := range names {
		procs[i] = r.procedures[name]
	}
	return procs
}
