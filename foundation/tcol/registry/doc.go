// File: doc.go
// Title: TCOL Registry Package Documentation
// Description: Documents the procedure registry.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial registry implementation
// - 2025-10-15 v0.2.0: Typed procedures built from declarative metadata

/*
Package registry holds the procedures a host exposes on the command line.

A host describes its procedures as Definitions (name, opaque handle and an
ordered list of typed parameters) and hands them to Build through a Source.
Build validates every definition and either returns a complete Registry or
an error; there is no partially built registry. Definitions can also be
read from YAML or TOML files with LoadDefinitions, in which case custom
converters are looked up by name in a Converters map.

Once built, procedures are immutable. The only later mutation is
CreateAlias, which adds a second name for an existing procedure sharing
its parameters and handle.

A Registry has no internal locking. It is owned by one goroutine which
performs registration, aliasing and lookups.
*/
package registry
