// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by procline to classify failures
//              of command parsing, parameter binding, registry construction
//              and configuration loading.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-10-15 v0.2.0: Replaced platform codes with command language codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Command line input
	CodeEmptyCommand Code = "EMPTY_COMMAND"
	CodeInputTooLong Code = "INPUT_TOO_LONG"
	CodeSyntax       Code = "SYNTAX_ERROR"

	// Binding a parsed command against the registry
	CodeUnrecognizedCommand         Code = "UNRECOGNIZED_COMMAND"
	CodeTooManyPositionalParameters Code = "TOO_MANY_POSITIONAL_PARAMETERS"
	CodeUnknownNamedParameter       Code = "UNKNOWN_NAMED_PARAMETER"
	CodeMissingRequiredParameter    Code = "MISSING_REQUIRED_PARAMETER"
	CodeTypeCoercionFailure         Code = "TYPE_COERCION_FAILURE"
	CodeInvocationConsumed          Code = "INVOCATION_CONSUMED"
	CodeInvocationSealed            Code = "INVOCATION_SEALED"

	// Registry construction
	CodeDuplicateProcedureName   Code = "DUPLICATE_PROCEDURE_NAME"
	CodeAliasTargetNotFound      Code = "ALIAS_TARGET_NOT_FOUND"
	CodeAliasNameAlreadyExists   Code = "ALIAS_NAME_ALREADY_EXISTS"
	CodeAmbiguousParameterName   Code = "AMBIGUOUS_PARAMETER_NAME"
	CodeUnsupportedParameterKind Code = "UNSUPPORTED_PARAMETER_KIND"
	CodeInvalidDefinition        Code = "INVALID_DEFINITION"

	// Configuration and environment
	CodeConfigError Code = "CONFIG_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsInputError reports whether the code describes a problem with the
// command text the user typed, as opposed to a host or setup problem.
func (c Code) IsInputError() bool {
	switch c {
	case CodeEmptyCommand, CodeInputTooLong, CodeSyntax,
		CodeUnrecognizedCommand, CodeTooManyPositionalParameters,
		CodeUnknownNamedParameter, CodeMissingRequiredParameter,
		CodeTypeCoercionFailure:
		return true
	default:
		return false
	}
}

// IsRegistrationError reports whether the code is raised while building the
// procedure registry.
func (c Code) IsRegistrationError() bool {
	switch c {
	case CodeDuplicateProcedureName, CodeAliasTargetNotFound,
		CodeAliasNameAlreadyExists, CodeAmbiguousParameterName,
		CodeUnsupportedParameterKind, CodeInvalidDefinition:
		return true
	default:
		return false
	}
}
