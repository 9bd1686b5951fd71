// File: integration_test.go
// Title: TCOL Integration Tests for Complete Command Flow
// Description: Integration tests that run command lines through the engine
//              from text to the host target, covering the reference
//              scenarios for binding, defaults, errors and aliases.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial integration test suite
// - 2025-10-15 v0.2.0: Procedure invocation flow against a mock target

package tcol

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/procline/foundation/core/error"
	"github.com/msto63/procline/foundation/tcol/executor"
	"github.com/msto63/procline/foundation/tcol/registry"
)

// Test infrastructure for integration tests

// MockCall records one call of the mock target
type MockCall struct {
	Handle any
	Args   []any
}

// MockTarget records every call it receives
type MockTarget struct {
	calls []MockCall
}

// Call implements executor.Target
func (m *MockTarget) Call(handle any, args []any) error {
	m.calls = append(m.calls, MockCall{Handle: handle, Args: append([]any(nil), args...)})
	return nil
}

// LastCall returns the most recent call
func (m *MockTarget) LastCall() (MockCall, bool) {
	if len(m.calls) == 0 {
		return MockCall{}, false
	}
	return m.calls[len(m.calls)-1], true
}

type letter int

const (
	letterA letter = iota
	letterB
)

func (l letter) String() string {
	return [...]string{"A", "B"}[l]
}

type IntegrationTestSuite struct {
	engine *Engine
	target *MockTarget
}

func setupIntegrationTest(t *testing.T) *IntegrationTestSuite {
	t.Helper()
	reg, err := registry.Build(registry.Definitions{
		{
			Name:   "test-params",
			Handle: "testParams",
			Params: []registry.ParamDefinition{
				{Name: "n", Kind: registry.KindInteger, Required: true},
				{Name: "s", Kind: registry.KindString, Required: true},
				{Name: "b", Kind: registry.KindBoolean},
			},
		},
		{
			Name:   "require-booleans",
			Handle: "requireBooleans",
			Params: []registry.ParamDefinition{
				{Name: "a", Kind: registry.KindBoolean},
				{Name: "b", Kind: registry.KindBoolean},
				{Name: "c", Kind: registry.KindBoolean, Required: true},
			},
		},
		{
			Name:   "opt-booleans",
			Handle: "optBooleans",
			Params: []registry.ParamDefinition{
				{Name: "a", Kind: registry.KindBoolean},
				{Name: "b", Kind: registry.KindBoolean, Nullable: true},
				{Name: "c", Kind: registry.KindBoolean, Nullable: true},
			},
		},
		{
			Name:   "pick",
			Handle: "pick",
			Params: []registry.ParamDefinition{registry.EnumOf("letter", letterA, letterB)},
		},
		{
			Name:   "three-required",
			Handle: "threeRequired",
			Params: []registry.ParamDefinition{
				{Name: "i", Kind: registry.KindInteger, Required: true},
				{Name: "f", Kind: registry.KindFloat, Required: true},
				{Name: "s", Kind: registry.KindString, Required: true},
				{Name: "note", Kind: registry.KindString, Nullable: true},
			},
		},
	}, registry.Options{Logger: quietLogger()})
	require.NoError(t, err)

	engine, err := NewEngine(reg, Options{Logger: quietLogger()})
	require.NoError(t, err)

	return &IntegrationTestSuite{engine: engine, target: &MockTarget{}}
}

func (suite *IntegrationTestSuite) run(t *testing.T, source string) MockCall {
	t.Helper()
	_, err := suite.engine.Execute(source, suite.target)
	require.NoError(t, err, source)
	call, ok := suite.target.LastCall()
	require.True(t, ok)
	return call
}

func TestIntegration_ReferenceScenarios(t *testing.T) {
	tests := []struct {
		name   string
		source string
		handle string
		args   []any
	}{
		{"test-params", "test-params 123 'hello' -b", "testParams", []any{123, "hello", true}},
		{"hello world round trip", "test-params 1 'hello world'", "testParams", []any{1, "hello world", false}},
		{"double quotes", `test-params 1 "say \"hi\""`, "testParams", []any{1, `say "hi"`, false}},
		{"require-booleans", "require-booleans", "requireBooleans", []any{false, false, false}},
		{"opt-booleans", "opt-booleans -b -a=false", "optBooleans", []any{false, true, nil}},
		{"enum from Go type", "pick B", "pick", []any{letterB}},
		{"optional string absent", "three-required 1 2.5 x", "threeRequired", []any{1, 2.5, "x", nil}},
		{"multi line", "three-required\n  -s=x\n  -f=-0.5\n  -i=-3", "threeRequired", []any{-3, -0.5, "x", nil}},
	}

	suite := setupIntegrationTest(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := suite.run(t, tt.source)
			assert.Equal(t, tt.handle, call.Handle)
			assert.Equal(t, tt.args, call.Args)
		})
	}
}

func TestIntegration_MissingRequired(t *testing.T) {
	suite := setupIntegrationTest(t)
	values := []string{"-i=1", "-f=2.0", "-s=x"}

	// every strict subset of the required values fails
	for mask := 0; mask < 7; mask++ {
		var given []string
		for i, v := range values {
			if mask&(1<<i) != 0 {
				given = append(given, v)
			}
		}
		source := strings.TrimSpace("three-required " + strings.Join(given, " "))

		t.Run(fmt.Sprintf("mask %03b", mask), func(t *testing.T) {
			before := len(suite.target.calls)
			_, err := suite.engine.Execute(source, suite.target)
			require.Error(t, err)
			assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMissingRequiredParameter))
			assert.Len(t, suite.target.calls, before)
		})
	}
}

func TestIntegration_ErrorHandling(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   mdwerror.Code
		line   int
		column int
	}{
		{"unknown command", "frobnicate", mdwerror.CodeUnrecognizedCommand, 1, 0},
		{"enum literal", "pick C", mdwerror.CodeTypeCoercionFailure, 1, 5},
		{"enum is case sensitive", "pick a", mdwerror.CodeTypeCoercionFailure, 1, 5},
		{"unterminated string", "test-params 1 'open", mdwerror.CodeSyntax, 1, 14},
		{"second line", "test-params 1\n  -q", mdwerror.CodeUnknownNamedParameter, 2, 3},
	}

	suite := setupIntegrationTest(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := suite.engine.Execute(tt.source, suite.target)
			assert.Nil(t, result)
			require.Error(t, err)
			assert.Equal(t, tt.code, mdwerror.GetCode(err))

			line, column, ok := mdwerror.GetPosition(err)
			require.True(t, ok)
			assert.Equal(t, tt.line, line)
			assert.Equal(t, tt.column, column)
		})
	}
	assert.Empty(t, suite.target.calls)
}

func TestIntegration_EnumCauseIsKept(t *testing.T) {
	suite := setupIntegrationTest(t)

	_, err := suite.engine.Parse("pick C")
	require.Error(t, err)

	var mdwErr *mdwerror.Error
	require.ErrorAs(t, err, &mdwErr)
	require.NotNil(t, mdwErr.Cause())
	assert.Contains(t, mdwErr.Cause().Error(), "A|B")
}

func TestIntegration_AliasSystem(t *testing.T) {
	suite := setupIntegrationTest(t)

	_, err := suite.engine.CreateAlias("test-params", "tp")
	require.NoError(t, err)

	_, err = suite.engine.CreateAlias("test-params", "tp")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeAliasNameAlreadyExists))

	viaAlias := suite.run(t, "tp 7 'x' -b")
	original := suite.run(t, "test-params 7 'x' -b")
	assert.Equal(t, original, viaAlias)

	// an alias of an alias still targets the original procedure
	_, err = suite.engine.CreateAlias("tp", "t")
	require.NoError(t, err)
	assert.Equal(t, "testParams", suite.run(t, "t 1 y").Handle)
}

func TestIntegration_InvocationRunsOnce(t *testing.T) {
	suite := setupIntegrationTest(t)

	inv, err := suite.engine.Parse("require-booleans -c")
	require.NoError(t, err)
	require.NoError(t, inv.Run(suite.target))

	err = inv.Run(suite.target)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvocationConsumed))
	assert.Len(t, suite.target.calls, 1)
	assert.Equal(t, []any{false, false, true}, suite.target.calls[0].Args)
}

func TestIntegration_DuplicateParameterNames(t *testing.T) {
	_, err := registry.Build(registry.Definitions{
		{Name: "dup", Params: []registry.ParamDefinition{
			{Name: "x", Kind: registry.KindInteger, Required: true},
			{Name: "x", Kind: registry.KindString, Nullable: true},
		}},
	}, registry.Options{Logger: quietLogger()})
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeAmbiguousParameterName))
}

var _ executor.Target = (*MockTarget)(nil)
