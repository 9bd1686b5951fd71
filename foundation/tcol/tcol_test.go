// File: tcol_test.go
// Title: TCOL Engine Tests
// Description: Unit tests for the TCOL engine: parsing into invocations,
//              validation, execution, aliases, suggestions and logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial TCOL tests
// - 2025-10-15 v0.2.0: Engine over typed procedures

package tcol

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwlog "github.com/msto63/procline/foundation/core/log"
	"github.com/msto63/procline/foundation/tcol/executor"
	"github.com/msto63/procline/foundation/tcol/registry"
	"github.com/msto63/procline/foundation/tcol/suggest"
)

func newTestEngine(t *testing.T, opts ...Options) *Engine {
	t.Helper()
	reg, err := registry.Build(registry.Definitions{
		{
			Name:   "draw",
			Handle: "draw-handle",
			Params: []registry.ParamDefinition{
				{Name: "x", Kind: registry.KindInteger, Required: true},
				{Name: "y", Kind: registry.KindInteger, Required: true},
				registry.EnumStrings("color", "red", "green", "blue").AsOptional(),
				{Name: "fill", Kind: registry.KindBoolean},
			},
		},
		{Name: "clear"},
	}, registry.Options{Logger: quietLogger()})
	require.NoError(t, err)

	engine, err := NewEngine(reg, opts...)
	require.NoError(t, err)
	return engine
}

func quietLogger() *mdwlog.Logger {
	return mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelError, Output: &bytes.Buffer{}})
}

func jsonLogger() (*mdwlog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatJSON,
		Output: &buf,
	}), &buf
}

func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &m), scanner.Text())
		entries = append(entries, m)
	}
	return entries
}

func findEntry(entries []map[string]interface{}, msg string) map[string]interface{} {
	for _, e := range entries {
		if e["msg"] == msg {
			return e
		}
	}
	return nil
}

func TestNewEngineRequiresRegistry(t *testing.T) {
	engine, err := NewEngine(nil)
	assert.Nil(t, engine)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInternal))
}

func TestEngineParse(t *testing.T) {
	engine := newTestEngine(t, Options{Logger: quietLogger()})

	inv, err := engine.Parse("draw -color=red 100 200")
	require.NoError(t, err)
	assert.Equal(t, executor.StateBound, inv.State())
	assert.Equal(t, "draw(x=100, y=200, color=red, fill=false)", inv.Summary())
}

func TestEngineParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   mdwerror.Code
	}{
		{"blank", " \t\n", mdwerror.CodeEmptyCommand},
		{"syntax", "draw -=1", mdwerror.CodeSyntax},
		{"unknown command", "paint 1 2", mdwerror.CodeUnrecognizedCommand},
		{"too many", "draw 1 2 red true 5", mdwerror.CodeTooManyPositionalParameters},
		{"unknown named", "draw 1 2 -size=3", mdwerror.CodeUnknownNamedParameter},
		{"coercion", "draw 1 2 -color=pink", mdwerror.CodeTypeCoercionFailure},
		{"too long", "draw " + strings.Repeat("1 ", 40), mdwerror.CodeInputTooLong},
	}

	engine := newTestEngine(t, Options{Logger: quietLogger(), MaxCommandLength: 64})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := engine.Parse(tt.source)
			assert.Nil(t, inv)
			require.Error(t, err)
			assert.Equal(t, tt.code, mdwerror.GetCode(err))
		})
	}
}

func TestEngineParseRejectsNonDecimalFloats(t *testing.T) {
	reg, err := registry.Build(registry.Definitions{{
		Name:   "scale",
		Params: []registry.ParamDefinition{{Name: "f", Kind: registry.KindFloat, Required: true}},
	}}, registry.Options{Logger: quietLogger()})
	require.NoError(t, err)
	engine, err := NewEngine(reg, Options{Logger: quietLogger()})
	require.NoError(t, err)

	for _, source := range []string{"scale inf", "scale NaN", "scale '1_0.5'", "scale '0x1p4'", "scale '+2.0'"} {
		t.Run(source, func(t *testing.T) {
			inv, err := engine.Parse(source)
			assert.Nil(t, inv)
			assert.Equal(t, mdwerror.CodeTypeCoercionFailure, mdwerror.GetCode(err))
		})
	}

	inv, err := engine.Parse("scale '2.5'")
	require.NoError(t, err)
	f, _ := inv.Float("f")
	assert.Equal(t, 2.5, f)
}

func TestEngineParseMatchesDecomposedEnumLiteral(t *testing.T) {
	reg, err := registry.Build(registry.Definitions{{
		Name:   "menu",
		Params: []registry.ParamDefinition{registry.EnumStrings("m", "cafe\u0301", "tea")},
	}}, registry.Options{Logger: quietLogger()})
	require.NoError(t, err)
	engine, err := NewEngine(reg, Options{Logger: quietLogger()})
	require.NoError(t, err)

	for _, source := range []string{"menu 'cafe\u0301'", "menu caf\u00e9"} {
		inv, err := engine.Parse(source)
		require.NoError(t, err, source)
		v, ok := inv.Get("m")
		require.True(t, ok)
		assert.Equal(t, "cafe\u0301", v)
	}
}

func TestEngineParsedInvocationIsSealed(t *testing.T) {
	engine := newTestEngine(t, Options{Logger: quietLogger()})

	inv, err := engine.Parse("draw 1 2")
	require.NoError(t, err)

	err = inv.Put("x", 99)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvocationSealed))
	assert.Equal(t, executor.StateBound, inv.State())

	x, _ := inv.Int("x")
	assert.Equal(t, 1, x)
}

func TestEngineParseLogsFailureAtWarn(t *testing.T) {
	logger, buf := jsonLogger()
	engine := newTestEngine(t, Options{Logger: logger})

	_, err := engine.Parse("paint 1 2")
	require.Error(t, err)

	entry := findEntry(logEntries(t, buf), err.Error())
	require.NotNil(t, entry)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "UNRECOGNIZED_COMMAND", entry["code"])
	assert.Equal(t, "tcol-engine", entry["component"])
}

func TestEngineValidate(t *testing.T) {
	engine := newTestEngine(t, Options{Logger: quietLogger()})

	inv, err := engine.Validate("draw 1 2")
	require.NoError(t, err)
	assert.Equal(t, executor.StateBound, inv.State())

	_, err = engine.Validate("draw 1")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeMissingRequiredParameter))
}

func TestEngineExecute(t *testing.T) {
	engine := newTestEngine(t, Options{Logger: quietLogger()})

	var gotHandle any
	var gotArgs []any
	target := executor.TargetFunc(func(handle any, args []any) error {
		gotHandle, gotArgs = handle, args
		return nil
	})

	result, err := engine.Execute("draw 1 2 -fill", target)
	require.NoError(t, err)
	assert.Equal(t, "draw-handle", gotHandle)
	assert.Equal(t, []any{1, 2, nil, true}, gotArgs)
	assert.Equal(t, "draw 1 2 -fill", result.Command)
	assert.Equal(t, executor.StateInvoked, result.Invocation.State())
	assert.True(t, strings.HasPrefix(result.String(), "OK: draw(x=1, y=2, color=<absent>, fill=true)"))
}

func TestEngineExecuteTargetError(t *testing.T) {
	engine := newTestEngine(t, Options{Logger: quietLogger()})
	boom := errors.New("canvas locked")

	_, err := engine.Execute("clear", executor.TargetFunc(func(any, []any) error { return boom }))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "clear: canvas locked", err.Error())
}

func TestEngineExecuteLogsSlowRun(t *testing.T) {
	logger, buf := jsonLogger()
	engine := newTestEngine(t, Options{Logger: logger, SlowThreshold: time.Millisecond})

	_, err := engine.Execute("clear", executor.TargetFunc(func(any, []any) error {
		time.Sleep(5 * time.Millisecond)
		return nil
	}))
	require.NoError(t, err)

	entry := findEntry(logEntries(t, buf), "operation slow")
	require.NotNil(t, entry)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "clear", entry["procedure"])
}

func TestEngineCreateAlias(t *testing.T) {
	engine := newTestEngine(t, Options{Logger: quietLogger()})

	alias, err := engine.CreateAlias("draw", "d")
	require.NoError(t, err)
	assert.Equal(t, "d", alias.Name())

	inv, err := engine.Parse("d 3 4")
	require.NoError(t, err)
	assert.Equal(t, "draw-handle", inv.Procedure().Handle())

	_, err = engine.CreateAlias("draw", "d")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeAliasNameAlreadyExists))

	_, err = engine.CreateAlias("paint", "p")
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeAliasTargetNotFound))

	_, ok := engine.Registry().Resolve("p")
	assert.False(t, ok)
}

func TestEngineSuggest(t *testing.T) {
	engine := newTestEngine(t, Options{Logger: quietLogger(), Suggest: suggest.Options{MaxEntries: 1}})

	got := engine.Suggest("")
	require.Len(t, got, 1)
	assert.Equal(t, "clear", got[0].Name)

	got = engine.Suggest("DR 1 2")
	require.Len(t, got, 1)
	assert.Equal(t, "draw <x:integer> <y:integer> [color:red|green|blue] <fill:boolean>", got[0].Label)
}
