// File: parser_test.go
// Title: TCOL Parser Tests
// Description: Snapshot tests of parsed trees and table tests for syntax
//              errors and their positions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-15

package parser

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwast "github.com/msto63/procline/foundation/tcol/ast"
)

func TestParseGolden(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"named_and_positional", "draw -color=red 100 200"},
		{"quoted_strings", `text 'hello world' "say \"hi\"" -font="Sans Serif"`},
		{"flags_and_numbers", "scale -b -a=false -1.5 2.5e3 -42 -c"},
		{"multiline", "move\t10\n  -y=20\r\n"},
		{"unicode_identifiers", "zeichne -farbe=grün größe"},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := New(Options{}).Parse(tt.input)
			require.NoError(t, err)
			g.Assert(t, tt.name, []byte(mdwast.Dump(cmd)))
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"draw -color=red 100 200",
		"test-params 'hello world' -b",
		"get-html BODY",
		"clear",
	}
	for _, input := range inputs {
		cmd, err := New(Options{}).Parse(input)
		require.NoError(t, err, input)
		assert.Equal(t, input, cmd.String())
	}
}

func TestParseNormalizesToNFC(t *testing.T) {
	cmd, err := New(Options{}).Parse("draw grün")
	require.NoError(t, err)

	require.Len(t, cmd.Params, 1)
	value := cmd.Params[0].(*mdwast.PositionalParam).Value
	assert.Equal(t, "grün", value.Text)
	assert.Equal(t, mdwast.ValueIdent, value.Kind)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		code    mdwerror.Code
		message string
		line    int
		column  int
	}{
		{"empty", "", mdwerror.CodeEmptyCommand, "empty command", 1, 0},
		{"blank", "  \t\r\n ", mdwerror.CodeEmptyCommand, "empty command", 1, 0},
		{"number as command", "123 abc", mdwerror.CodeSyntax, "expected command name, found `123`", 1, 0},
		{"string as command", "'draw'", mdwerror.CodeSyntax, "expected command name, found `'draw'`", 1, 0},
		{"marker at end", "draw -", mdwerror.CodeSyntax, "expected parameter name after `-`, found end of input", 1, 6},
		{"marker before equals", "draw -=3", mdwerror.CodeSyntax, "expected parameter name after `-`, found `=`", 1, 6},
		{"missing value", "draw -x=", mdwerror.CodeSyntax, "expected value after `=`, found end of input", 1, 8},
		{"marker as value", "draw -x=-y", mdwerror.CodeSyntax, "expected value after `=`, found `-`", 1, 8},
		{"stray equals", "draw = 3", mdwerror.CodeSyntax, "expected parameter, found `=`", 1, 5},
		{"unterminated string", "draw 'abc", mdwerror.CodeSyntax, "unterminated string", 1, 5},
		{"malformed number", "draw 10px", mdwerror.CodeSyntax, "malformed number `10px`", 1, 5},
		{"dangling decimal point", "draw 1.", mdwerror.CodeSyntax, "malformed number `1.`", 1, 5},
		{"illegal character", "draw @", mdwerror.CodeSyntax, "unexpected character '@'", 1, 5},
		{"error on second line", "draw 1\n  #", mdwerror.CodeSyntax, "unexpected character '#'", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := New(Options{}).Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, cmd)

			var mdwErr *mdwerror.Error
			require.ErrorAs(t, err, &mdwErr)
			assert.Equal(t, tt.code, mdwErr.Code())
			assert.Equal(t, tt.message, mdwErr.Message())

			line, column, ok := mdwErr.Position()
			require.True(t, ok)
			assert.Equal(t, tt.line, line)
			assert.Equal(t, tt.column, column)
		})
	}
}

func TestParseInputTooLong(t *testing.T) {
	p := New(Options{MaxInputLength: 10})

	_, err := p.Parse("draw " + strings.Repeat("1", 6))
	require.Error(t, err)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInputTooLong))
	line, column, ok := mdwerror.GetPosition(err)
	require.True(t, ok)
	assert.Equal(t, 1, line)
	assert.Equal(t, 0, column)

	_, err = p.Parse("draw 12345")
	assert.NoError(t, err)
}

func TestParserIsReusable(t *testing.T) {
	p := New(Options{})

	_, err := p.Parse("draw 'open")
	require.Error(t, err)

	cmd, err := p.Parse("line 1 2 3 4")
	require.NoError(t, err)
	assert.Len(t, cmd.Positionals(), 4)
}
