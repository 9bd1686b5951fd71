// ============================================================================
// procline - Sketch Canvas Tests
// ============================================================================

package sketch

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/procline/foundation/core/error"
	mdwlog "github.com/msto63/procline/foundation/core/log"
	"github.com/msto63/procline/foundation/tcol"
	"github.com/msto63/procline/foundation/tcol/registry"
)

func setup(t *testing.T) (*tcol.Engine, *Canvas, *bytes.Buffer) {
	t.Helper()
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelError, Output: &bytes.Buffer{}})

	reg, err := registry.Build(Source(), registry.Options{Logger: logger})
	require.NoError(t, err)
	engine, err := tcol.NewEngine(reg, tcol.Options{Logger: logger})
	require.NoError(t, err)

	var out bytes.Buffer
	return engine, New(&out, logger), &out
}

func runAll(t *testing.T, engine *tcol.Engine, canvas *Canvas, lines ...string) {
	t.Helper()
	for _, line := range lines {
		_, err := engine.Execute(line, canvas)
		require.NoError(t, err, line)
	}
}

func TestProceduresLoad(t *testing.T) {
	engine, _, _ := setup(t)
	assert.Equal(t,
		[]string{"clear", "draw", "line", "move", "scale", "show", "text", "undo"},
		engine.Registry().Names())

	line, ok := engine.Registry().Resolve("line")
	require.True(t, ok)
	assert.Equal(t, "line <from:point> <to:point> [color:black|red|green|blue]", line.Signature())
	assert.Equal(t, "line", line.Handle())
}

func TestCanvasDrawing(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "box with defaults",
			lines: []string{"draw 100 200"},
			want:  []string{"box (100;200) black"},
		},
		{
			name:  "named color and fill",
			lines: []string{"draw -color=red 100 200 -fill"},
			want:  []string{"box (100;200) red filled"},
		},
		{
			name:  "line between points",
			lines: []string{"line '0;0' '10;-5' blue"},
			want:  []string{"line (0;0)-(10;-5) blue"},
		},
		{
			name:  "text at cursor",
			lines: []string{"move 3 4", "move -relative 1 1", "text 'hello world'"},
			want:  []string{`text "hello world" at (4;5) black`},
		},
		{
			name:  "text at point",
			lines: []string{`text "hi" -at='7;8' -color=green`},
			want:  []string{`text "hi" at (7;8) green`},
		},
		{
			name:  "scale applies to later shapes",
			lines: []string{"draw 10 10", "scale 2.5", "draw 10 10"},
			want:  []string{"box (10;10) black", "box (25;25) black"},
		},
		{
			name:  "clear and undo",
			lines: []string{"draw 1 1", "draw 2 2", "clear", "undo"},
			want:  []string{"box (1;1) black", "box (2;2) black"},
		},
		{
			name:  "undo several steps",
			lines: []string{"draw 1 1", "draw 2 2", "draw 3 3", "undo 2"},
			want:  []string{"box (1;1) black"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, canvas, _ := setup(t)
			runAll(t, engine, canvas, tt.lines...)

			var got []string
			for _, s := range canvas.Shapes() {
				got = append(got, s.String())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanvasShow(t *testing.T) {
	engine, canvas, out := setup(t)
	runAll(t, engine, canvas, "draw 1 2", "move 5 5", "show")
	assert.Equal(t, "1 shapes, cursor (5;5), scale 1\n", out.String())

	out.Reset()
	runAll(t, engine, canvas, "show -verbose")
	assert.Equal(t, "1 shapes, cursor (5;5), scale 1\n  1  box (1;2) black\n", out.String())
}

func TestCanvasErrors(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		failing string
		code    mdwerror.Code
		message string
	}{
		{
			name:    "bad point",
			failing: "line '0,0' '1;1'",
			code:    mdwerror.CodeTypeCoercionFailure,
			message: `line 1, column 5: cannot bind '0,0' to parameter ` + "`from`" + `: point "0,0": expected x;y`,
		},
		{
			name:    "negative scale",
			failing: "scale -1",
			code:    mdwerror.CodeUnknown,
			message: "scale: scale factor must be positive, got -1",
		},
		{
			name:    "nothing to undo",
			lines:   []string{"draw 1 1"},
			failing: "undo 2",
			code:    mdwerror.CodeUnknown,
			message: "undo: cannot undo 2 steps, only 1 recorded",
		},
		{
			name:    "missing point",
			failing: "line '0;0'",
			code:    mdwerror.CodeMissingRequiredParameter,
			message: "line 1, column 0: parameter 'to' is required but has value null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, canvas, _ := setup(t)
			runAll(t, engine, canvas, tt.lines...)

			_, err := engine.Execute(tt.failing, canvas)
			require.Error(t, err)
			assert.Equal(t, tt.code, mdwerror.GetCode(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestCanvasUnknownHandle(t *testing.T) {
	canvas := New(nil, nil)
	assert.EqualError(t, canvas.Call("paint", nil), "canvas has no operation paint")
	assert.Error(t, canvas.Call("draw", []any{1}))
}

func TestParsePoint(t *testing.T) {
	tests := []struct {
		text    string
		want    Point
		wantErr bool
	}{
		{"100;150", Point{100, 150}, false},
		{" -3 ; 4 ", Point{-3, 4}, false},
		{"1;", Point{}, true},
		{"x;1", Point{}, true},
		{"1 2", Point{}, true},
	}
	for _, tt := range tests {
		got, err := ParsePoint(tt.text)
		if tt.wantErr {
			assert.Error(t, err, tt.text)
			continue
		}
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.want, got)
	}
}

func TestDescribe(t *testing.T) {
	engine, _, _ := setup(t)
	text := Describe(engine.Registry())
	assert.Contains(t, text, "undo [steps:integer]")
	assert.Contains(t, text, "Revert the last changes")
}
